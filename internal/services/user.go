package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmanager/internal/domain"
	"eventmanager/internal/validation"
)

type userService struct {
	users          domain.UserRepository
	tx             domain.Transactor
	checker        *Checker
	contextTimeout time.Duration
	now            func() time.Time
}

// NewUserService creates a UserService backed by the given repository and transactor.
func NewUserService(users domain.UserRepository, tx domain.Transactor, checker *Checker, timeout time.Duration) domain.UserService {
	return &userService{
		users:          users,
		tx:             tx,
		checker:        checker,
		contextTimeout: timeoutOrDefault(timeout),
		now:            time.Now,
	}
}

type userFields struct {
	username, firstname, lastname string
}

func validateUserFields(c *validation.Collector, username, firstname, lastname any) userFields {
	var f userFields
	var vs []domain.Violation
	f.username, vs = validation.Name("username", username, validation.Username)
	c.Add(vs)
	f.firstname, vs = validation.Name("firstname", firstname, validation.PersonName)
	c.Add(vs)
	f.lastname, vs = validation.Name("lastname", lastname, validation.PersonName)
	c.Add(vs)
	return f
}

func (s *userService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	var c validation.Collector
	f := validateUserFields(&c, input.Username, input.Firstname, input.Lastname)
	if err := c.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	user := domain.NewUser(f.username, f.firstname, f.lastname, now, now)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.UsernameAvailable(ctx, user.Username, 0); err != nil {
			return err
		}
		if err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.Conflict("Specified username already exists")
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, rawID any) (*domain.User, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.checker.RequireUser(ctx, id)
}

func (s *userService) Update(ctx context.Context, input domain.UpdateUserInput) (*domain.User, error) {
	var c validation.Collector
	id, vs := validation.Identifier("id", input.ID)
	c.Add(vs)
	f := validateUserFields(&c, input.Username, input.Firstname, input.Lastname)
	if err := c.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var user *domain.User
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.users.LockByID(ctx, id)
		if existing, err = found(existing, err, "User", id); err != nil {
			return err
		}
		if err := s.checker.UsernameAvailable(ctx, f.username, id); err != nil {
			return err
		}
		existing.Username = f.username
		existing.Firstname = f.firstname
		existing.Lastname = f.lastname
		existing.UpdatedAt = s.now()
		if err := s.users.Update(ctx, existing); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.Conflict("Specified username already exists")
			}
			return fmt.Errorf("update user: %w", writeError(err, "User", id))
		}
		user = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, rawID any) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.UserDeletable(ctx, id); err != nil {
			return err
		}
		if err := s.users.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrHasDependents) {
				return domain.BusinessRule(domain.ErrHasDependents, "User with ID %d could not be deleted: reservations still reference it", id)
			}
			return fmt.Errorf("delete user: %w", writeError(err, "User", id))
		}
		return nil
	})
}

func (s *userService) List(ctx context.Context, query domain.UserListQuery) (*domain.Page[*domain.User], error) {
	var c validation.Collector
	eventID, vs := validation.OptionalIdentifier("eventID", query.EventID)
	c.Add(vs)
	if err := c.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if eventID != nil {
		missing, err := s.checker.MissingEvents(ctx, "eventID", []int64{*eventID})
		if err != nil {
			return nil, err
		}
		if err := domain.NewNotFoundError(missing); err != nil {
			return nil, err
		}
	}

	params := query.Pagination.Normalize()
	users, total, err := s.users.List(ctx, domain.UserFilter{EventID: eventID}, params)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return newPage(users, total, params), nil
}
