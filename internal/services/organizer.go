package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmanager/internal/domain"
	"eventmanager/internal/validation"
)

type organizerService struct {
	organizers     domain.OrganizerRepository
	tx             domain.Transactor
	checker        *Checker
	contextTimeout time.Duration
	now            func() time.Time
}

func NewOrganizerService(organizers domain.OrganizerRepository, tx domain.Transactor, checker *Checker, timeout time.Duration) domain.OrganizerService {
	return &organizerService{
		organizers:     organizers,
		tx:             tx,
		checker:        checker,
		contextTimeout: timeoutOrDefault(timeout),
		now:            time.Now,
	}
}

func (s *organizerService) Create(ctx context.Context, input domain.CreateOrganizerInput) (*domain.Organizer, error) {
	name, vs := validation.Name("name", input.Name, validation.WordName)
	if err := domain.NewValidationError(vs); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	organizer := domain.NewOrganizer(name, now, now)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.OrganizerNameAvailable(ctx, name); err != nil {
			return err
		}
		if err := s.organizers.Create(ctx, organizer); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.Conflict("Specified organizer name already exists")
			}
			return fmt.Errorf("create organizer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return organizer, nil
}

func (s *organizerService) GetByID(ctx context.Context, rawID any) (*domain.Organizer, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.checker.RequireOrganizer(ctx, id)
}

func (s *organizerService) Delete(ctx context.Context, rawID any) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.OrganizerDeletable(ctx, id); err != nil {
			return err
		}
		if err := s.organizers.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrHasDependents) {
				return domain.BusinessRule(domain.ErrHasDependents, "Organizer with ID %d could not be deleted: events still reference it", id)
			}
			return fmt.Errorf("delete organizer: %w", writeError(err, "Organizer", id))
		}
		return nil
	})
}

func (s *organizerService) List(ctx context.Context, query domain.OrganizerListQuery) (*domain.Page[*domain.Organizer], error) {
	hasEvents, vs := validation.OptionalBool("hasEvents", query.HasEvents)
	if err := domain.NewValidationError(vs); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	params := query.Pagination.Normalize()
	filter := domain.OrganizerFilter{WithEvents: hasEvents != nil && *hasEvents}
	organizers, total, err := s.organizers.List(ctx, filter, params)
	if err != nil {
		return nil, fmt.Errorf("list organizers: %w", err)
	}
	return newPage(organizers, total, params), nil
}
