package services

import (
	"context"
	"errors"
	"fmt"

	"eventmanager/internal/domain"
)

// Checker evaluates the cross-entity rules that need storage lookups: existence,
// uniqueness, capacity and dependent rows. Shape validation has already passed when
// any of these run. Methods that guard a mutation expect to be called inside a transaction.
type Checker struct {
	users        domain.UserRepository
	organizers   domain.OrganizerRepository
	eventTypes   domain.EventTypeRepository
	events       domain.EventRepository
	reservations domain.ReservationRepository
}

func NewChecker(
	users domain.UserRepository,
	organizers domain.OrganizerRepository,
	eventTypes domain.EventTypeRepository,
	events domain.EventRepository,
	reservations domain.ReservationRepository,
) *Checker {
	return &Checker{
		users:        users,
		organizers:   organizers,
		eventTypes:   eventTypes,
		events:       events,
		reservations: reservations,
	}
}

// found converts a repository lookup error into the client-facing not-found error.
func found[T any](v T, err error, entity string, id int64) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	if errors.Is(err, domain.ErrNotFound) {
		return zero, domain.NotFound(entity, id)
	}
	return zero, fmt.Errorf("get %s: %w", entity, err)
}

func (c *Checker) RequireUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := c.users.GetByID(ctx, id)
	return found(u, err, "User", id)
}

func (c *Checker) RequireOrganizer(ctx context.Context, id int64) (*domain.Organizer, error) {
	o, err := c.organizers.GetByID(ctx, id)
	return found(o, err, "Organizer", id)
}

func (c *Checker) RequireEventType(ctx context.Context, id int64) (*domain.EventType, error) {
	et, err := c.eventTypes.GetByID(ctx, id)
	return found(et, err, "EventType", id)
}

func (c *Checker) RequireEvent(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := c.events.GetByID(ctx, id)
	return found(e, err, "Event", id)
}

func (c *Checker) RequireReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := c.reservations.GetByID(ctx, id)
	return found(r, err, "Reservation", id)
}

// UsernameAvailable fails when another user (any id other than exceptID) holds username.
// Pass 0 as exceptID on create.
func (c *Checker) UsernameAvailable(ctx context.Context, username string, exceptID int64) error {
	existing, err := c.users.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("get user by username: %w", err)
	case existing.ID == exceptID:
		return nil
	}
	return domain.Conflict("Specified username already exists")
}

func (c *Checker) OrganizerNameAvailable(ctx context.Context, name string) error {
	_, err := c.organizers.GetByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("get organizer by name: %w", err)
	}
	return domain.Conflict("Specified organizer name already exists")
}

func (c *Checker) EventTypeNameAvailable(ctx context.Context, name string) error {
	_, err := c.eventTypes.GetByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("get event type by name: %w", err)
	}
	return domain.Conflict("Specified event type name already exists")
}

// EventReferences checks that the event type and organizer of an event exist.
// Both are checked and every unresolved id is reported.
func (c *Checker) EventReferences(ctx context.Context, eventTypeID, organizerID int64) error {
	var missing []domain.Violation
	if _, err := c.RequireEventType(ctx, eventTypeID); err != nil {
		v, err := notFoundViolation(err, "eventTypeID")
		if err != nil {
			return err
		}
		missing = append(missing, v)
	}
	if _, err := c.RequireOrganizer(ctx, organizerID); err != nil {
		v, err := notFoundViolation(err, "organizerID")
		if err != nil {
			return err
		}
		missing = append(missing, v)
	}
	return domain.NewNotFoundError(missing)
}

// MissingUsers returns a not-found violation for every id that does not resolve.
func (c *Checker) MissingUsers(ctx context.Context, field string, ids []int64) ([]domain.Violation, error) {
	return missingIDs(ctx, field, ids, c.RequireUser)
}

func (c *Checker) MissingEvents(ctx context.Context, field string, ids []int64) ([]domain.Violation, error) {
	return missingIDs(ctx, field, ids, c.RequireEvent)
}

func (c *Checker) MissingOrganizers(ctx context.Context, field string, ids []int64) ([]domain.Violation, error) {
	return missingIDs(ctx, field, ids, c.RequireOrganizer)
}

func (c *Checker) MissingEventTypes(ctx context.Context, field string, ids []int64) ([]domain.Violation, error) {
	return missingIDs(ctx, field, ids, c.RequireEventType)
}

func missingIDs[T any](ctx context.Context, field string, ids []int64, require func(context.Context, int64) (T, error)) ([]domain.Violation, error) {
	var missing []domain.Violation
	for _, id := range ids {
		if _, err := require(ctx, id); err != nil {
			v, err := notFoundViolation(err, field)
			if err != nil {
				return nil, err
			}
			missing = append(missing, v)
		}
	}
	return missing, nil
}

// notFoundViolation turns a not-found rule error into a violation and passes any other error through.
func notFoundViolation(err error, field string) (domain.Violation, error) {
	var ruleErr *domain.RuleError
	if errors.As(err, &ruleErr) && errors.Is(err, domain.ErrNotFound) {
		return domain.Violation{Field: field, Code: domain.CodeNotFound, Message: ruleErr.Message}, nil
	}
	return domain.Violation{}, err
}

// ReservationAllowed checks the duplicate and capacity guards for a new reservation.
// The event row must already be locked by the caller. It returns the number of
// reservations held before the new one.
func (c *Checker) ReservationAllowed(ctx context.Context, event *domain.Event, userID int64) (int, error) {
	_, err := c.reservations.GetByEventAndUser(ctx, event.ID, userID)
	switch {
	case err == nil:
		return 0, domain.Conflict("User with ID %d already has a reservation for event with ID %d.", userID, event.ID)
	case !errors.Is(err, domain.ErrNotFound):
		return 0, fmt.Errorf("get reservation: %w", err)
	}

	n, err := c.reservations.CountByEvent(ctx, event.ID)
	if err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	if int64(n) >= event.MaxParticipants {
		return n, domain.CapacityReached(event.ID, event.MaxParticipants)
	}
	return n, nil
}

// CapacityFits checks that an event's new seat count still covers its reservations.
func (c *Checker) CapacityFits(ctx context.Context, eventID, maxParticipants int64) error {
	n, err := c.reservations.CountByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("count reservations: %w", err)
	}
	if int64(n) > maxParticipants {
		return domain.BusinessRule(domain.ErrCapacityReached,
			"maxParticipants can not be lower than the %d reservations already held for event with ID %d.", n, eventID)
	}
	return nil
}

// UserDeletable locks the user row and checks that no reservation references it.
func (c *Checker) UserDeletable(ctx context.Context, id int64) error {
	u, err := c.users.LockByID(ctx, id)
	if _, err := found(u, err, "User", id); err != nil {
		return err
	}
	n, err := c.reservations.CountByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("count reservations: %w", err)
	}
	if n > 0 {
		return domain.HasDependents("User", id, n, "reservations")
	}
	return nil
}

func (c *Checker) OrganizerDeletable(ctx context.Context, id int64) error {
	o, err := c.organizers.LockByID(ctx, id)
	if _, err := found(o, err, "Organizer", id); err != nil {
		return err
	}
	n, err := c.events.CountByOrganizer(ctx, id)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if n > 0 {
		return domain.HasDependents("Organizer", id, n, "events")
	}
	return nil
}

func (c *Checker) EventTypeDeletable(ctx context.Context, id int64) error {
	et, err := c.eventTypes.LockByID(ctx, id)
	if _, err := found(et, err, "EventType", id); err != nil {
		return err
	}
	n, err := c.events.CountByEventType(ctx, id)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if n > 0 {
		return domain.HasDependents("EventType", id, n, "events")
	}
	return nil
}

func (c *Checker) EventDeletable(ctx context.Context, id int64) error {
	e, err := c.events.LockByID(ctx, id)
	if _, err := found(e, err, "Event", id); err != nil {
		return err
	}
	n, err := c.reservations.CountByEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("count reservations: %w", err)
	}
	if n > 0 {
		return domain.HasDependents("Event", id, n, "reservations")
	}
	return nil
}
