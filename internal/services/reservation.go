package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventmanager/internal/domain"
	"eventmanager/internal/validation"
)

type reservationService struct {
	events         domain.EventRepository
	reservations   domain.ReservationRepository
	tx             domain.Transactor
	checker        *Checker
	notifier       domain.NotificationService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewReservationService creates a ReservationService. notifier may be nil.
func NewReservationService(
	events domain.EventRepository,
	reservations domain.ReservationRepository,
	tx domain.Transactor,
	checker *Checker,
	notifier domain.NotificationService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ReservationService {
	return &reservationService{
		events:         events,
		reservations:   reservations,
		tx:             tx,
		checker:        checker,
		notifier:       notifier,
		logger:         logger,
		contextTimeout: timeoutOrDefault(timeout),
		now:            time.Now,
	}
}

// Create books a seat. The event row stays locked from the capacity check until the
// insert commits, so concurrent requests for the same event are serialized.
func (s *reservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	var c validation.Collector
	eventID, vs := validation.Identifier("eventID", input.EventID)
	c.Add(vs)
	userID, vs := validation.Identifier("userID", input.UserID)
	c.Add(vs)
	if err := c.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		reservation *domain.Reservation
		event       *domain.Event
		full        bool
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.events.LockByID(ctx, eventID)
		if event, err = found(locked, err, "Event", eventID); err != nil {
			return err
		}
		if _, err := s.checker.RequireUser(ctx, userID); err != nil {
			return err
		}
		held, err := s.checker.ReservationAllowed(ctx, event, userID)
		if err != nil {
			return err
		}

		now := s.now()
		reservation = domain.NewReservation(eventID, userID, now, now)
		if err := s.reservations.Create(ctx, reservation); err != nil {
			switch {
			case errors.Is(err, domain.ErrConflict):
				return domain.Conflict("User with ID %d already has a reservation for event with ID %d.", userID, eventID)
			case errors.Is(err, domain.ErrNotFound):
				return domain.NotFound("User", userID)
			}
			return fmt.Errorf("create reservation: %w", err)
		}
		full = int64(held+1) == event.MaxParticipants
		return nil
	})
	if err != nil {
		return nil, err
	}

	if full && s.notifier != nil {
		if err := s.notifier.NotifyEventFull(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "event full notice failed", "event_id", event.ID, "err", err)
		}
	}
	return reservation, nil
}

func (s *reservationService) GetByID(ctx context.Context, rawID any) (*domain.Reservation, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.checker.RequireReservation(ctx, id)
}

func (s *reservationService) Delete(ctx context.Context, rawID any) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.reservations.LockByID(ctx, id)
		if _, err := found(locked, err, "Reservation", id); err != nil {
			return err
		}
		if err := s.reservations.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete reservation: %w", writeError(err, "Reservation", id))
		}
		return nil
	})
}

func (s *reservationService) List(ctx context.Context, query domain.ReservationListQuery) (*domain.Page[*domain.Reservation], error) {
	var (
		c      validation.Collector
		filter domain.ReservationFilter
		vs     []domain.Violation
	)
	c.Add(validation.Exclusive("eventIDs", query.EventIDs, "userIDs", query.UserIDs))
	if err := c.Err(); err != nil {
		return nil, err
	}
	filter.UserIDs, vs = validation.IdentifierList("userIDs", query.UserIDs)
	c.Add(vs)
	filter.EventIDs, vs = validation.IdentifierList("eventIDs", query.EventIDs)
	c.Add(vs)
	if err := c.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var missing []domain.Violation
	if len(filter.UserIDs) > 0 {
		vs, err := s.checker.MissingUsers(ctx, "userIDs", filter.UserIDs)
		if err != nil {
			return nil, err
		}
		missing = append(missing, vs...)
	}
	if len(filter.EventIDs) > 0 {
		vs, err := s.checker.MissingEvents(ctx, "eventIDs", filter.EventIDs)
		if err != nil {
			return nil, err
		}
		missing = append(missing, vs...)
	}
	if err := domain.NewNotFoundError(missing); err != nil {
		return nil, err
	}

	params := query.Pagination.Normalize()
	reservations, total, err := s.reservations.List(ctx, filter, params)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return newPage(reservations, total, params), nil
}
