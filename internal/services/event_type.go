package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmanager/internal/domain"
	"eventmanager/internal/validation"
)

type eventTypeService struct {
	eventTypes     domain.EventTypeRepository
	tx             domain.Transactor
	checker        *Checker
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventTypeService(eventTypes domain.EventTypeRepository, tx domain.Transactor, checker *Checker, timeout time.Duration) domain.EventTypeService {
	return &eventTypeService{
		eventTypes:     eventTypes,
		tx:             tx,
		checker:        checker,
		contextTimeout: timeoutOrDefault(timeout),
		now:            time.Now,
	}
}

func (s *eventTypeService) Create(ctx context.Context, input domain.CreateEventTypeInput) (*domain.EventType, error) {
	name, vs := validation.Name("name", input.Name, validation.WordName)
	if err := domain.NewValidationError(vs); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	eventType := domain.NewEventType(name, now, now)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.EventTypeNameAvailable(ctx, name); err != nil {
			return err
		}
		if err := s.eventTypes.Create(ctx, eventType); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.Conflict("Specified event type name already exists")
			}
			return fmt.Errorf("create event type: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eventType, nil
}

func (s *eventTypeService) GetByID(ctx context.Context, rawID any) (*domain.EventType, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.checker.RequireEventType(ctx, id)
}

func (s *eventTypeService) Delete(ctx context.Context, rawID any) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.EventTypeDeletable(ctx, id); err != nil {
			return err
		}
		if err := s.eventTypes.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrHasDependents) {
				return domain.BusinessRule(domain.ErrHasDependents, "EventType with ID %d could not be deleted: events still reference it", id)
			}
			return fmt.Errorf("delete event type: %w", writeError(err, "EventType", id))
		}
		return nil
	})
}

func (s *eventTypeService) List(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.EventType], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	params = params.Normalize()
	eventTypes, total, err := s.eventTypes.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	return newPage(eventTypes, total, params), nil
}
