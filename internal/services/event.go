package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmanager/internal/domain"
	"eventmanager/internal/validation"
)

type eventService struct {
	events         domain.EventRepository
	tx             domain.Transactor
	checker        *Checker
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService creates an EventService with the given repository and config
func NewEventService(events domain.EventRepository, tx domain.Transactor, checker *Checker, timeout time.Duration) domain.EventService {
	return &eventService{
		events:         events,
		tx:             tx,
		checker:        checker,
		contextTimeout: timeoutOrDefault(timeout),
		now:            time.Now,
	}
}

// parseEvent validates every event field and collects all violations.
// DateTime is normalized to milliseconds before the future check.
func (s *eventService) parseEvent(c *validation.Collector, in domain.CreateEventInput) *domain.Event {
	e := &domain.Event{}
	var vs []domain.Violation

	e.EventTypeID, vs = validation.Identifier("eventTypeID", in.EventTypeID)
	c.Add(vs)
	e.OrganizerID, vs = validation.Identifier("organizerID", in.OrganizerID)
	c.Add(vs)
	e.Name, vs = validation.Name("name", in.Name, validation.EventName)
	c.Add(vs)
	e.Price, vs = validation.Price("price", in.Price)
	c.Add(vs)
	e.DateTime, vs = validation.Timestamp("dateTime", in.DateTime)
	c.Add(vs)
	if len(vs) == 0 {
		c.Add(validation.Future("dateTime", e.DateTime, s.now()))
	}
	e.LocationLatitude, vs = validation.Latitude("locationLatitude", in.LocationLatitude)
	c.Add(vs)
	e.LocationLongitude, vs = validation.Longitude("locationLongitude", in.LocationLongitude)
	c.Add(vs)
	e.MaxParticipants, vs = validation.PositiveInteger("maxParticipants", in.MaxParticipants)
	c.Add(vs)
	return e
}

func (s *eventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	var c validation.Collector
	event := s.parseEvent(&c, input)
	if err := c.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.EventReferences(ctx, event.EventTypeID, event.OrganizerID); err != nil {
			return err
		}
		now := s.now()
		event.CreatedAt, event.UpdatedAt = now, now
		if err := s.events.Create(ctx, event); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.BusinessRule(domain.ErrNotFound, "EventType with ID %d or Organizer with ID %d was not found",
					event.EventTypeID, event.OrganizerID)
			}
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, rawID any) (*domain.Event, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.checker.RequireEvent(ctx, id)
}

func (s *eventService) Update(ctx context.Context, input domain.UpdateEventInput) (*domain.Event, error) {
	var c validation.Collector
	id, vs := validation.Identifier("id", input.ID)
	c.Add(vs)
	event := s.parseEvent(&c, domain.CreateEventInput{
		EventTypeID:       input.EventTypeID,
		OrganizerID:       input.OrganizerID,
		Name:              input.Name,
		Price:             input.Price,
		DateTime:          input.DateTime,
		LocationLatitude:  input.LocationLatitude,
		LocationLongitude: input.LocationLongitude,
		MaxParticipants:   input.MaxParticipants,
	})
	if err := c.Err(); err != nil {
		return nil, err
	}
	event.ID = id

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.events.LockByID(ctx, id)
		if existing, err = found(existing, err, "Event", id); err != nil {
			return err
		}
		if err := s.checker.EventReferences(ctx, event.EventTypeID, event.OrganizerID); err != nil {
			return err
		}
		if event.MaxParticipants < existing.MaxParticipants {
			if err := s.checker.CapacityFits(ctx, id, event.MaxParticipants); err != nil {
				return err
			}
		}
		event.CreatedAt = existing.CreatedAt
		event.UpdatedAt = s.now()
		if err := s.events.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", writeError(err, "Event", id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, rawID any) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checker.EventDeletable(ctx, id); err != nil {
			return err
		}
		if err := s.events.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrHasDependents) {
				return domain.BusinessRule(domain.ErrHasDependents, "Event with ID %d could not be deleted: reservations still reference it", id)
			}
			return fmt.Errorf("delete event: %w", writeError(err, "Event", id))
		}
		return nil
	})
}

// List applies the optional filters conjunctively. Unknown organizer, event type or
// user ids fail the request with every unresolved id listed.
func (s *eventService) List(ctx context.Context, query domain.EventListQuery) (*domain.Page[*domain.Event], error) {
	var (
		c      validation.Collector
		filter domain.EventFilter
		vs     []domain.Violation
	)
	filter.OrganizerID, vs = validation.OptionalIdentifier("organizerID", query.OrganizerID)
	c.Add(vs)
	filter.EventTypeID, vs = validation.OptionalIdentifier("eventTypeID", query.EventTypeID)
	c.Add(vs)
	filter.FromDateTime, vs = validation.OptionalTimestamp("dateTime", query.DateTime)
	c.Add(vs)
	filter.UserIDs, vs = validation.IdentifierList("userIDs", query.UserIDs)
	c.Add(vs)
	if err := c.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var missing []domain.Violation
	if filter.OrganizerID != nil {
		vs, err := s.checker.MissingOrganizers(ctx, "organizerID", []int64{*filter.OrganizerID})
		if err != nil {
			return nil, err
		}
		missing = append(missing, vs...)
	}
	if filter.EventTypeID != nil {
		vs, err := s.checker.MissingEventTypes(ctx, "eventTypeID", []int64{*filter.EventTypeID})
		if err != nil {
			return nil, err
		}
		missing = append(missing, vs...)
	}
	if len(filter.UserIDs) > 0 {
		vs, err := s.checker.MissingUsers(ctx, "userIDs", filter.UserIDs)
		if err != nil {
			return nil, err
		}
		missing = append(missing, vs...)
	}
	if err := domain.NewNotFoundError(missing); err != nil {
		return nil, err
	}

	params := query.Pagination.Normalize()
	events, total, err := s.events.List(ctx, filter, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return newPage(events, total, params), nil
}
