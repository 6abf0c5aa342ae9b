package postgres

import (
	"context"
	"database/sql"

	"eventmanager/internal/domain"

	"github.com/lib/pq"
)

const eventColumns = `e.id, e.event_type_id, e.organizer_id, e.name, e.price, e.date_time,
	e.location_latitude, e.location_longitude, e.max_participants, e.created_at, e.updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := s.Scan(
		&e.ID, &e.EventTypeID, &e.OrganizerID, &e.Name, &e.Price, &e.DateTime,
		&e.LocationLatitude, &e.LocationLongitude, &e.MaxParticipants, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, mapReadError(err)
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (event_type_id, organizer_id, name, price, date_time,
			location_latitude, location_longitude, max_participants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query,
		e.EventTypeID, e.OrganizerID, e.Name, e.Price, e.DateTime,
		e.LocationLatitude, e.LocationLongitude, e.MaxParticipants, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	return mapWriteError(err)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`
	return scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRepository) LockByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1 FOR UPDATE`
	return scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET event_type_id = $1, organizer_id = $2, name = $3, price = $4, date_time = $5,
			location_latitude = $6, location_longitude = $7, max_participants = $8, updated_at = $9
		WHERE id = $10
		RETURNING created_at
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query,
		e.EventTypeID, e.OrganizerID, e.Name, e.Price, e.DateTime,
		e.LocationLatitude, e.LocationLongitude, e.MaxParticipants, e.UpdatedAt, e.ID,
	).Scan(&e.CreatedAt)
	if err != nil {
		return mapReadError(mapWriteError(err))
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var c conditions
	if filter.OrganizerID != nil {
		c.add(`e.organizer_id = $%d`, *filter.OrganizerID)
	}
	if filter.EventTypeID != nil {
		c.add(`e.event_type_id = $%d`, *filter.EventTypeID)
	}
	if filter.FromDateTime != nil {
		c.add(`e.date_time >= $%d`, *filter.FromDateTime)
	}
	if len(filter.UserIDs) > 0 {
		c.add(`EXISTS (SELECT 1 FROM reservations res WHERE res.event_id = e.id AND res.user_id = ANY($%d))`, pq.Array(filter.UserIDs))
	}
	q := conn(ctx, r.DB)

	total, err := count(ctx, q, `SELECT COUNT(*) FROM events e `+c.where(), c.args...)
	if err != nil {
		return nil, 0, err
	}

	limit, args := c.page(params)
	query := `SELECT ` + eventColumns + ` FROM events e ` + c.where() + ` ORDER BY e.date_time, e.id ` + limit
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) CountByOrganizer(ctx context.Context, organizerID int64) (int, error) {
	return count(ctx, conn(ctx, r.DB), `SELECT COUNT(*) FROM events WHERE organizer_id = $1`, organizerID)
}

func (r *eventRepository) CountByEventType(ctx context.Context, eventTypeID int64) (int, error) {
	return count(ctx, conn(ctx, r.DB), `SELECT COUNT(*) FROM events WHERE event_type_id = $1`, eventTypeID)
}
