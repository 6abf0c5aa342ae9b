package postgres

import (
	"context"
	"database/sql"

	"eventmanager/internal/domain"
)

const eventTypeColumns = `id, name, created_at, updated_at`

type eventTypeRepository struct {
	DB *sql.DB
}

func NewEventTypeRepository(db *sql.DB) domain.EventTypeRepository {
	return &eventTypeRepository{DB: db}
}

func scanEventType(s scanner) (*domain.EventType, error) {
	et := &domain.EventType{}
	if err := s.Scan(&et.ID, &et.Name, &et.CreatedAt, &et.UpdatedAt); err != nil {
		return nil, mapReadError(err)
	}
	return et, nil
}

func (r *eventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	query := `
		INSERT INTO event_types (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, et.Name, et.CreatedAt, et.UpdatedAt).Scan(&et.ID)
	return mapWriteError(err)
}

func (r *eventTypeRepository) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	query := `SELECT ` + eventTypeColumns + ` FROM event_types WHERE id = $1`
	return scanEventType(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventTypeRepository) LockByID(ctx context.Context, id int64) (*domain.EventType, error) {
	query := `SELECT ` + eventTypeColumns + ` FROM event_types WHERE id = $1 FOR UPDATE`
	return scanEventType(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventTypeRepository) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	query := `SELECT ` + eventTypeColumns + ` FROM event_types WHERE name = $1`
	return scanEventType(conn(ctx, r.DB).QueryRowContext(ctx, query, name))
}

func (r *eventTypeRepository) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM event_types WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventTypeRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.EventType, int, error) {
	q := conn(ctx, r.DB)
	total, err := count(ctx, q, `SELECT COUNT(*) FROM event_types`)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventTypeColumns + ` FROM event_types ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := q.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	types := make([]*domain.EventType, 0)
	for rows.Next() {
		et, err := scanEventType(rows)
		if err != nil {
			return nil, 0, err
		}
		types = append(types, et)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return types, total, nil
}
