package postgres

import (
	"context"
	"database/sql"

	"eventmanager/internal/domain"
)

const organizerColumns = `id, name, created_at, updated_at`

type organizerRepository struct {
	DB *sql.DB
}

func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{DB: db}
}

func scanOrganizer(s scanner) (*domain.Organizer, error) {
	o := &domain.Organizer{}
	if err := s.Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, mapReadError(err)
	}
	return o, nil
}

func (r *organizerRepository) Create(ctx context.Context, o *domain.Organizer) error {
	query := `
		INSERT INTO organizers (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, o.Name, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	return mapWriteError(err)
}

func (r *organizerRepository) GetByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	query := `SELECT ` + organizerColumns + ` FROM organizers WHERE id = $1`
	return scanOrganizer(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *organizerRepository) LockByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	query := `SELECT ` + organizerColumns + ` FROM organizers WHERE id = $1 FOR UPDATE`
	return scanOrganizer(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *organizerRepository) GetByName(ctx context.Context, name string) (*domain.Organizer, error) {
	query := `SELECT ` + organizerColumns + ` FROM organizers WHERE name = $1`
	return scanOrganizer(conn(ctx, r.DB).QueryRowContext(ctx, query, name))
}

func (r *organizerRepository) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM organizers WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *organizerRepository) List(ctx context.Context, filter domain.OrganizerFilter, params domain.PaginationParams) ([]*domain.Organizer, int, error) {
	var c conditions
	if filter.WithEvents {
		c.addRaw(`EXISTS (SELECT 1 FROM events e WHERE e.organizer_id = o.id)`)
	}
	q := conn(ctx, r.DB)

	total, err := count(ctx, q, `SELECT COUNT(*) FROM organizers o `+c.where(), c.args...)
	if err != nil {
		return nil, 0, err
	}

	limit, args := c.page(params)
	query := `SELECT ` + organizerColumns + ` FROM organizers o ` + c.where() + ` ORDER BY o.id ` + limit
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	organizers := make([]*domain.Organizer, 0)
	for rows.Next() {
		o, err := scanOrganizer(rows)
		if err != nil {
			return nil, 0, err
		}
		organizers = append(organizers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return organizers, total, nil
}
