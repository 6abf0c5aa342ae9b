package postgres

import (
	"context"
	"database/sql"

	"eventmanager/internal/domain"

	"github.com/lib/pq"
)

const reservationColumns = `id, event_id, user_id, created_at, updated_at`

type reservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{
		DB: db,
	}
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	if err := s.Scan(&res.ID, &res.EventID, &res.UserID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, mapReadError(err)
	}
	return res, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (event_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, res.EventID, res.UserID, res.CreatedAt, res.UpdatedAt).
		Scan(&res.ID)
	return mapWriteError(err)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return scanReservation(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) LockByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	return scanReservation(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE event_id = $1 AND user_id = $2
	`
	return scanReservation(conn(ctx, r.DB).QueryRowContext(ctx, query, eventID, userID))
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	return count(ctx, conn(ctx, r.DB), `SELECT COUNT(*) FROM reservations WHERE event_id = $1`, eventID)
}

func (r *reservationRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	return count(ctx, conn(ctx, r.DB), `SELECT COUNT(*) FROM reservations WHERE user_id = $1`, userID)
}

func (r *reservationRepository) List(ctx context.Context, filter domain.ReservationFilter, params domain.PaginationParams) ([]*domain.Reservation, int, error) {
	var c conditions
	if len(filter.UserIDs) > 0 {
		c.add(`user_id = ANY($%d)`, pq.Array(filter.UserIDs))
	}
	if len(filter.EventIDs) > 0 {
		c.add(`event_id = ANY($%d)`, pq.Array(filter.EventIDs))
	}
	q := conn(ctx, r.DB)

	total, err := count(ctx, q, `SELECT COUNT(*) FROM reservations `+c.where(), c.args...)
	if err != nil {
		return nil, 0, err
	}

	limit, args := c.page(params)
	query := `SELECT ` + reservationColumns + ` FROM reservations ` + c.where() + ` ORDER BY id ` + limit
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}
