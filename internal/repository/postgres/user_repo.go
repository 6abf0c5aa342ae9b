package postgres

import (
	"context"
	"database/sql"

	"eventmanager/internal/domain"
)

const userColumns = `id, username, firstname, lastname, created_at, updated_at`

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func scanUser(s scanner) (*domain.User, error) {
	u := &domain.User{}
	if err := s.Scan(&u.ID, &u.Username, &u.Firstname, &u.Lastname, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapReadError(err)
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (username, firstname, lastname, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, u.Username, u.Firstname, u.Lastname, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	return mapWriteError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *userRepository) LockByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return scanUser(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(conn(ctx, r.DB).QueryRowContext(ctx, query, username))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users SET username = $1, firstname = $2, lastname = $3, updated_at = $4
		WHERE id = $5
		RETURNING created_at
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, u.Username, u.Firstname, u.Lastname, u.UpdatedAt, u.ID).Scan(&u.CreatedAt)
	if err != nil {
		return mapReadError(mapWriteError(err))
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter, params domain.PaginationParams) ([]*domain.User, int, error) {
	var c conditions
	if filter.EventID != nil {
		c.add(`EXISTS (SELECT 1 FROM reservations res WHERE res.user_id = u.id AND res.event_id = $%d)`, *filter.EventID)
	}
	q := conn(ctx, r.DB)

	total, err := count(ctx, q, `SELECT COUNT(*) FROM users u `+c.where(), c.args...)
	if err != nil {
		return nil, 0, err
	}

	limit, args := c.page(params)
	query := `SELECT ` + userColumns + ` FROM users u ` + c.where() + ` ORDER BY u.id ` + limit
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
