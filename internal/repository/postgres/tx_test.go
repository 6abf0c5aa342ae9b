package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventmanager/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM reservations WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewReservationRepository(db)
	err = NewTransactor(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		return repo.Delete(ctx, 4)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = NewTransactor(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_NestedCallsJoinOuterTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tr := NewTransactor(db)
	calls := 0
	err = tr.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return tr.WithinTransaction(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	called := false
	err = NewTransactor(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.False(t, called)
}

func TestTransactor_CommitUniqueViolationIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23505", Constraint: "reservations_event_user_key"})

	err = NewTransactor(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestConditions(t *testing.T) {
	var c conditions
	assert.Equal(t, "", c.where())

	c.add("a = $%d", 1)
	c.addRaw("b IS NULL")
	c.add("c = $%d", "x")
	assert.Equal(t, "WHERE a = $1 AND b IS NULL AND c = $2", c.where())

	limit, args := c.page(domain.PaginationParams{Page: 3, PageSize: 10})
	assert.Equal(t, "LIMIT $3 OFFSET $4", limit)
	assert.Equal(t, []any{1, "x", 10, 20}, args)
	assert.Len(t, c.args, 2)
}

func fixedTime() time.Time {
	return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
}
