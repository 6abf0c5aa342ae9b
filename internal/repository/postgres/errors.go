package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventmanager/internal/domain"

	"github.com/lib/pq"
)

// Postgres error codes.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func pqError(err error) *pq.Error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr
	}
	return nil
}

// mapWriteError translates driver errors raised by INSERT and UPDATE statements.
// A foreign key violation there means the referenced row does not exist.
func mapWriteError(err error) error {
	if pqErr := pqError(err); pqErr != nil {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Constraint)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pqErr.Constraint)
		}
	}
	return err
}

// mapDeleteError translates driver errors raised by DELETE statements.
// A foreign key violation there means other rows still reference the deleted one.
func mapDeleteError(err error) error {
	if pqErr := pqError(err); pqErr != nil && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrHasDependents, pqErr.Constraint)
	}
	return err
}

func mapReadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

// conditions collects WHERE clauses with positional parameters.
type conditions struct {
	clauses []string
	args    []any
}

// add appends a clause whose single %d verb is replaced by the next parameter index.
func (c *conditions) add(clause string, arg any) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, fmt.Sprintf(clause, len(c.args)))
}

// addRaw appends a clause without a parameter.
func (c *conditions) addRaw(clause string) {
	c.clauses = append(c.clauses, clause)
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.clauses, " AND ")
}

// page returns the LIMIT/OFFSET suffix and the full argument list.
func (c *conditions) page(params domain.PaginationParams) (string, []any) {
	n := len(c.args)
	args := append(append([]any{}, c.args...), params.PageSize, params.Offset())
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", n+1, n+2), args
}

func count(ctx context.Context, q querier, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
