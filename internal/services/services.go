// Package services implements the command handlers. Every operation validates its raw
// input first, then runs the storage-backed checks and the mutation, guarded mutations
// inside one transaction.
package services

import (
	"errors"
	"time"

	"eventmanager/internal/domain"
	"eventmanager/internal/validation"
)

// DefaultTimeout bounds a single service call when the caller passes zero.
const DefaultTimeout = 5 * time.Second

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// parseID validates the identifier of read and delete requests.
func parseID(value any) (int64, error) {
	id, violations := validation.Identifier("id", value)
	if err := domain.NewValidationError(violations); err != nil {
		return 0, err
	}
	return id, nil
}

// writeError maps the sentinel errors a repository raises on a guarded write
// to the client-facing error for entity/id. Other errors pass through.
func writeError(err error, entity string, id int64) error {
	var ruleErr *domain.RuleError
	var fieldErrs *domain.FieldErrors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ruleErr), errors.As(err, &fieldErrs):
		return err
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound(entity, id)
	}
	return err
}

func newPage[T any](items []T, total int, params domain.PaginationParams) *domain.Page[T] {
	return &domain.Page[T]{Items: items, Total: total, Params: params}
}
