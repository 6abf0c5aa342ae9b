package domain

import "context"

// Transactor runs fn inside a single storage transaction. Repositories called with the
// context passed to fn take part in that transaction; a non-nil error from fn rolls it back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
