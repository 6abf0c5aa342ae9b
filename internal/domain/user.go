package domain

import (
	"context"
	"time"
)

// User is a person who can hold reservations.
// swagger:model User
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(username, firstname, lastname string, createdAt, updatedAt time.Time) *User {
	return &User{
		Username:  username,
		Firstname: firstname,
		Lastname:  lastname,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// CreateUserInput is the raw create request. Fields stay untyped until validated.
type CreateUserInput struct {
	Username  any `json:"username"`
	Firstname any `json:"firstname"`
	Lastname  any `json:"lastname"`
}

// UpdateUserInput is the raw update request.
type UpdateUserInput struct {
	ID        any `json:"id"`
	Username  any `json:"username"`
	Firstname any `json:"firstname"`
	Lastname  any `json:"lastname"`
}

// UserListQuery holds the raw list filters. Empty strings mean "not set".
type UserListQuery struct {
	EventID    string
	Pagination PaginationParams
}

// UserFilter is the validated filter passed to the repository.
type UserFilter struct {
	EventID *int64
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	// LockByID reads the user and locks its row until the surrounding transaction ends.
	LockByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter UserFilter, params PaginationParams) ([]*User, int, error)
}

// UserService defines the business logic for users.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	GetByID(ctx context.Context, id any) (*User, error)
	Update(ctx context.Context, input UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id any) error
	List(ctx context.Context, query UserListQuery) (*Page[*User], error)
}
