package domain

import (
	"context"
	"time"
)

// Organizer runs events.
// swagger:model Organizer
type Organizer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewOrganizer returns a new Organizer. ID is typically set by the repository on create.
func NewOrganizer(name string, createdAt, updatedAt time.Time) *Organizer {
	return &Organizer{Name: name, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

// CreateOrganizerInput is the raw create request.
type CreateOrganizerInput struct {
	Name any `json:"name"`
}

// OrganizerListQuery holds the raw list filters.
type OrganizerListQuery struct {
	HasEvents  string
	Pagination PaginationParams
}

// OrganizerFilter is the validated filter passed to the repository.
// WithEvents keeps only organizers owning at least one event. When false every organizer is listed.
type OrganizerFilter struct {
	WithEvents bool
}

type OrganizerRepository interface {
	Create(ctx context.Context, organizer *Organizer) error
	GetByID(ctx context.Context, id int64) (*Organizer, error)
	LockByID(ctx context.Context, id int64) (*Organizer, error)
	GetByName(ctx context.Context, name string) (*Organizer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter OrganizerFilter, params PaginationParams) ([]*Organizer, int, error)
}

type OrganizerService interface {
	Create(ctx context.Context, input CreateOrganizerInput) (*Organizer, error)
	GetByID(ctx context.Context, id any) (*Organizer, error)
	Delete(ctx context.Context, id any) error
	List(ctx context.Context, query OrganizerListQuery) (*Page[*Organizer], error)
}
