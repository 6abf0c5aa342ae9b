package domain

import (
	"context"
	"time"
)

// EventType categorizes events (concert, workshop, ...).
// swagger:model EventType
type EventType struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEventType returns a new EventType. ID is typically set by the repository on create.
func NewEventType(name string, createdAt, updatedAt time.Time) *EventType {
	return &EventType{Name: name, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

// CreateEventTypeInput is the raw create request.
type CreateEventTypeInput struct {
	Name any `json:"name"`
}

type EventTypeRepository interface {
	Create(ctx context.Context, eventType *EventType) error
	GetByID(ctx context.Context, id int64) (*EventType, error)
	LockByID(ctx context.Context, id int64) (*EventType, error)
	GetByName(ctx context.Context, name string) (*EventType, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params PaginationParams) ([]*EventType, int, error)
}

type EventTypeService interface {
	Create(ctx context.Context, input CreateEventTypeInput) (*EventType, error)
	GetByID(ctx context.Context, id any) (*EventType, error)
	Delete(ctx context.Context, id any) error
	List(ctx context.Context, params PaginationParams) (*Page[*EventType], error)
}
