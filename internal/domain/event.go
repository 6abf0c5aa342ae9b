package domain

import (
	"context"
	"time"
)

// Event is a scheduled occurrence with limited seats.
// DateTime is a Unix timestamp in milliseconds.
// swagger:model Event
type Event struct {
	ID                int64     `json:"id"`
	EventTypeID       int64     `json:"eventTypeID"`
	OrganizerID       int64     `json:"organizerID"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	DateTime          int64     `json:"dateTime"`
	LocationLatitude  float64   `json:"locationLatitude"`
	LocationLongitude float64   `json:"locationLongitude"`
	MaxParticipants   int64     `json:"maxParticipants"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CreateEventInput is the raw create request.
type CreateEventInput struct {
	EventTypeID       any `json:"eventTypeID"`
	OrganizerID       any `json:"organizerID"`
	Name              any `json:"name"`
	Price             any `json:"price"`
	DateTime          any `json:"dateTime"`
	LocationLatitude  any `json:"locationLatitude"`
	LocationLongitude any `json:"locationLongitude"`
	MaxParticipants   any `json:"maxParticipants"`
}

// UpdateEventInput is the raw update request. Every field is required.
type UpdateEventInput struct {
	ID                any `json:"id"`
	EventTypeID       any `json:"eventTypeID"`
	OrganizerID       any `json:"organizerID"`
	Name              any `json:"name"`
	Price             any `json:"price"`
	DateTime          any `json:"dateTime"`
	LocationLatitude  any `json:"locationLatitude"`
	LocationLongitude any `json:"locationLongitude"`
	MaxParticipants   any `json:"maxParticipants"`
}

// EventListQuery holds the raw list filters. UserIDs is a comma-separated list.
type EventListQuery struct {
	OrganizerID string
	EventTypeID string
	DateTime    string
	UserIDs     string
	Pagination  PaginationParams
}

// EventFilter is the validated filter passed to the repository. Filters combine with AND.
type EventFilter struct {
	OrganizerID *int64
	EventTypeID *int64
	// FromDateTime keeps events at or after this millisecond timestamp.
	FromDateTime *int64
	// UserIDs keeps events reserved by at least one of the users.
	UserIDs []int64
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	LockByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	CountByOrganizer(ctx context.Context, organizerID int64) (int, error)
	CountByEventType(ctx context.Context, eventTypeID int64) (int, error)
}

// EventService defines the business logic for events.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*Event, error)
	GetByID(ctx context.Context, id any) (*Event, error)
	Update(ctx context.Context, input UpdateEventInput) (*Event, error)
	Delete(ctx context.Context, id any) error
	List(ctx context.Context, query EventListQuery) (*Page[*Event], error)
}
