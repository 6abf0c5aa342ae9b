package domain

import (
	"context"
	"time"
)

// Reservation is a user's seat at an event. A user holds at most one reservation per event.
// swagger:model Reservation
type Reservation struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventID"`
	UserID    int64     `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewReservation creates a new Reservation. ID is typically set by the repository on create.
func NewReservation(eventID, userID int64, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// CreateReservationInput is the raw create request.
type CreateReservationInput struct {
	EventID any `json:"eventID"`
	UserID  any `json:"userID"`
}

// ReservationListQuery holds the raw list filters. UserIDs and EventIDs are comma-separated
// and may not be used together.
type ReservationListQuery struct {
	UserIDs    string
	EventIDs   string
	Pagination PaginationParams
}

// ReservationFilter is the validated filter passed to the repository.
type ReservationFilter struct {
	UserIDs  []int64
	EventIDs []int64
}

// ReservationRepository defines storage operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	LockByID(ctx context.Context, id int64) (*Reservation, error)
	GetByEventAndUser(ctx context.Context, eventID, userID int64) (*Reservation, error)
	Delete(ctx context.Context, id int64) error
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	List(ctx context.Context, filter ReservationFilter, params PaginationParams) ([]*Reservation, int, error)
}

// ReservationService defines reservation operations.
type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*Reservation, error)
	GetByID(ctx context.Context, id any) (*Reservation, error)
	Delete(ctx context.Context, id any) error
	List(ctx context.Context, query ReservationListQuery) (*Page[*Reservation], error)
}
