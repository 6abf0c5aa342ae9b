package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testTime = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

// rawEnvelope keeps data undecoded so each test can decode it into its own type.
type rawEnvelope struct {
	Data   json.RawMessage    `json:"data"`
	Error  *helpers.APIError  `json:"error"`
	Errors []domain.Violation `json:"errors"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) rawEnvelope {
	t.Helper()
	var env rawEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

type fakeUserService struct {
	user        *domain.User
	page        *domain.Page[*domain.User]
	err         error
	lastCreate  domain.CreateUserInput
	lastUpdate  domain.UpdateUserInput
	lastID      any
	lastQuery   domain.UserListQuery
	createCalls int
}

func (f *fakeUserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	f.createCalls++
	f.lastCreate = input
	return f.user, f.err
}

func (f *fakeUserService) GetByID(ctx context.Context, id any) (*domain.User, error) {
	f.lastID = id
	return f.user, f.err
}

func (f *fakeUserService) Update(ctx context.Context, input domain.UpdateUserInput) (*domain.User, error) {
	f.lastUpdate = input
	return f.user, f.err
}

func (f *fakeUserService) Delete(ctx context.Context, id any) error {
	f.lastID = id
	return f.err
}

func (f *fakeUserService) List(ctx context.Context, query domain.UserListQuery) (*domain.Page[*domain.User], error) {
	f.lastQuery = query
	return f.page, f.err
}

type fakeOrganizerService struct {
	organizer *domain.Organizer
	page      *domain.Page[*domain.Organizer]
	err       error
	lastID    any
	lastQuery domain.OrganizerListQuery
}

func (f *fakeOrganizerService) Create(ctx context.Context, input domain.CreateOrganizerInput) (*domain.Organizer, error) {
	return f.organizer, f.err
}

func (f *fakeOrganizerService) GetByID(ctx context.Context, id any) (*domain.Organizer, error) {
	f.lastID = id
	return f.organizer, f.err
}

func (f *fakeOrganizerService) Delete(ctx context.Context, id any) error {
	f.lastID = id
	return f.err
}

func (f *fakeOrganizerService) List(ctx context.Context, query domain.OrganizerListQuery) (*domain.Page[*domain.Organizer], error) {
	f.lastQuery = query
	return f.page, f.err
}

type fakeEventTypeService struct {
	eventType  *domain.EventType
	page       *domain.Page[*domain.EventType]
	err        error
	lastParams domain.PaginationParams
}

func (f *fakeEventTypeService) Create(ctx context.Context, input domain.CreateEventTypeInput) (*domain.EventType, error) {
	return f.eventType, f.err
}

func (f *fakeEventTypeService) GetByID(ctx context.Context, id any) (*domain.EventType, error) {
	return f.eventType, f.err
}

func (f *fakeEventTypeService) Delete(ctx context.Context, id any) error {
	return f.err
}

func (f *fakeEventTypeService) List(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.EventType], error) {
	f.lastParams = params
	return f.page, f.err
}

type fakeEventService struct {
	event      *domain.Event
	page       *domain.Page[*domain.Event]
	err        error
	lastCreate domain.CreateEventInput
	lastUpdate domain.UpdateEventInput
	lastQuery  domain.EventListQuery
}

func (f *fakeEventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	f.lastCreate = input
	return f.event, f.err
}

func (f *fakeEventService) GetByID(ctx context.Context, id any) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) Update(ctx context.Context, input domain.UpdateEventInput) (*domain.Event, error) {
	f.lastUpdate = input
	return f.event, f.err
}

func (f *fakeEventService) Delete(ctx context.Context, id any) error {
	return f.err
}

func (f *fakeEventService) List(ctx context.Context, query domain.EventListQuery) (*domain.Page[*domain.Event], error) {
	f.lastQuery = query
	return f.page, f.err
}

type fakeReservationService struct {
	reservation *domain.Reservation
	page        *domain.Page[*domain.Reservation]
	err         error
	lastCreate  domain.CreateReservationInput
	lastQuery   domain.ReservationListQuery
}

func (f *fakeReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	f.lastCreate = input
	return f.reservation, f.err
}

func (f *fakeReservationService) GetByID(ctx context.Context, id any) (*domain.Reservation, error) {
	return f.reservation, f.err
}

func (f *fakeReservationService) Delete(ctx context.Context, id any) error {
	return f.err
}

func (f *fakeReservationService) List(ctx context.Context, query domain.ReservationListQuery) (*domain.Page[*domain.Reservation], error) {
	f.lastQuery = query
	return f.page, f.err
}
