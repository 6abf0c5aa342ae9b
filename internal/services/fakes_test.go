package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"eventmanager/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var fixedNow = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fakeTransactor runs fn directly and counts transactions.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID       map[int64]*domain.User
	nextID     int64
	calls      int
	createErr  error
	lastFilter domain.UserFilter
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) add(u *domain.User) *domain.User {
	f.nextID++
	if u.ID == 0 {
		u.ID = f.nextID
	}
	f.byID[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.calls++
	if f.createErr != nil {
		return f.createErr
	}
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.calls++
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) LockByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.calls++
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.calls++
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter domain.UserFilter, params domain.PaginationParams) ([]*domain.User, int, error) {
	f.calls++
	f.lastFilter = filter
	users := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, len(users), nil
}

// fakeOrganizerRepo implements domain.OrganizerRepository for tests.
type fakeOrganizerRepo struct {
	byID       map[int64]*domain.Organizer
	nextID     int64
	calls      int
	lastFilter domain.OrganizerFilter
	// owning marks organizers treated as having at least one event.
	owning map[int64]bool
}

func newFakeOrganizerRepo() *fakeOrganizerRepo {
	return &fakeOrganizerRepo{byID: make(map[int64]*domain.Organizer)}
}

func (f *fakeOrganizerRepo) Create(ctx context.Context, o *domain.Organizer) error {
	f.calls++
	f.nextID++
	o.ID = f.nextID
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOrganizerRepo) GetByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	f.calls++
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrganizerRepo) LockByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrganizerRepo) GetByName(ctx context.Context, name string) (*domain.Organizer, error) {
	f.calls++
	for _, o := range f.byID {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrganizerRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeOrganizerRepo) List(ctx context.Context, filter domain.OrganizerFilter, params domain.PaginationParams) ([]*domain.Organizer, int, error) {
	f.calls++
	f.lastFilter = filter
	out := make([]*domain.Organizer, 0, len(f.byID))
	for _, o := range f.byID {
		if filter.WithEvents && !f.owning[o.ID] {
			continue
		}
		out = append(out, o)
	}
	return out, len(out), nil
}

// fakeEventTypeRepo implements domain.EventTypeRepository for tests.
type fakeEventTypeRepo struct {
	byID   map[int64]*domain.EventType
	nextID int64
	calls  int
}

func newFakeEventTypeRepo() *fakeEventTypeRepo {
	return &fakeEventTypeRepo{byID: make(map[int64]*domain.EventType)}
}

func (f *fakeEventTypeRepo) Create(ctx context.Context, et *domain.EventType) error {
	f.calls++
	f.nextID++
	et.ID = f.nextID
	f.byID[et.ID] = et
	return nil
}

func (f *fakeEventTypeRepo) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	f.calls++
	if et, ok := f.byID[id]; ok {
		return et, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventTypeRepo) LockByID(ctx context.Context, id int64) (*domain.EventType, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeEventTypeRepo) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	f.calls++
	for _, et := range f.byID {
		if et.Name == name {
			return et, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventTypeRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEventTypeRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.EventType, int, error) {
	f.calls++
	out := make([]*domain.EventType, 0, len(f.byID))
	for _, et := range f.byID {
		out = append(out, et)
	}
	return out, len(out), nil
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID       map[int64]*domain.Event
	nextID     int64
	calls      int
	lastFilter domain.EventFilter
	lastParams domain.PaginationParams
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event)}
}

func (f *fakeEventRepo) add(e *domain.Event) *domain.Event {
	f.nextID++
	if e.ID == 0 {
		e.ID = f.nextID
	}
	f.byID[e.ID] = e
	return e
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.calls++
	f.add(e)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	f.calls++
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) LockByID(ctx context.Context, id int64) (*domain.Event, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	f.calls++
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.calls++
	f.lastFilter = filter
	f.lastParams = params
	out := make([]*domain.Event, 0)
	for _, e := range f.byID {
		if filter.OrganizerID != nil && e.OrganizerID != *filter.OrganizerID {
			continue
		}
		if filter.EventTypeID != nil && e.EventTypeID != *filter.EventTypeID {
			continue
		}
		if filter.FromDateTime != nil && e.DateTime < *filter.FromDateTime {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (f *fakeEventRepo) CountByOrganizer(ctx context.Context, organizerID int64) (int, error) {
	f.calls++
	n := 0
	for _, e := range f.byID {
		if e.OrganizerID == organizerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEventRepo) CountByEventType(ctx context.Context, eventTypeID int64) (int, error) {
	f.calls++
	n := 0
	for _, e := range f.byID {
		if e.EventTypeID == eventTypeID {
			n++
		}
	}
	return n, nil
}

// fakeReservationRepo implements domain.ReservationRepository for tests.
type fakeReservationRepo struct {
	byID       map[int64]*domain.Reservation
	nextID     int64
	calls      int
	lastFilter domain.ReservationFilter
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{byID: make(map[int64]*domain.Reservation)}
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	f.calls++
	for _, existing := range f.byID {
		if existing.EventID == r.EventID && existing.UserID == r.UserID {
			return domain.ErrConflict
		}
	}
	f.nextID++
	r.ID = f.nextID
	f.byID[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	f.calls++
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReservationRepo) LockByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeReservationRepo) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Reservation, error) {
	f.calls++
	for _, r := range f.byID {
		if r.EventID == eventID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeReservationRepo) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	f.calls++
	n := 0
	for _, r := range f.byID {
		if r.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReservationRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	f.calls++
	n := 0
	for _, r := range f.byID {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReservationRepo) List(ctx context.Context, filter domain.ReservationFilter, params domain.PaginationParams) ([]*domain.Reservation, int, error) {
	f.calls++
	f.lastFilter = filter
	out := make([]*domain.Reservation, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, len(out), nil
}

// fakeStore bundles the repositories and a checker over them.
type fakeStore struct {
	users        *fakeUserRepo
	organizers   *fakeOrganizerRepo
	eventTypes   *fakeEventTypeRepo
	events       *fakeEventRepo
	reservations *fakeReservationRepo
	tx           *fakeTransactor
	checker      *Checker
}

func newFakeStore() *fakeStore {
	s := &fakeStore{
		users:        newFakeUserRepo(),
		organizers:   newFakeOrganizerRepo(),
		eventTypes:   newFakeEventTypeRepo(),
		events:       newFakeEventRepo(),
		reservations: newFakeReservationRepo(),
		tx:           &fakeTransactor{},
	}
	s.checker = NewChecker(s.users, s.organizers, s.eventTypes, s.events, s.reservations)
	return s
}

// repoCalls is the total number of repository calls made so far.
func (s *fakeStore) repoCalls() int {
	return s.users.calls + s.organizers.calls + s.eventTypes.calls + s.events.calls + s.reservations.calls
}

// fakeNotifier records event-full notices.
type fakeNotifier struct {
	notified []int64
	err      error
}

func (f *fakeNotifier) NotifyEventFull(ctx context.Context, event *domain.Event) error {
	f.notified = append(f.notified, event.ID)
	return f.err
}
