package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"eventmanager/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{
	"id", "event_type_id", "organizer_id", "name", "price", "date_time",
	"location_latitude", "location_longitude", "max_participants", "created_at", "updated_at",
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		EventTypeID:       1,
		OrganizerID:       2,
		Name:              "Summer Fest",
		Price:             25.5,
		DateTime:          1893456000000,
		LocationLatitude:  45.8,
		LocationLongitude: 15.9,
		MaxParticipants:   100,
		CreatedAt:         fixedTime(),
		UpdatedAt:         fixedTime(),
	}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(event_type_id, organizer_id, name, price, date_time,`).
					WithArgs(int64(1), int64(2), "Summer Fest", 25.5, int64(1893456000000), 45.8, 15.9, int64(100), fixedTime(), fixedTime()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
			},
			wantID: 11,
		},
		{
			name: "missing reference",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "events_organizer_id_fkey"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			e := sampleEvent()
			err = NewEventRepository(db).Create(ctx, e)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, e.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM events e WHERE e.id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow(int64(11), int64(1), int64(2), "Summer Fest", 25.5, int64(1893456000000), 45.8, 15.9, int64(100), fixedTime(), fixedTime()))

	e, err := NewEventRepository(db).GetByID(context.Background(), 11)
	require.NoError(t, err)
	want := sampleEvent()
	want.ID = 11
	assert.Equal(t, want, e)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE events SET event_type_id = \$1`).
		WithArgs(int64(1), int64(2), "Summer Fest", 25.5, int64(1893456000000), 45.8, 15.9, int64(100), fixedTime(), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(fixedTime()))

	e := sampleEvent()
	e.ID = 11
	e.CreatedAt = fixedTime().AddDate(-1, 0, 0)
	require.NoError(t, NewEventRepository(db).Update(context.Background(), e))
	assert.Equal(t, fixedTime(), e.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete_StillReserved(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs(int64(11)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "reservations_event_id_fkey"})

	err = NewEventRepository(db).Delete(context.Background(), 11)
	require.ErrorIs(t, err, domain.ErrHasDependents)
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("all filters", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		where := `WHERE e.organizer_id = $1 AND e.event_type_id = $2 AND e.date_time >= $3 AND ` +
			`EXISTS (SELECT 1 FROM reservations res WHERE res.event_id = e.id AND res.user_id = ANY($4))`
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM events e ` + where)).
			WithArgs(int64(2), int64(1), int64(1700000000000), pq.Array([]int64{4, 5})).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM events e ` + where + ` ORDER BY e.date_time, e.id LIMIT $5 OFFSET $6`)).
			WithArgs(int64(2), int64(1), int64(1700000000000), pq.Array([]int64{4, 5}), 20, 0).
			WillReturnRows(sqlmock.NewRows(eventRowColumns).
				AddRow(int64(11), int64(1), int64(2), "Summer Fest", 25.5, int64(1893456000000), 45.8, 15.9, int64(100), fixedTime(), fixedTime()))

		organizerID, eventTypeID, from := int64(2), int64(1), int64(1700000000000)
		filter := domain.EventFilter{
			OrganizerID:  &organizerID,
			EventTypeID:  &eventTypeID,
			FromDateTime: &from,
			UserIDs:      []int64{4, 5},
		}
		events, total, err := NewEventRepository(db).List(ctx, filter, domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, events, 1)
		assert.Equal(t, int64(11), events[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filters returns empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM events e`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM events e  ORDER BY e.date_time, e.id LIMIT $1 OFFSET $2`)).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(eventRowColumns))

		events, total, err := NewEventRepository(db).List(ctx, domain.EventFilter{}, domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})
}

func TestEventRepository_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM events WHERE organizer_id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM events WHERE event_type_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewEventRepository(db)
	n, err := repo.CountByOrganizer(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = repo.CountByEventType(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
