package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationController_Create(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"duplicate", domain.Conflict("User with ID 2 already has a reservation for event with ID 1."), http.StatusConflict, helpers.ErrCodeConflict},
		{"capacity reached", domain.CapacityReached(1, 10), http.StatusUnprocessableEntity, helpers.ErrCodeBusinessRule},
		{"unknown event", domain.NotFound("Event", 1), http.StatusNotFound, helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeReservationService{reservation: &domain.Reservation{ID: 11, EventID: 1, UserID: 2}, err: tt.fakeErr}
			ctrl := NewReservationController(testLogger, fake)

			req := httptest.NewRequest(http.MethodPost, "http://test/api/reservation/create", jsonBody(`{"eventID":1,"userID":2}`))
			rr := httptest.NewRecorder()
			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, json.Number("1"), fake.lastCreate.EventID)
			assert.Equal(t, json.Number("2"), fake.lastCreate.UserID)
			env := decodeEnvelope(t, rr)
			if tt.wantCode == "" {
				var got domain.Reservation
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Equal(t, int64(11), got.ID)
				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.fakeErr.Error(), env.Error.Message)
		})
	}
}

func TestReservationController_List(t *testing.T) {
	fake := &fakeReservationService{err: domain.NewValidationError([]domain.Violation{{
		Field:   "userIDs",
		Code:    domain.CodeMutuallyExclusive,
		Message: "The userIDs and eventIDs parameters may not be used at the same time.",
	}})}
	ctrl := NewReservationController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "http://test/api/reservation?userIDs=1&eventIDs=2", nil)
	rr := httptest.NewRecorder()
	ctrl.List(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "1", fake.lastQuery.UserIDs)
	assert.Equal(t, "2", fake.lastQuery.EventIDs)
	env := decodeEnvelope(t, rr)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, domain.CodeMutuallyExclusive, env.Errors[0].Code)
}

func TestReservationController_Delete(t *testing.T) {
	fake := &fakeReservationService{}
	ctrl := NewReservationController(testLogger, fake)

	req := httptest.NewRequest(http.MethodDelete, "http://test/api/reservation/delete?id=11", nil)
	rr := httptest.NewRecorder()
	ctrl.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.JSONEq(t, `{"status":"OK"}`, string(env.Data))
}
