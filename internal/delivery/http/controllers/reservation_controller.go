package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// ReservationSuccessResponse is the success response envelope for endpoints returning one reservation (200).
type ReservationSuccessResponse struct {
	Data  *domain.Reservation `json:"data"`
	Error *helpers.APIError   `json:"error,omitempty"`
}

// ReservationListSuccessResponse is the success response envelope for GET /api/reservation (200).
type ReservationListSuccessResponse struct {
	Data  helpers.ListResponse[*domain.Reservation] `json:"data"`
	Error *helpers.APIError                         `json:"error,omitempty"`
}

// ReservationController handles the reservation endpoints.
type ReservationController struct {
	Logger  *slog.Logger
	Service domain.ReservationService
}

func NewReservationController(logger *slog.Logger, svc domain.ReservationService) *ReservationController {
	return &ReservationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Reserve a seat
// @Description Reserves a seat for a user at an event. A user holds at most one reservation per event and an event never exceeds maxParticipants.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CreateReservationInput true "Reservation data"
// @Success 200 {object} controllers.ReservationSuccessResponse "data contains the created reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: business_rule, or errors for invalid fields"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/reservation/create [post]
func (c *ReservationController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateReservationInput
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	reservation, err := c.Service.Create(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reservation)
}

// GetByID godoc
// @Summary Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} controllers.ReservationSuccessResponse "data contains the reservation"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.ValidationFailureResponse "id is not a positive integer"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/reservation/{id} [get]
func (c *ReservationController) GetByID(w http.ResponseWriter, r *http.Request) {
	reservation, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reservation)
}

// Delete godoc
// @Summary Cancel a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id query int true "Reservation ID"
// @Success 200 {object} controllers.DeleteSuccessResponse "data.status is OK"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.ValidationFailureResponse "id is not a positive integer"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/reservation/delete [delete]
func (c *ReservationController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), helpers.QueryValue(r, "id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	writeDeleted(w)
}

// List godoc
// @Summary List reservations
// @Description userIDs and eventIDs are comma-separated lists and may not be combined.
// @Tags reservations
// @Produce json
// @Param userIDs query string false "Comma-separated user IDs"
// @Param eventIDs query string false "Comma-separated event IDs"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ReservationListSuccessResponse "data contains items and pagination"
// @Failure 404 {object} controllers.ValidationFailureResponse "errors lists every unknown identifier"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid parameter"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/reservation [get]
func (c *ReservationController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.ReservationListQuery{
		UserIDs:    q.Get("userIDs"),
		EventIDs:   q.Get("eventIDs"),
		Pagination: helpers.ParsePagination(r),
	}
	page, err := c.Service.List(r.Context(), query)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewListResponse(page))
}
