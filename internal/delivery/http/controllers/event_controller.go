package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// EventSuccessResponse is the success response envelope for endpoints returning one event (200).
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error,omitempty"`
}

// EventListSuccessResponse is the success response envelope for GET /api/event (200).
type EventListSuccessResponse struct {
	Data  helpers.ListResponse[*domain.Event] `json:"data"`
	Error *helpers.APIError                   `json:"error,omitempty"`
}

// EventController handles the event endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

// NewEventController creates an EventController with the given logger and service.
func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event
// @Description Creates an event. dateTime is a Unix timestamp in milliseconds (10-digit second timestamps are converted) and must lie in the future. eventTypeID and organizerID must exist.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CreateEventInput true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} controllers.ValidationFailureResponse "a referenced event type or organizer does not exist"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid field"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event/create [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEventInput
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.ValidationFailureResponse "id is not a positive integer"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event/{id} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Description Replaces every field of the event with the given id. maxParticipants may not drop below the number of reservations held.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.UpdateEventInput true "Event data including id"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid field, or error.code business_rule"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event/update [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateEventInput
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes an event without reservations.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id query int true "Event ID"
// @Success 200 {object} controllers.DeleteSuccessResponse "data.status is OK"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: business_rule, or errors for an invalid id"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event/delete [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), helpers.QueryValue(r, "id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	writeDeleted(w)
}

// List godoc
// @Summary List events
// @Description Lists events ordered by dateTime. dateTime is an inclusive lower bound; userIDs is a comma-separated list and keeps events reserved by any of those users.
// @Tags events
// @Produce json
// @Param organizerID query int false "Organizer ID"
// @Param eventTypeID query int false "Event type ID"
// @Param dateTime query int false "Earliest start (Unix seconds or milliseconds)"
// @Param userIDs query string false "Comma-separated user IDs"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains items and pagination"
// @Failure 404 {object} controllers.ValidationFailureResponse "errors lists every unknown identifier"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid parameter"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.EventListQuery{
		OrganizerID: q.Get("organizerID"),
		EventTypeID: q.Get("eventTypeID"),
		DateTime:    q.Get("dateTime"),
		UserIDs:     q.Get("userIDs"),
		Pagination:  helpers.ParsePagination(r),
	}
	page, err := c.Service.List(r.Context(), query)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewListResponse(page))
}
