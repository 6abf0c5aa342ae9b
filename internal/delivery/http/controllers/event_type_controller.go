package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// EventTypeSuccessResponse is the success response envelope for endpoints returning one event type (200).
type EventTypeSuccessResponse struct {
	Data  *domain.EventType `json:"data"`
	Error *helpers.APIError `json:"error,omitempty"`
}

// EventTypeListSuccessResponse is the success response envelope for GET /api/event-type (200).
type EventTypeListSuccessResponse struct {
	Data  helpers.ListResponse[*domain.EventType] `json:"data"`
	Error *helpers.APIError                       `json:"error,omitempty"`
}

type EventTypeController struct {
	Logger  *slog.Logger
	Service domain.EventTypeService
}

func NewEventTypeController(logger *slog.Logger, svc domain.EventTypeService) *EventTypeController {
	return &EventTypeController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event type
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CreateEventTypeInput true "Event type data"
// @Success 200 {object} controllers.EventTypeSuccessResponse "data contains the created event type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid field"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type/create [post]
func (c *EventTypeController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEventTypeInput
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	eventType, err := c.Service.Create(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, eventType)
}

// GetByID godoc
// @Summary Get an event type by ID
// @Tags event-types
// @Produce json
// @Param id path int true "Event type ID"
// @Success 200 {object} controllers.EventTypeSuccessResponse "data contains the event type"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.ValidationFailureResponse "id is not a positive integer"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type/{id} [get]
func (c *EventTypeController) GetByID(w http.ResponseWriter, r *http.Request) {
	eventType, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, eventType)
}

// Delete godoc
// @Summary Delete an event type
// @Description Deletes an event type that no event references.
// @Tags event-types
// @Produce json
// @Security BearerAuth
// @Param id query int true "Event type ID"
// @Success 200 {object} controllers.DeleteSuccessResponse "data.status is OK"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: business_rule, or errors for an invalid id"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type/delete [delete]
func (c *EventTypeController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), helpers.QueryValue(r, "id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	writeDeleted(w)
}

// List godoc
// @Summary List event types
// @Tags event-types
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.EventTypeListSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-type [get]
func (c *EventTypeController) List(w http.ResponseWriter, r *http.Request) {
	page, err := c.Service.List(r.Context(), helpers.ParsePagination(r))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewListResponse(page))
}
