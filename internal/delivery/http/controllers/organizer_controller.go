package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// OrganizerSuccessResponse is the success response envelope for endpoints returning one organizer (200).
type OrganizerSuccessResponse struct {
	Data  *domain.Organizer `json:"data"`
	Error *helpers.APIError `json:"error,omitempty"`
}

// OrganizerListSuccessResponse is the success response envelope for GET /api/organizer (200).
type OrganizerListSuccessResponse struct {
	Data  helpers.ListResponse[*domain.Organizer] `json:"data"`
	Error *helpers.APIError                       `json:"error,omitempty"`
}

// OrganizerController handles the organizer endpoints.
type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.OrganizerService
}

func NewOrganizerController(logger *slog.Logger, svc domain.OrganizerService) *OrganizerController {
	return &OrganizerController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an organizer
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CreateOrganizerInput true "Organizer data"
// @Success 200 {object} controllers.OrganizerSuccessResponse "data contains the created organizer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid field"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/create [post]
func (c *OrganizerController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrganizerInput
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	organizer, err := c.Service.Create(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, organizer)
}

// GetByID godoc
// @Summary Get an organizer by ID
// @Tags organizers
// @Produce json
// @Param id path int true "Organizer ID"
// @Success 200 {object} controllers.OrganizerSuccessResponse "data contains the organizer"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.ValidationFailureResponse "id is not a positive integer"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/{id} [get]
func (c *OrganizerController) GetByID(w http.ResponseWriter, r *http.Request) {
	organizer, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, organizer)
}

// Delete godoc
// @Summary Delete an organizer
// @Description Deletes an organizer that no event references.
// @Tags organizers
// @Produce json
// @Security BearerAuth
// @Param id query int true "Organizer ID"
// @Success 200 {object} controllers.DeleteSuccessResponse "data.status is OK"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: business_rule, or errors for an invalid id"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/delete [delete]
func (c *OrganizerController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), helpers.QueryValue(r, "id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	writeDeleted(w)
}

// List godoc
// @Summary List organizers
// @Description hasEvents=true keeps organizers with at least one event. false lists every organizer.
// @Tags organizers
// @Produce json
// @Param hasEvents query bool false "Filter by whether the organizer has events"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.OrganizerListSuccessResponse "data contains items and pagination"
// @Failure 422 {object} controllers.ValidationFailureResponse "hasEvents is neither true nor false"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer [get]
func (c *OrganizerController) List(w http.ResponseWriter, r *http.Request) {
	query := domain.OrganizerListQuery{
		HasEvents:  r.URL.Query().Get("hasEvents"),
		Pagination: helpers.ParsePagination(r),
	}
	page, err := c.Service.List(r.Context(), query)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewListResponse(page))
}
