package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// UserSuccessResponse is the success response envelope for endpoints returning one user (200).
type UserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error,omitempty"`
}

// UserListSuccessResponse is the success response envelope for GET /api/user (200).
type UserListSuccessResponse struct {
	Data  helpers.ListResponse[*domain.User] `json:"data"`
	Error *helpers.APIError                  `json:"error,omitempty"`
}

// UserController handles the user endpoints.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

// NewUserController creates a UserController with the given logger and service.
func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a user
// @Description Creates a user. The username must be unique, firstname and lastname may only contain word characters.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CreateUserInput true "User data"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid field"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/user/create [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserInput
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	user, err := c.Service.Create(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// GetByID godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.ValidationFailureResponse "id is not a positive integer"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/user/{id} [get]
func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	user, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// Update godoc
// @Summary Update a user
// @Description Replaces username, firstname and lastname of the user with the given id.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.UpdateUserInput true "User data including id"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} controllers.ValidationFailureResponse "errors lists every invalid field"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/user/update [put]
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUserInput
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	user, err := c.Service.Update(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Description Deletes a user that holds no reservations.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id query int true "User ID"
// @Success 200 {object} controllers.DeleteSuccessResponse "data.status is OK"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: business_rule, or errors for an invalid id"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/user/delete [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), helpers.QueryValue(r, "id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	writeDeleted(w)
}

// List godoc
// @Summary List users
// @Description Lists users ordered by id. eventID keeps only users holding a reservation for that event.
// @Tags users
// @Produce json
// @Param eventID query int false "Event ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.UserListSuccessResponse "data contains items and pagination"
// @Failure 404 {object} controllers.ValidationFailureResponse "the event does not exist"
// @Failure 422 {object} controllers.ValidationFailureResponse "eventID is not a positive integer"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/user [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	query := domain.UserListQuery{
		EventID:    r.URL.Query().Get("eventID"),
		Pagination: helpers.ParsePagination(r),
	}
	page, err := c.Service.List(r.Context(), query)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewListResponse(page))
}
