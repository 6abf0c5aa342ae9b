package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// TokenRequest is the request body for POST /api/auth/token
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (t TokenRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(t.Username) == "" {
		errs = append(errs, "username is required")
	}
	if t.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// TokenResponse is the response body for POST /api/auth/token
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// TokenSuccessResponse is the success response envelope for POST /api/auth/token (200).
type TokenSuccessResponse struct {
	Data  TokenResponse `json:"data"`
	Error *h.APIError   `json:"error,omitempty"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// IssueToken godoc
// @Summary Issue an operator token
// @Description Authenticate with the operator credentials. Returns a JWT to send as Bearer token on mutating endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body TokenRequest true "Operator credentials"
// @Success 200 {object} controllers.TokenSuccessResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/auth/token [post]
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	token, err := c.Service.IssueToken(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, TokenResponse{Token: token, TokenType: "Bearer"})
}
