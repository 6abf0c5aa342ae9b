package http

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/delivery/http/middleware"
	"eventmanager/internal/domain"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups every controller served by the router.
type Controllers struct {
	User        *controllers.UserController
	Organizer   *controllers.OrganizerController
	EventType   *controllers.EventTypeController
	Event       *controllers.EventController
	Reservation *controllers.ReservationController
	Auth        *controllers.AuthController
	Health      *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Mutating routes require a Bearer token when verifier is non-nil.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	protect := middleware.RequireAuth(verifier, logger)

	// Users
	mux.HandleFunc("POST /api/user/create", protect(c.User.Create))
	mux.HandleFunc("PUT /api/user/update", protect(c.User.Update))
	mux.HandleFunc("DELETE /api/user/delete", protect(c.User.Delete))
	mux.HandleFunc("GET /api/user/{id}", c.User.GetByID)
	mux.HandleFunc("GET /api/user", c.User.List)

	// Organizers
	mux.HandleFunc("POST /api/organizer/create", protect(c.Organizer.Create))
	mux.HandleFunc("DELETE /api/organizer/delete", protect(c.Organizer.Delete))
	mux.HandleFunc("GET /api/organizer/{id}", c.Organizer.GetByID)
	mux.HandleFunc("GET /api/organizer", c.Organizer.List)

	// Event types
	mux.HandleFunc("POST /api/event-type/create", protect(c.EventType.Create))
	mux.HandleFunc("DELETE /api/event-type/delete", protect(c.EventType.Delete))
	mux.HandleFunc("GET /api/event-type/{id}", c.EventType.GetByID)
	mux.HandleFunc("GET /api/event-type", c.EventType.List)

	// Events
	mux.HandleFunc("POST /api/event/create", protect(c.Event.Create))
	mux.HandleFunc("PUT /api/event/update", protect(c.Event.Update))
	mux.HandleFunc("DELETE /api/event/delete", protect(c.Event.Delete))
	mux.HandleFunc("GET /api/event/{id}", c.Event.GetByID)
	mux.HandleFunc("GET /api/event", c.Event.List)

	// Reservations
	mux.HandleFunc("POST /api/reservation/create", protect(c.Reservation.Create))
	mux.HandleFunc("DELETE /api/reservation/delete", protect(c.Reservation.Delete))
	mux.HandleFunc("GET /api/reservation/{id}", c.Reservation.GetByID)
	mux.HandleFunc("GET /api/reservation", c.Reservation.List)

	// Auth
	mux.HandleFunc("POST /api/auth/token", c.Auth.IssueToken)

	mux.HandleFunc("GET /health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in the middleware chain, outermost first:
// panic recovery, real client IP, request id, access log, CORS.
func NewHandler(router http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	var h http.Handler = router
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	h = chimiddleware.RealIP(h)
	h = chimiddleware.Recoverer(h)
	return h
}
