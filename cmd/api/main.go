// @title Event Manager API
// @version 1.0
// @description Users, organizers, event types, events and seat reservations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmanager/config"
	_ "eventmanager/docs"
	"eventmanager/internal/adapters/auth"
	"eventmanager/internal/adapters/email"
	"eventmanager/internal/database"
	delivery "eventmanager/internal/delivery/http"
	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/domain"
	"eventmanager/internal/repository/postgres"
	"eventmanager/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DBUrl, database.DefaultPoolConfig, logger)
	if err != nil {
		logger.Error("database unavailable", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, cfg.DBUrl, logger); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	organizerRepo := postgres.NewOrganizerRepository(db)
	eventTypeRepo := postgres.NewEventTypeRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	tx := postgres.NewTransactor(db)
	checker := services.NewChecker(userRepo, organizerRepo, eventTypeRepo, eventRepo, reservationRepo)

	// Notifications
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Notify.Provider,
		FromAddress: cfg.Notify.FromAddress,
		FromName:    cfg.Notify.FromName,
		SES: email.SESConfig{
			Region:             cfg.Notify.AWSRegion,
			AccessKeyID:        cfg.Notify.AWSAccessKeyID,
			SecretAccessKey:    cfg.Notify.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Notify.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("mailer setup failed", "err", err)
		os.Exit(1)
	}
	notifier := services.NewNotificationService(mailer, email.NewTemplateRenderer(), cfg.Notify.Recipient, logger)

	// Services
	timeout := cfg.ServiceTimeout
	userService := services.NewUserService(userRepo, tx, checker, timeout)
	organizerService := services.NewOrganizerService(organizerRepo, tx, checker, timeout)
	eventTypeService := services.NewEventTypeService(eventTypeRepo, tx, checker, timeout)
	eventService := services.NewEventService(eventRepo, tx, checker, timeout)
	reservationService := services.NewReservationService(eventRepo, reservationRepo, tx, checker, notifier, logger, timeout)
	authService := services.NewAuthService(
		services.OperatorCredentials{Username: cfg.Auth.OperatorUsername, PasswordHash: cfg.Auth.OperatorPasswordHash},
		auth.NewBcryptHasher(0),
		auth.NewJWTIssuer(cfg.Auth.JWTSecret),
		cfg.Auth.TokenTTL,
	)

	var verifier domain.TokenVerifier
	if cfg.AuthEnabled() {
		verifier = auth.NewJWTVerifier(cfg.Auth.JWTSecret)
	} else {
		logger.Warn("AUTH_JWT_SECRET is empty, mutating routes are not protected")
	}

	router := delivery.NewRouter(delivery.Controllers{
		User:        controllers.NewUserController(logger, userService),
		Organizer:   controllers.NewOrganizerController(logger, organizerService),
		EventType:   controllers.NewEventTypeController(logger, eventTypeService),
		Event:       controllers.NewEventController(logger, eventService),
		Reservation: controllers.NewReservationController(logger, reservationService),
		Auth:        controllers.NewAuthController(logger, authService),
		Health:      controllers.NewHealthController(logger, db),
	}, verifier, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           delivery.NewHandler(router, logger, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
