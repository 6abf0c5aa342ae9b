package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventmanager/internal/domain"
)

type notificationService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	recipient string
	logger    *slog.Logger
}

// NewNotificationService returns a NotificationService that mails recipient through mailer.
// An empty recipient disables notices.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipient string, logger *slog.Logger) domain.NotificationService {
	return &notificationService{mailer: mailer, renderer: renderer, recipient: recipient, logger: logger}
}

// NotifyEventFull sends the "event_full" notice for event.
func (s *notificationService) NotifyEventFull(ctx context.Context, event *domain.Event) error {
	if s.recipient == "" || event == nil {
		return nil
	}
	data := &domain.EventFullEmailData{
		EventID:         event.ID,
		EventName:       event.Name,
		MaxParticipants: event.MaxParticipants,
		StartsAt:        time.UnixMilli(event.DateTime).UTC().Format(time.RFC1123),
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_full", data)
	if err != nil {
		return fmt.Errorf("failed to render event_full template: %w", err)
	}
	if err := s.mailer.Send(s.recipient, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send event full email: %w", err)
	}
	s.logger.InfoContext(ctx, "event full notice sent", "event_id", event.ID, "to", s.recipient)
	return nil
}
