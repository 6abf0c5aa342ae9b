package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventFullEmailData holds data for the capacity notice.
type EventFullEmailData struct {
	EventID         int64
	EventName       string
	MaxParticipants int64
	StartsAt        string
}

// NotificationService sends operator notices. A nil error does not guarantee delivery.
type NotificationService interface {
	NotifyEventFull(ctx context.Context, event *Event) error
}
