package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"eventmanager/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	require.NoError(t, m.Send("a@example.com", "s", "h", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, testLogger)
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "no-reply@example.com", SES: SESConfig{Region: "eu-west-1"}}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, MailerConfig{FromAddress: "no-reply@example.com", FromName: "Events"}, testLogger)

	require.NoError(t, m.Send("ops@example.com", "Full", "<p>full</p>", ""))
	require.NotNil(t, client.input)
	assert.Equal(t, "Events <no-reply@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"ops@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "<p>full</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)

	client.err = errors.New("throttled")
	require.Error(t, m.Send("ops@example.com", "Full", "", "full"))
}

func TestTemplateRenderer_EventFull(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.EventFullEmailData{EventID: 4, EventName: "Jazz <Night>", MaxParticipants: 120, StartsAt: "Sun, 01 Jun 2031 00:00:00 UTC"}

	subject, html, text, err := r.Render("event_full", data)
	require.NoError(t, err)
	assert.Equal(t, `Event "Jazz <Night>" is fully booked`, subject)
	assert.Contains(t, html, "Jazz &lt;Night&gt;")
	assert.Contains(t, text, "All 120 seats are reserved.")

	_, _, _, err = r.Render("missing", data)
	require.Error(t, err)

	_, _, _, err = r.Render("event_full", map[string]any{"EventName": "Jazz"})
	require.Error(t, err)

	var none *domain.EventFullEmailData
	_, _, _, err = r.Render("event_full", none)
	require.Error(t, err)
}

func TestTemplateRenderer_SubjectIsSingleLine(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.EventFullEmailData{EventID: 4, EventName: "Jazz\r\nBcc: x@example.com  Night", MaxParticipants: 1}

	subject, _, _, err := r.Render("event_full", data)
	require.NoError(t, err)
	assert.Equal(t, `Event "Jazz Bcc: x@example.com Night" is fully booked`, subject)
	assert.NotContains(t, subject, "\n")
}
