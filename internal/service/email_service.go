package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guardianpro/guardianpro-api/internal/config"
	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/pkg/resend"
)

// EmailSender is the subset of the Resend client used by this service.
type EmailSender interface {
	Send(ctx context.Context, req *resend.SendRequest) (*resend.SendResponse, error)
}

// EmailService sends contact-form notification emails. Both sends are
// best-effort: a provider failure is logged and never surfaced to the caller.
type EmailService struct {
	sender EmailSender
	cfg    *config.EmailConfig
}

// NewEmailService constructs an EmailService. sender may be nil when no API
// key is configured; all sends then become no-ops.
func NewEmailService(sender EmailSender, cfg *config.EmailConfig) *EmailService {
	return &EmailService{sender: sender, cfg: cfg}
}

// NotifyContactSubmission emails the site admin about a new submission and
// sends the customer a confirmation.
func (s *EmailService) NotifyContactSubmission(ctx context.Context, m *models.ContactMessage) {
	if s.sender == nil {
		log.Debug().Msg("Email sender not configured, skipping contact notifications")
		return
	}

	if _, err := s.sender.Send(ctx, &resend.SendRequest{
		From:    s.cfg.FromAddress,
		To:      []string{s.cfg.AdminAddress},
		Subject: "New Contact Form Submission: " + m.Subject,
		HTML:    buildAdminNotification(m),
	}); err != nil {
		log.Error().Err(err).Str("contact_id", m.ID).Msg("Failed to send admin notification email")
	}

	if _, err := s.sender.Send(ctx, &resend.SendRequest{
		From:    s.cfg.FromAddress,
		To:      []string{m.Email},
		Subject: "Thank you for contacting GuardianPro Security",
		HTML:    buildCustomerConfirmation(m),
	}); err != nil {
		log.Error().Err(err).Str("contact_id", m.ID).Msg("Failed to send confirmation email")
	}
}

func buildAdminNotification(m *models.ContactMessage) string {
	phone := "Not provided"
	if m.Phone != nil && *m.Phone != "" {
		phone = html.EscapeString(*m.Phone)
	}

	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(m.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(m.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", phone)
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(m.Subject))
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", htmlMessage(m.Message))
	fmt.Fprintf(&b, "<p><strong>Submitted at:</strong> %s</p>", m.CreatedAt.Format(time.RFC1123))
	return b.String()
}

func buildCustomerConfirmation(m *models.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thank you for your message, %s!</h2>", html.EscapeString(m.Name))
	b.WriteString("<p>We have received your inquiry and will get back to you within 24 hours.</p>")
	b.WriteString("<p><strong>Your message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", htmlMessage(m.Message))
	b.WriteString("<p>Best regards,<br>GuardianPro Security Team</p>")
	return b.String()
}

// htmlMessage escapes user input and preserves line breaks.
func htmlMessage(msg string) string {
	return strings.ReplaceAll(html.EscapeString(msg), "\n", "<br>")
}
