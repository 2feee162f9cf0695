package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// emailPattern only checks shape: one @, no whitespace, a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService validates and persists contact-form submissions, then
// triggers best-effort notification emails.
type ContactService struct {
	contactRepo *repository.ContactRepository
	activityLog *repository.ActivityLogRepository
	email       *EmailService
	captcha     *CaptchaService
}

// NewContactService constructs a ContactService. captcha may be nil when the
// challenge is disabled.
func NewContactService(
	contactRepo *repository.ContactRepository,
	activityLog *repository.ActivityLogRepository,
	email *EmailService,
	captcha *CaptchaService,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		activityLog: activityLog,
		email:       email,
		captcha:     captcha,
	}
}

// SubmitContactRequest is the contact-form payload.
type SubmitContactRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Subject     string  `json:"subject"`
	Message     string  `json:"message"`
	CaptchaID   string  `json:"captcha_id"`
	CaptchaCode string  `json:"captcha_code"`
}

// Validate checks required fields and email syntax. It runs before any
// database write.
func (r *SubmitContactRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Subject) == "" ||
		strings.TrimSpace(r.Message) == "" {
		return utils.ErrMissingField
	}
	if !emailPattern.MatchString(r.Email) {
		return utils.ErrInvalidEmail
	}
	return nil
}

// Submit validates, persists, and fans out notifications for a submission.
// Email failures are swallowed; the message is already saved.
func (s *ContactService) Submit(ctx context.Context, req *SubmitContactRequest) (*models.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.captcha != nil && s.captcha.Enabled() {
		if !s.captcha.Verify(req.CaptchaID, req.CaptchaCode) {
			return nil, utils.ErrInvalidCaptcha
		}
	}

	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	if err := s.contactRepo.Create(msg); err != nil {
		log.Error().Err(err).Msg("Failed to save contact message")
		return nil, err
	}

	s.email.NotifyContactSubmission(ctx, msg)

	if err := s.activityLog.Insert("contact_form_submitted", nil, map[string]interface{}{
		"contact_id": msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"subject":    msg.Subject,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to log contact submission")
	}

	return msg, nil
}
