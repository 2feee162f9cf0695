package service

import (
	"github.com/mojocn/base64Captcha"

	"github.com/guardianpro/guardianpro-api/internal/config"
)

// CaptchaChallenge is the public shape of a generated captcha.
type CaptchaChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService issues and verifies image captchas for the contact form.
// Challenges live in the shared store (redis-backed) and are single use.
type CaptchaService struct {
	enabled bool
	captcha *base64Captcha.Captcha
}

// NewCaptchaService constructs a CaptchaService over the given store.
func NewCaptchaService(cfg *config.CaptchaConfig, store base64Captcha.Store) *CaptchaService {
	driver := base64Captcha.NewDriverDigit(80, 240, 5, 0.7, 80)
	return &CaptchaService{
		enabled: cfg.Enabled,
		captcha: base64Captcha.NewCaptcha(driver, store),
	}
}

// Enabled reports whether submissions must carry a captcha answer.
func (s *CaptchaService) Enabled() bool {
	return s.enabled
}

// Generate produces a new image challenge.
func (s *CaptchaService) Generate() (*CaptchaChallenge, error) {
	id, b64, _, err := s.captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaChallenge{CaptchaID: id, ImageBase64: b64}, nil
}

// Verify checks and consumes a challenge answer.
func (s *CaptchaService) Verify(id, code string) bool {
	if id == "" || code == "" {
		return false
	}
	return s.captcha.Verify(id, code, true)
}
