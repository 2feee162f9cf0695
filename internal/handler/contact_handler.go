package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/guardianpro/guardianpro-api/internal/service"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// ContactHandler handles the public contact-form endpoints.
type ContactHandler struct {
	contactService *service.ContactService
	captchaService *service.CaptchaService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contactService *service.ContactService, captchaService *service.CaptchaService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		captchaService: captchaService,
	}
}

// Submit handles POST /contact-form
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.Success(c, 201, "Thank you for contacting us. We will get back to you shortly.", gin.H{
		"id": msg.ID,
	})
}

// GetCaptcha handles GET /contact-form/captcha
func (h *ContactHandler) GetCaptcha(c *gin.Context) {
	if h.captchaService == nil || !h.captchaService.Enabled() {
		utils.Error(c, 404, "CAPTCHA_DISABLED", "Captcha is not enabled")
		return
	}

	challenge, err := h.captchaService.Generate()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
		return
	}
	utils.Success(c, 200, "Captcha generated", challenge)
}

func (h *ContactHandler) handleError(c *gin.Context, err error) {
	switch err {
	case utils.ErrMissingField:
		utils.Error(c, 400, "MISSING_FIELD", "name, email, subject and message are required")
	case utils.ErrInvalidEmail:
		utils.Error(c, 400, "INVALID_EMAIL", "Invalid email address")
	case utils.ErrInvalidCaptcha:
		utils.Error(c, 400, "INVALID_CAPTCHA", "Captcha verification failed")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
	}
}
