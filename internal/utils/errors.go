package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials  = errors.New("INVALID_CREDENTIALS")
	ErrAccountInactive     = errors.New("ACCOUNT_INACTIVE")
	ErrInvalidToken        = errors.New("INVALID_TOKEN")
	ErrTokenExpired        = errors.New("TOKEN_EXPIRED")
	ErrMissingField        = errors.New("MISSING_FIELD")
	ErrInvalidEmail        = errors.New("INVALID_EMAIL")
	ErrInvalidAmount       = errors.New("INVALID_AMOUNT")
	ErrUnsupportedMethod   = errors.New("UNSUPPORTED_PAYMENT_METHOD")
	ErrPaymentNotFound     = errors.New("PAYMENT_NOT_FOUND")
	ErrEntityNotFound      = errors.New("ENTITY_NOT_FOUND")
	ErrRecordNotFound      = errors.New("RECORD_NOT_FOUND")
	ErrInvalidCaptcha      = errors.New("INVALID_CAPTCHA")
	ErrInvalidExportFormat = errors.New("INVALID_EXPORT_FORMAT")
)
