package service

import (
	"testing"

	"github.com/guardianpro/guardianpro-api/internal/utils"
)

func validSubmitRequest() *SubmitContactRequest {
	return &SubmitContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Quote request",
		Message: "Please send me a quote for night patrols.",
	}
}

func TestSubmitContactRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitContactRequest)
		wantErr error
	}{
		{"valid", func(r *SubmitContactRequest) {}, nil},
		{"missing name", func(r *SubmitContactRequest) { r.Name = "" }, utils.ErrMissingField},
		{"missing email", func(r *SubmitContactRequest) { r.Email = "  " }, utils.ErrMissingField},
		{"missing subject", func(r *SubmitContactRequest) { r.Subject = "" }, utils.ErrMissingField},
		{"missing message", func(r *SubmitContactRequest) { r.Message = "" }, utils.ErrMissingField},
		{"bad email no at", func(r *SubmitContactRequest) { r.Email = "not-an-email" }, utils.ErrInvalidEmail},
		{"bad email no domain dot", func(r *SubmitContactRequest) { r.Email = "jane@example" }, utils.ErrInvalidEmail},
		{"bad email whitespace", func(r *SubmitContactRequest) { r.Email = "ja ne@example.com" }, utils.ErrInvalidEmail},
		{"plus address ok", func(r *SubmitContactRequest) { r.Email = "jane+tag@example.co.uk" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(req)
			if err := req.Validate(); err != tt.wantErr {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}
