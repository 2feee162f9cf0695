package service

import (
	"strings"
	"testing"
	"time"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

func testContactMessage() *models.ContactMessage {
	phone := "+263 77 123 4567"
	return &models.ContactMessage{
		ID:        "msg-1",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     &phone,
		Subject:   "Quote request",
		Message:   "First line.\nSecond line.",
		Status:    models.ContactStatusNew,
		CreatedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestBuildAdminNotification(t *testing.T) {
	body := buildAdminNotification(testContactMessage())

	for _, want := range []string{"Jane Doe", "jane@example.com", "+263 77 123 4567", "Quote request"} {
		if !strings.Contains(body, want) {
			t.Fatalf("admin notification missing %q:\n%s", want, body)
		}
	}
	if !strings.Contains(body, "First line.<br>Second line.") {
		t.Fatalf("message line breaks not converted:\n%s", body)
	}
}

func TestBuildAdminNotificationNoPhone(t *testing.T) {
	m := testContactMessage()
	m.Phone = nil

	body := buildAdminNotification(m)
	if !strings.Contains(body, "Not provided") {
		t.Fatalf("missing phone placeholder:\n%s", body)
	}
}

func TestBuildCustomerConfirmation(t *testing.T) {
	body := buildCustomerConfirmation(testContactMessage())

	if !strings.Contains(body, "Thank you for your message, Jane Doe!") {
		t.Fatalf("confirmation missing greeting:\n%s", body)
	}
	if !strings.Contains(body, "First line.<br>Second line.") {
		t.Fatalf("message not echoed:\n%s", body)
	}
}

func TestEmailBodiesEscapeHTML(t *testing.T) {
	m := testContactMessage()
	m.Name = `<script>alert("x")</script>`
	m.Message = "<b>bold</b>"

	for _, body := range []string{buildAdminNotification(m), buildCustomerConfirmation(m)} {
		if strings.Contains(body, "<script>") || strings.Contains(body, "<b>bold</b>") {
			t.Fatalf("user input not escaped:\n%s", body)
		}
		if !strings.Contains(body, "&lt;b&gt;bold&lt;/b&gt;") {
			t.Fatalf("expected escaped message:\n%s", body)
		}
	}
}
