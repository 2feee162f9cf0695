package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSend(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody SendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request failed: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	resp, err := client.Send(context.Background(), &SendRequest{
		From:    "GuardianPro Security <noreply@guardianpro.com>",
		To:      []string{"admin@guardianpro.com"},
		Subject: "New contact form submission",
		HTML:    "<p>hello</p>",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if resp.ID != "email-123" {
		t.Fatalf("id want email-123, got %q", resp.ID)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header want Bearer test-key, got %q", gotAuth)
	}
	if gotPath != "/emails" {
		t.Fatalf("path want /emails, got %q", gotPath)
	}
	if gotBody.Subject != "New contact form submission" || len(gotBody.To) != 1 {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"validation_error","message":"Invalid from address"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.Send(context.Background(), &SendRequest{
		From: "bad", To: []string{"a@b.com"}, Subject: "x",
	})
	if err == nil {
		t.Fatalf("want error on 422")
	}
	if !strings.Contains(err.Error(), "Invalid from address") {
		t.Fatalf("error should carry API message, got %v", err)
	}
}

func TestSendUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.Send(context.Background(), &SendRequest{
		From: "a@b.com", To: []string{"c@d.com"}, Subject: "x",
	})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("want status error, got %v", err)
	}
}
