package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const referenceSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePaymentReference returns a customer-facing payment reference.
// Format: GP<unix-millis><6 uppercase alphanumerics>, e.g. GP1735689600123X7Q2ZT.
// The random suffix comes from crypto/rand so two calls in the same
// millisecond still produce distinct references.
func GeneratePaymentReference() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = referenceSuffixChars[int(b[i])%len(referenceSuffixChars)]
	}
	return fmt.Sprintf("GP%d%s", time.Now().UnixMilli(), b), nil
}
