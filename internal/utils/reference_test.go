package utils

import (
	"regexp"
	"testing"
)

var referencePattern = regexp.MustCompile(`^GP\d{13,}[A-Z0-9]{6}$`)

func TestGeneratePaymentReferenceFormat(t *testing.T) {
	ref, err := GeneratePaymentReference()
	if err != nil {
		t.Fatalf("generate reference failed: %v", err)
	}
	if !referencePattern.MatchString(ref) {
		t.Fatalf("reference %q does not match expected format", ref)
	}
}

func TestGeneratePaymentReferenceUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := GeneratePaymentReference()
		if err != nil {
			t.Fatalf("generate reference failed: %v", err)
		}
		if seen[ref] {
			t.Fatalf("duplicate reference generated: %s", ref)
		}
		seen[ref] = true
	}
}
