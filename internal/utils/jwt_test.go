package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, expiresAt, err := GenerateSessionToken("admin-1", "admin", "admin")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	wantExpiry := time.Now().Add(SessionTTL)
	if diff := expiresAt.Sub(wantExpiry); diff > time.Minute || diff < -time.Minute {
		t.Fatalf("expiry not ~24h from now: got %v", expiresAt)
	}

	claims, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("validate token failed: %v", err)
	}
	if claims.AdminID != "admin-1" {
		t.Fatalf("admin id want admin-1, got %q", claims.AdminID)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSessionTokenExpired(t *testing.T) {
	InitJWT("test-secret")

	claims := &SessionClaims{
		AdminID:  "admin-1",
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign expired token failed: %v", err)
	}

	if _, err := ValidateSessionToken(token); err != ErrTokenExpired {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestSessionTokenBadSignature(t *testing.T) {
	InitJWT("test-secret")
	token, _, err := GenerateSessionToken("admin-1", "admin", "admin")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	InitJWT("other-secret")
	if _, err := ValidateSessionToken(token); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	InitJWT("test-secret")
	if _, err := ValidateSessionToken("not-a-jwt"); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
