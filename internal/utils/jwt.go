package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long an admin session token stays valid after login.
const SessionTTL = 24 * time.Hour

var jwtSecret []byte

// InitJWT sets the signing secret for session tokens. Must be called once at
// startup before any token is issued or validated.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

// SessionClaims are the claims carried by an admin session token.
type SessionClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a signed HS256 token for the given admin,
// expiring SessionTTL from now.
func GenerateSessionToken(adminID, username, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(SessionTTL)

	claims := SessionClaims{
		AdminID:  adminID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateSessionToken parses and verifies a session token. Expired or
// tampered tokens return an error.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
