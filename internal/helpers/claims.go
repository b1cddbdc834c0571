package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the payload of an admin session token. The dashboard has a
// single operator role; the token exists so the gate is verified server-side
// on every request instead of being a client-side string comparison.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const AdminRole = "admin"

// SessionTTL bounds how long a dashboard session stays valid.
const SessionTTL = 12 * time.Hour

// IssueAdminToken signs a fresh session token with the configured secret.
func IssueAdminToken(secret string, now time.Time) (string, error) {
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "adriaticride-api",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %v", err)
	}
	return signed, nil
}

// ValidateAdminToken parses and verifies a session token.
func ValidateAdminToken(tokenStr, secret string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	if claims.Role != AdminRole {
		return nil, errors.New("token does not carry the admin role")
	}

	return claims, nil
}
