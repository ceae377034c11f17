package jwt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

var ErrMissingClaims = errors.New("token claims are missing or invalid")

// Claims is the typed view of an access token.
type Claims struct {
	UserID     int64
	Email      string
	EmployeeID *int64
	Role       user.Role
	Type       string
}

// ClaimsFromContext reads the verified token placed in ctx by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return ParseClaims(raw)
}

func ParseClaims(raw map[string]interface{}) (Claims, error) {
	userID, ok := int64Claim(raw["user_id"])
	if !ok || userID <= 0 {
		return Claims{}, ErrMissingClaims
	}

	claims := Claims{UserID: userID}
	claims.Email, _ = raw["email"].(string)
	claims.Type, _ = raw["type"].(string)
	if role, ok := raw["role"].(string); ok {
		claims.Role = user.Role(role)
	}
	if employeeID, ok := int64Claim(raw["employee_id"]); ok {
		claims.EmployeeID = &employeeID
	}

	return claims, nil
}

// int64Claim accepts the numeric shapes a decoded JSON claim can take.
func int64Claim(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
