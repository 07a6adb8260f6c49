package token

import (
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/rfonline/rfclient/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Role is a user role from the closed set the backend issues. Anything outside
// this set carries zero privileges; there is no hierarchy between roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleClient Role = "client"
)

// ParseRole maps a raw claim value onto the closed role set. The match is
// case-sensitive and exact.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin, RoleCoach, RoleClient:
		return Role(raw), true
	}
	return "", false
}

// Identity is the projection of a bearer token payload the client cares about.
// The payload may carry more claims; they are ignored.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"rol"`
	DisplayName string `json:"nombre"`
}

// Decode extracts an identity from a bearer token without verifying its
// signature. Trust in the signature is delegated to the backend that issued
// the token; the client only needs the payload claims and the expiry.
//
// Any structural failure (wrong segment count, bad base64url, invalid JSON)
// yields ErrInvalidToken. A payload whose exp claim is strictly in the past
// yields ErrTokenExpired regardless of structure. Decode never panics and is
// pure over its input and NowTimeFunc.
func Decode(raw string) (*Identity, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.ErrInvalidToken
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidToken, "token.Decode: %v", err)
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.ErrInvalidToken
	}

	// exp is epoch seconds; compare in milliseconds against the clock.
	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp)*1000 < NowTimeFunc().UnixMilli() {
			return nil, errors.ErrTokenExpired
		}
	}

	rawRole := stringClaim(claims, "rol")
	role, _ := ParseRole(rawRole)

	return &Identity{
		ID:          stringClaim(claims, "id"),
		Email:       stringClaim(claims, "email"),
		Role:        role,
		DisplayName: stringClaim(claims, "nombre"),
	}, nil
}

// stringClaim reads a claim as a string, coercing numeric IDs the backend
// occasionally issues.
func stringClaim(claims jwtlib.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}
