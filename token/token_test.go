package token_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t *testing.T) {
	t.Helper()
	token.NowTimeFunc = func() time.Time { return testNow }
	t.Cleanup(func() { token.NowTimeFunc = time.Now })
}

// makeToken builds a three-segment token with a base64url JSON payload. The
// signature segment is junk; Decode never verifies it.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".c2lnbmF0dXJl"
}

func TestDecodeMalformedTokens(t *testing.T) {
	fixedClock(t)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"single segment", "abcdef"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"middle segment not base64", "header.!!!not-base64!!!.sig"},
		{"middle segment not JSON", "header." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ident, err := token.Decode(tc.raw)
			require.Error(t, err)
			require.ErrorIs(t, err, errors.ErrInvalidToken)
			assert.Nil(t, ident)
		})
	}
}

func TestDecodeExpiredToken(t *testing.T) {
	fixedClock(t)

	raw := makeToken(t, map[string]any{
		"id":     "user-1",
		"email":  "ana@rf.online",
		"rol":    "client",
		"nombre": "Ana",
		"exp":    testNow.Add(-time.Minute).Unix(),
	})

	ident, err := token.Decode(raw)
	require.ErrorIs(t, err, errors.ErrTokenExpired)
	assert.Nil(t, ident)
}

func TestDecodeValidToken(t *testing.T) {
	fixedClock(t)

	raw := makeToken(t, map[string]any{
		"id":     "user-1",
		"email":  "ana@rf.online",
		"rol":    "coach",
		"nombre": "Ana Torres",
		"exp":    testNow.Add(time.Hour).Unix(),
		"iat":    testNow.Add(-time.Hour).Unix(),
		"extra":  "ignored",
	})

	ident, err := token.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", ident.ID)
	assert.Equal(t, "ana@rf.online", ident.Email)
	assert.Equal(t, token.RoleCoach, ident.Role)
	assert.Equal(t, "Ana Torres", ident.DisplayName)
}

func TestDecodeTokenWithoutExpiry(t *testing.T) {
	fixedClock(t)

	raw := makeToken(t, map[string]any{
		"id":     "user-2",
		"email":  "luis@rf.online",
		"rol":    "admin",
		"nombre": "Luis",
	})

	ident, err := token.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, token.RoleAdmin, ident.Role)
}

func TestDecodeUnknownRoleHasZeroPrivileges(t *testing.T) {
	fixedClock(t)

	raw := makeToken(t, map[string]any{
		"id":     "user-3",
		"email":  "eve@rf.online",
		"rol":    "Superuser",
		"nombre": "Eve",
	})

	ident, err := token.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, token.Role(""), ident.Role)
}

func TestDecodeNumericID(t *testing.T) {
	fixedClock(t)

	raw := makeToken(t, map[string]any{
		"id":     42,
		"email":  "n@rf.online",
		"rol":    "client",
		"nombre": "N",
	})

	ident, err := token.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", ident.ID)
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw   string
		role  token.Role
		valid bool
	}{
		{"admin", token.RoleAdmin, true},
		{"coach", token.RoleCoach, true},
		{"client", token.RoleClient, true},
		{"Admin", "", false}, // case-sensitive
		{"superadmin", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		role, ok := token.ParseRole(tc.raw)
		assert.Equal(t, tc.valid, ok, tc.raw)
		assert.Equal(t, tc.role, role, tc.raw)
	}
}
