package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/go-dating-service/internal/config"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() Claims {
	now := time.Now()
	return Claims{
		UserID:   7,
		Username: "alice",
		Roles:    []string{"Member", "Admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "identity",
			Audience:  jwt.ClaimStrings{"dating-api"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
}

func TestParser_Parse_OK(t *testing.T) {
	t.Parallel()

	p := NewParser(config.AuthConfig{JWTSecret: secret, Issuer: "identity", Audience: []string{"dating-api"}})

	id, err := p.Parse(sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims()))
	require.NoError(t, err)
	require.Equal(t, Identity{UserID: 7, Username: "alice", Roles: []string{"Member", "Admin"}}, id)
}

func TestParser_Parse_Rejects(t *testing.T) {
	t.Parallel()

	p := NewParser(config.AuthConfig{JWTSecret: secret, Issuer: "identity", Audience: []string{"dating-api"}})

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExp := validClaims()
	noExp.ExpiresAt = nil

	wrongIss := validClaims()
	wrongIss.Issuer = "evil"

	wrongAud := validClaims()
	wrongAud.Audience = jwt.ClaimStrings{"other"}

	noUID := validClaims()
	noUID.UserID = 0

	tcs := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong_secret", sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims())},
		{"wrong_alg", sign(t, jwt.SigningMethodHS512, []byte(secret), validClaims())},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(secret), expired)},
		{"no_exp", sign(t, jwt.SigningMethodHS256, []byte(secret), noExp)},
		{"wrong_issuer", sign(t, jwt.SigningMethodHS256, []byte(secret), wrongIss)},
		{"wrong_audience", sign(t, jwt.SigningMethodHS256, []byte(secret), wrongAud)},
		{"no_uid", sign(t, jwt.SigningMethodHS256, []byte(secret), noUID)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.token)
			require.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

// Без issuer/audience в конфиге эти поля не проверяются.
func TestParser_Parse_OptionalChecks(t *testing.T) {
	t.Parallel()

	p := NewParser(config.AuthConfig{JWTSecret: secret})

	c := validClaims()
	c.Issuer = ""
	c.Audience = nil

	id, err := p.Parse(sign(t, jwt.SigningMethodHS256, []byte(secret), c))
	require.NoError(t, err)
	require.Equal(t, int64(7), id.UserID)
}

func TestIdentity_HasAnyRole(t *testing.T) {
	t.Parallel()

	id := Identity{Roles: []string{"Member", "Moderator"}}
	require.True(t, id.HasAnyRole("Admin", "Moderator"))
	require.False(t, id.HasAnyRole("Admin"))
	require.False(t, Identity{}.HasAnyRole("Member"))
}

func TestIntoFrom(t *testing.T) {
	t.Parallel()

	_, ok := From(context.Background())
	require.False(t, ok)

	ctx := Into(context.Background(), Identity{UserID: 3})
	id, ok := From(ctx)
	require.True(t, ok)
	require.Equal(t, int64(3), id.UserID)
}
