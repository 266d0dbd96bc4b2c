package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/catalog-be/internal/models"
)

var alice = models.Identity{ID: 42, Firstname: "Alice", Lastname: "Liddell", Email: "alice@example.com"}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()
	tm := NewTokenManager("super-secret", "catalog-backend", SessionTTL)

	tok, err := tm.Generate(alice)
	require.NoError(t, err)

	got, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestTokenCarriesTwoHourExpiry(t *testing.T) {
	t.Parallel()
	issued := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret", "catalog-backend", SessionTTL)
	tm.now = func() time.Time { return issued }

	tok, err := tm.Generate(alice)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(2*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, "42", claims.Subject)

	tm.now = func() time.Time { return issued.Add(2*time.Hour + time.Second) }
	_, err = tm.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	tm := NewTokenManager("right-secret", "catalog-backend", time.Hour)
	good, err := tm.Generate(alice)
	require.NoError(t, err)

	other, err := NewTokenManager("wrong-secret", "catalog-backend", time.Hour).Generate(alice)
	require.NoError(t, err)

	foreignIssuer, err := NewTokenManager("right-secret", "someone-else", time.Hour).Generate(alice)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: 1, RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "catalog-backend",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"wrong secret": other,
		"wrong issuer": foreignIssuer,
		"alg none":     unsigned,
		"malformed":    "not.a.jwt",
		"empty":        "",
		"tampered":     good + "x",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Parse(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
