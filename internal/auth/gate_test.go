package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavan-459/My-Job-Dasboard/internal/models"
)

// signedCredential builds a token shaped like the one Google Identity
// Services hands to the callback. The gate never checks the signature, so
// any signing key works here.
func signedCredential(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

func TestAuthorizeAcceptsAllowedAccount(t *testing.T) {
	g := NewGate("client-123", "user@example.com")

	cred := signedCredential(t, jwt.MapClaims{
		"email":   "user@example.com",
		"name":    "Test User",
		"picture": "https://example.com/avatar.png",
	})
	acct, err := g.Authorize(cred)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", acct.Email)
	assert.Equal(t, "Test User", acct.Name)
	assert.Equal(t, "https://example.com/avatar.png", acct.Picture)
}

func TestAuthorizeIsCaseInsensitive(t *testing.T) {
	g := NewGate("client-123", "user@example.com")

	cred := signedCredential(t, jwt.MapClaims{"email": "USER@example.com"})
	acct, err := g.Authorize(cred)
	require.NoError(t, err)
	assert.Equal(t, "USER@example.com", acct.Email)
}

func TestAuthorizeRejectsWrongAccountNamingRequiredOne(t *testing.T) {
	g := NewGate("client-123", "user@example.com")

	cred := signedCredential(t, jwt.MapClaims{"email": "other@example.com"})
	_, err := g.Authorize(cred)
	require.ErrorIs(t, err, ErrNotAuthorized)
	assert.Contains(t, err.Error(), "user@example.com")
}

func TestAuthorizeRejectsMalformedCredentials(t *testing.T) {
	g := NewGate("client-123", "user@example.com")

	for _, cred := range []string{
		"",
		"not-a-jwt",
		"only.two",
		"!!!.###.$$$",
		"eyJhbGciOiJIUzI1NiJ9.not_base64!!.sig",
	} {
		_, err := g.Authorize(cred)
		assert.ErrorIs(t, err, ErrBadCredential, "credential %q", cred)
	}
}

func TestAuthorizeRejectsMissingEmail(t *testing.T) {
	g := NewGate("client-123", "user@example.com")

	cred := signedCredential(t, jwt.MapClaims{"name": "No Email"})
	_, err := g.Authorize(cred)
	assert.ErrorIs(t, err, ErrBadCredential)
}

func TestAuthorizeNameFallsBackToEmail(t *testing.T) {
	g := NewGate("client-123", "user@example.com")

	cred := signedCredential(t, jwt.MapClaims{"email": "user@example.com"})
	acct, err := g.Authorize(cred)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", acct.Name)
}

func TestGateFailsClosedWithoutConfig(t *testing.T) {
	cred := signedCredential(t, jwt.MapClaims{"email": "user@example.com"})

	for _, g := range []*Gate{
		NewGate("", ""),
		NewGate("client-123", ""),
		NewGate("", "user@example.com"),
		NewGate("   ", "  "),
	} {
		assert.True(t, g.SetupRequired())
		_, err := g.Authorize(cred)
		assert.ErrorIs(t, err, ErrSetupRequired)
	}

	assert.False(t, NewGate("client-123", "user@example.com").SetupRequired())
}

func TestSessions(t *testing.T) {
	s := NewSessions()
	acct := models.Account{Email: "user@example.com", Name: "Test User"}

	token := s.Issue(acct)
	require.NotEmpty(t, token)

	got, ok := s.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, acct, got)

	_, ok = s.Resolve("bogus")
	assert.False(t, ok)

	s.Revoke(token)
	_, ok = s.Resolve(token)
	assert.False(t, ok)

	// revoking twice is a no-op
	s.Revoke(token)
}

func TestFromBearer(t *testing.T) {
	assert.Equal(t, "abc", FromBearer("Bearer abc"))
	assert.Equal(t, "abc", FromBearer("bearer abc"))
	assert.Equal(t, "", FromBearer(""))
	assert.Equal(t, "", FromBearer("Basic abc"))
	assert.Equal(t, "", FromBearer("Bearer "))
}
