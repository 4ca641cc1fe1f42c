package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pavan-459/My-Job-Dasboard/internal/auth"
	"github.com/pavan-459/My-Job-Dasboard/internal/dtos"
	"github.com/pavan-459/My-Job-Dasboard/internal/store"
)

// AuthConfig is the GET /auth/config endpoint. It tells the frontend whether
// to render a sign-in button, a setup-required screen, or no auth at all.
// The allowed email is never exposed here.
func (a *App) AuthConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"auth_mode":      a.Config.AuthMode,
		"setup_required": a.Config.SetupRequired(),
		"client_id":      a.Gate.ClientID(),
	})
}

// GoogleSignIn is the POST /auth/google endpoint. It exchanges a Google
// Identity Services credential for a bearer token.
func (a *App) GoogleSignIn(c *gin.Context) {
	if !a.Config.AuthEnabled() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authentication is disabled"})
		return
	}
	if a.Config.SetupRequired() {
		// Fail closed: no sign-in until GOOGLE_CLIENT_ID and ALLOWED_EMAIL
		// are both set.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication setup required. Set GOOGLE_CLIENT_ID and ALLOWED_EMAIL."})
		return
	}

	var req dtos.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	acct, err := a.Gate.Authorize(req.Credential)
	if err != nil {
		a.Log.Warn("sign-in rejected", zap.Error(err))
		if errors.Is(err, auth.ErrNotAuthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrBadCredential.Error()})
		return
	}

	token := a.Sessions.Issue(*acct)
	a.Log.Info("account signed in", zap.String("email", acct.Email))
	c.JSON(http.StatusOK, gin.H{"token": token, "account": acct})
}

// SignOut is the POST /auth/signout endpoint. It revokes the session and
// drops the cached store handle, so a later sign-in (by any account) loads
// fresh from disk.
func (a *App) SignOut(c *gin.Context) {
	token := auth.FromBearer(c.GetHeader("Authorization"))
	if acct, ok := accountFrom(c); ok {
		a.dropStore(store.KeyForEmail(acct.Email))
		a.Log.Info("account signed out", zap.String("email", acct.Email))
	}
	a.Sessions.Revoke(token)
	c.Status(http.StatusNoContent)
}
