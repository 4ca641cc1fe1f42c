package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pavan-459/My-Job-Dasboard/internal/auth"
	"github.com/pavan-459/My-Job-Dasboard/internal/config"
	"github.com/pavan-459/My-Job-Dasboard/internal/models"
	"github.com/pavan-459/My-Job-Dasboard/internal/store"
)

// Context keys used to pass the resolved session to the record handlers.
const (
	ctxStoreKey   = "store"
	ctxAccountKey = "account"
)

// App bundles the dependencies every handler needs.
// Dependency injection, same as the service constructors.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Gate     *auth.Gate
	Sessions *auth.Sessions

	mu     sync.Mutex
	stores map[string]*store.Store // storage key -> open store
}

// NewApp creates the handler set with its dependencies.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	return &App{
		Config:   cfg,
		Log:      log,
		Gate:     auth.NewGate(cfg.GoogleClientID, cfg.AllowedEmail),
		Sessions: auth.NewSessions(),
		stores:   make(map[string]*store.Store),
	}
}

// storeForKey opens (or reuses) the store persisted under key.
func (a *App) storeForKey(key string) *store.Store {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.stores[key]; ok {
		return s
	}
	s := store.Open(a.Config.DataDir, key, a.Log)
	a.stores[key] = s
	return s
}

// dropStore forgets a cached store so the next sign-in reloads from disk
// instead of reusing another session's in-memory collection.
func (a *App) dropStore(key string) {
	a.mu.Lock()
	delete(a.stores, key)
	a.mu.Unlock()
}

// RequireSession resolves the caller's record store. With the gate enabled
// that means a valid bearer session scoping the store to the account's key;
// with the gate disabled everything lives under the fixed key.
func (a *App) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Config.AuthEnabled() {
			c.Set(ctxStoreKey, a.storeForKey(store.DefaultKey))
			c.Next()
			return
		}

		token := auth.FromBearer(c.GetHeader("Authorization"))
		acct, ok := a.Sessions.Resolve(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
			return
		}
		c.Set(ctxAccountKey, acct)
		c.Set(ctxStoreKey, a.storeForKey(store.KeyForEmail(acct.Email)))
		c.Next()
	}
}

// storeFrom pulls the session's store out of the gin context. RequireSession
// always sets it before the record handlers run.
func storeFrom(c *gin.Context) *store.Store {
	return c.MustGet(ctxStoreKey).(*store.Store)
}

func accountFrom(c *gin.Context) (models.Account, bool) {
	v, ok := c.Get(ctxAccountKey)
	if !ok {
		return models.Account{}, false
	}
	acct, ok := v.(models.Account)
	return acct, ok
}

// HealthCheck is the GET /health endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
