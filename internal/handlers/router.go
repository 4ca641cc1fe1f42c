package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires CORS and every route onto a gin engine.
func NewRouter(app *App) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(app.Config.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = app.Config.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true // For development only
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		// Auth Routes
		api.GET("/auth/config", app.AuthConfig)
		api.POST("/auth/google", app.GoogleSignIn)

		// Everything below needs a session (or runs under the fixed key
		// when auth is disabled)
		authed := api.Group("", app.RequireSession())
		{
			authed.POST("/auth/signout", app.SignOut)

			authed.GET("/records", app.ListRecords)
			authed.POST("/records", app.CreateRecord)
			authed.PUT("/records/:id", app.UpdateRecord)
			authed.DELETE("/records/:id", app.DeleteRecord)

			authed.GET("/records/export", app.ExportRecords)
			authed.POST("/records/import", app.ImportRecords)
		}
	}
	return r
}
