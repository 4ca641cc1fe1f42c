package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pavan-459/My-Job-Dasboard/internal/config"
	"github.com/pavan-459/My-Job-Dasboard/internal/handlers"
	"github.com/pavan-459/My-Job-Dasboard/internal/logger"
)

func main() {
	// 1. Load Configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	// 2. Logger
	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Error building logger: ", err)
	}
	defer logg.Sync()

	if cfg.SetupRequired() {
		// The server still starts, but sign-in is refused until both
		// values are configured.
		logg.Warn("⚠️  authentication setup required: set GOOGLE_CLIENT_ID and ALLOWED_EMAIL")
	}

	// 3. Application Core (gate, sessions, per-account stores)
	app := handlers.NewApp(cfg, logg)

	// 4. Router & CORS
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(app)

	logg.Info("🚀 server starting",
		zap.String("addr", cfg.ServerAddr()),
		zap.String("auth_mode", cfg.AuthMode),
		zap.String("data_dir", cfg.DataDir))
	if err := r.Run(cfg.ServerAddr()); err != nil {
		logg.Fatal("server failed to start", zap.Error(err))
	}
}
