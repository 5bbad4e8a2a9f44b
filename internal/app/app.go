package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Services Services
	Router   *gin.Engine
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig()

	clients := wireClients(log, cfg)

	svcs, err := wireServices(log, cfg, clients)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, svcs)
	router := wireRouter(cfg, handlerset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Clients:  clients,
		Services: svcs,
		Router:   router,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
