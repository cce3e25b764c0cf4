package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/db"
	"github.com/retodia/retodia-backend/internal/observability"
	"github.com/retodia/retodia-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services

	shutdownTracing func(context.Context) error
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

	shutdownTracing, err := observability.InitTracing(context.Background(), log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	dbService, err := db.New(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	theDB := dbService.DB()

	clientset, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, clientset, reposet)
	handlerset := wireHandlers(log, serviceset)
	middlewareset := wireMiddleware(log, serviceset)
	router := wireRouter(log, handlerset, middlewareset)

	if err := serviceset.Welcome.SeedIfEmpty(context.Background(), cfg.WelcomeSeedPath); err != nil {
		log.Warn("welcome content seed failed", "error", err)
	}

	return &App{
		Log:             log,
		DB:              theDB,
		Router:          router,
		Cfg:             cfg,
		Clients:         clientset,
		Repos:           reposet,
		Services:        serviceset,
		shutdownTracing: shutdownTracing,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting HTTP server", "addr", a.Cfg.ListenAddr)
	return a.Router.Run(a.Cfg.ListenAddr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownTracing != nil {
		_ = a.shutdownTracing(context.Background())
	}
	if a.Clients.Cache != nil {
		_ = a.Clients.Cache.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
