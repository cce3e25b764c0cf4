package app

import (
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Fractal   services.FractalService
	Challenge services.ChallengeService
	Welcome   services.WelcomeService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")

	store := services.NewDBSessionStore(log, reposet.FractalSession, clients.Cache)
	executor := fractal.NewExecutor(log, clients.Gemini)
	engine := fractal.NewEngine(log, executor, store)

	return Services{
		Auth: services.NewAuthService(
			db, log, reposet.User, reposet.UserToken,
			cfg.JWTSecretKey, cfg.AdminEmail, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		),
		Fractal:   services.NewFractalService(log, engine, reposet.ChatLog),
		Challenge: services.NewChallengeService(log, clients.Gemini),
		Welcome:   services.NewWelcomeService(log, reposet.WelcomeContent, clients.Cache),
	}
}
