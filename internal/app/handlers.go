package app

import (
	"github.com/retodia/retodia-backend/internal/http/handlers"
	"github.com/retodia/retodia-backend/internal/platform/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Fractal   *handlers.FractalHandler
	Challenge *handlers.ChallengeHandler
	Welcome   *handlers.WelcomeHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(serviceset.Auth),
		User:      handlers.NewUserHandler(),
		Fractal:   handlers.NewFractalHandler(serviceset.Fractal),
		Challenge: handlers.NewChallengeHandler(serviceset.Challenge),
		Welcome:   handlers.NewWelcomeHandler(serviceset.Welcome),
	}
}
