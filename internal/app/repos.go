package app

import (
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/repos"
)

type Repos struct {
	User           repos.UserRepo
	UserToken      repos.UserTokenRepo
	FractalSession repos.FractalSessionRepo
	ChatLog        repos.ChatLogRepo
	WelcomeContent repos.WelcomeContentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		UserToken:      repos.NewUserTokenRepo(db, log),
		FractalSession: repos.NewFractalSessionRepo(db, log),
		ChatLog:        repos.NewChatLogRepo(db, log),
		WelcomeContent: repos.NewWelcomeContentRepo(db, log),
	}
}
