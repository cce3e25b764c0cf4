package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/retodia/retodia-backend/internal/clients/redis"
	"github.com/retodia/retodia-backend/internal/platform/gemini"
	"github.com/retodia/retodia-backend/internal/platform/logger"
)

type Clients struct {
	Gemini gemini.Client
	Cache  *redis.Cache
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	geminiClient, err := gemini.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init gemini client: %w", err)
	}

	// Redis is optional; a nil cache is an always-miss cache.
	var cache *redis.Cache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		cache, err = redis.NewCache(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis cache: %w", err)
		}
	}

	return Clients{Gemini: geminiClient, Cache: cache}, nil
}
