package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/clients/redis"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/platform/seed"
	"github.com/retodia/retodia-backend/internal/repos"
	"github.com/retodia/retodia-backend/internal/types"
)

var ErrNoActiveWelcomeContent = errors.New("no active welcome content")

const welcomeCacheKey = "welcome_content:active"

type WelcomeService interface {
	GetActive(ctx context.Context) (*types.WelcomeContent, error)
	List(ctx context.Context) ([]*types.WelcomeContent, error)
	Upsert(ctx context.Context, content *types.WelcomeContent) (*types.WelcomeContent, error)
	SetActive(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	SeedIfEmpty(ctx context.Context, path string) error
}

type welcomeService struct {
	log   *logger.Logger
	repo  repos.WelcomeContentRepo
	cache *redis.Cache
}

func NewWelcomeService(log *logger.Logger, repo repos.WelcomeContentRepo, cache *redis.Cache) WelcomeService {
	return &welcomeService{log: log.With("service", "WelcomeService"), repo: repo, cache: cache}
}

func (s *welcomeService) GetActive(ctx context.Context) (*types.WelcomeContent, error) {
	var cached types.WelcomeContent
	if err := s.cache.GetJSON(ctx, welcomeCacheKey, &cached); err == nil {
		return &cached, nil
	}

	content, err := s.repo.GetActive(ctx, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveWelcomeContent
		}
		return nil, err
	}
	s.cache.SetJSON(ctx, welcomeCacheKey, content)
	return content, nil
}

func (s *welcomeService) List(ctx context.Context) ([]*types.WelcomeContent, error) {
	return s.repo.List(ctx, nil)
}

func (s *welcomeService) Upsert(ctx context.Context, content *types.WelcomeContent) (*types.WelcomeContent, error) {
	var (
		saved *types.WelcomeContent
		err   error
	)
	if content.ID == uuid.Nil {
		saved, err = s.repo.Create(ctx, nil, content)
	} else {
		if _, getErr := s.repo.GetByID(ctx, nil, content.ID); getErr != nil {
			return nil, fmt.Errorf("welcome content %s: %w", content.ID, getErr)
		}
		saved, err = s.repo.Update(ctx, nil, content)
	}
	if err != nil {
		return nil, err
	}
	s.cache.Del(ctx, welcomeCacheKey)
	return saved, nil
}

func (s *welcomeService) SetActive(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetActive(ctx, nil, id); err != nil {
		return err
	}
	s.cache.Del(ctx, welcomeCacheKey)
	return nil
}

func (s *welcomeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return err
	}
	s.cache.Del(ctx, welcomeCacheKey)
	return nil
}

// SeedIfEmpty loads the YAML seed file into an empty welcome_content table.
// A populated table or a missing path is a no-op.
func (s *welcomeService) SeedIfEmpty(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	count, err := s.repo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("count welcome content: %w", err)
	}
	if count > 0 {
		return nil
	}
	entries, err := seed.LoadWelcomeContent(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := s.repo.Create(ctx, nil, entry); err != nil {
			return fmt.Errorf("seed welcome content %q: %w", entry.Title, err)
		}
	}
	s.log.Info("seeded welcome content", "entries", len(entries), "path", path)
	return nil
}
