package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/platform/gemini"
	"github.com/retodia/retodia-backend/internal/platform/logger"
)

// ChallengeService powers the daily-challenge assistant: free-form system
// instruction, plain-text reply, no structured extraction.
type ChallengeService interface {
	Respond(ctx context.Context, systemInstruction string, history []fractal.Turn) (string, error)
}

type challengeService struct {
	log *logger.Logger
	llm gemini.Client
}

func NewChallengeService(log *logger.Logger, llm gemini.Client) ChallengeService {
	return &challengeService{log: log.With("service", "ChallengeService"), llm: llm}
}

func (s *challengeService) Respond(ctx context.Context, systemInstruction string, history []fractal.Turn) (string, error) {
	if strings.TrimSpace(systemInstruction) == "" {
		return "", fmt.Errorf("systemInstruction is required")
	}
	if len(history) == 0 {
		return "", fmt.Errorf("history is required")
	}

	window := fractal.WindowHistory(history)
	contents := make([]gemini.Content, 0, len(window))
	for _, t := range window {
		contents = append(contents, gemini.Content{Role: t.Role, Text: t.Text})
	}

	text, err := s.llm.GenerateText(ctx, systemInstruction, contents)
	if err != nil {
		return "", apierr.ServiceUnavailable(err)
	}
	return strings.TrimSpace(text), nil
}
