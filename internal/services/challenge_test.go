package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/platform/gemini"
	"github.com/retodia/retodia-backend/internal/platform/logger"
)

type fakeGemini struct {
	reply        string
	err          error
	lastSystem   string
	lastContents []gemini.Content
}

func (f *fakeGemini) GenerateStructured(_ context.Context, system string, contents []gemini.Content, _ map[string]any) (string, error) {
	f.lastSystem = system
	f.lastContents = contents
	return f.reply, f.err
}

func (f *fakeGemini) GenerateText(_ context.Context, system string, contents []gemini.Content) (string, error) {
	f.lastSystem = system
	f.lastContents = contents
	return f.reply, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestChallengeRespond_WindowsHistory(t *testing.T) {
	llm := &fakeGemini{reply: "  ¡Tú puedes!  "}
	svc := NewChallengeService(testLogger(t), llm)

	var history []fractal.Turn
	for i := 0; i < 20; i++ {
		history = append(history, fractal.Turn{Role: "user", Text: fmt.Sprintf("m%d", i)})
	}
	text, err := svc.Respond(context.Background(), "Eres un coach.", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "¡Tú puedes!" {
		t.Fatalf("expected trimmed reply, got %q", text)
	}
	if len(llm.lastContents) != fractal.HistoryWindow {
		t.Fatalf("expected %d forwarded turns, got %d", fractal.HistoryWindow, len(llm.lastContents))
	}
	if llm.lastSystem != "Eres un coach." {
		t.Fatalf("system instruction not forwarded: %q", llm.lastSystem)
	}
}

func TestChallengeRespond_Validation(t *testing.T) {
	svc := NewChallengeService(testLogger(t), &fakeGemini{reply: "x"})
	if _, err := svc.Respond(context.Background(), "", []fractal.Turn{{Role: "user", Text: "hola"}}); err == nil {
		t.Fatalf("expected error for empty instruction")
	}
	if _, err := svc.Respond(context.Background(), "instr", nil); err == nil {
		t.Fatalf("expected error for empty history")
	}
}

func TestChallengeRespond_ServiceError(t *testing.T) {
	svc := NewChallengeService(testLogger(t), &fakeGemini{err: errors.New("down")})
	_, err := svc.Respond(context.Background(), "instr", []fractal.Turn{{Role: "user", Text: "hola"}})
	if !apierr.Is(err, apierr.CodeServiceUnavailable) {
		t.Fatalf("expected service_unavailable, got %v", err)
	}
}
