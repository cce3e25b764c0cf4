package fractal

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/platform/gemini"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/types"
)

// fakeLLM records what the executor sends and replies with canned text.
type fakeLLM struct {
	reply        string
	err          error
	calls        int
	lastSystem   string
	lastContents []gemini.Content
	lastSchema   map[string]any
}

func (f *fakeLLM) GenerateStructured(_ context.Context, system string, contents []gemini.Content, schema map[string]any) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastContents = contents
	f.lastSchema = schema
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) GenerateText(_ context.Context, system string, contents []gemini.Content) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastContents = contents
	return f.reply, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestWindowHistory_NeverExceedsTwelveMostRecent(t *testing.T) {
	var history []Turn
	for i := 0; i < 30; i++ {
		history = append(history, Turn{Role: "user", Text: fmt.Sprintf("m%d", i)})
	}
	window := WindowHistory(history)
	if len(window) != HistoryWindow {
		t.Fatalf("expected %d turns, got %d", HistoryWindow, len(window))
	}
	if window[0].Text != "m18" || window[len(window)-1].Text != "m29" {
		t.Fatalf("expected most recent turns in order, got first=%q last=%q", window[0].Text, window[len(window)-1].Text)
	}

	short := []Turn{{Role: "user", Text: "hola"}}
	if got := WindowHistory(short); len(got) != 1 || got[0].Text != "hola" {
		t.Fatalf("short history altered: %+v", got)
	}
}

func TestRunTurn_ForwardsWindowedTranscript(t *testing.T) {
	llm := &fakeLLM{reply: `{"respuesta_conversacional":"ok","datos":{},"fase_completa":false}`}
	ex := NewExecutor(testLogger(t), llm)

	var history []Turn
	for i := 0; i < 20; i++ {
		history = append(history, Turn{Role: "user", Text: fmt.Sprintf("m%d", i)})
	}
	if _, err := ex.RunTurn(context.Background(), 1, history, types.NewFractalData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(llm.lastContents) != HistoryWindow {
		t.Fatalf("expected %d forwarded turns, got %d", HistoryWindow, len(llm.lastContents))
	}
	if llm.lastContents[0].Text != "m8" {
		t.Fatalf("expected oldest forwarded turn m8, got %q", llm.lastContents[0].Text)
	}
	if llm.lastSystem == "" || llm.lastSchema == nil {
		t.Fatalf("expected instruction and schema to be sent")
	}
}

func TestRunTurn_InvalidPhase(t *testing.T) {
	llm := &fakeLLM{}
	ex := NewExecutor(testLogger(t), llm)
	_, err := ex.RunTurn(context.Background(), 7, nil, types.NewFractalData())
	if !apierr.Is(err, apierr.CodeInvalidPhase) {
		t.Fatalf("expected invalid_phase, got %v", err)
	}
	if llm.calls != 0 {
		t.Fatalf("expected no model call for invalid phase")
	}
}

func TestRunTurn_ServiceErrorSurfacesAsServiceUnavailable(t *testing.T) {
	llm := &fakeLLM{err: errors.New("timeout")}
	ex := NewExecutor(testLogger(t), llm)
	_, err := ex.RunTurn(context.Background(), 1, nil, types.NewFractalData())
	if !apierr.Is(err, apierr.CodeServiceUnavailable) {
		t.Fatalf("expected service_unavailable, got %v", err)
	}
}

func TestParseStructuredReply_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not json", "sorry, I cannot do that"},
		{"missing datos", `{"respuesta_conversacional":"hola","fase_completa":false}`},
		{"missing reply", `{"datos":{},"fase_completa":false}`},
		{"missing flag", `{"respuesta_conversacional":"hola","datos":{}}`},
	}
	for _, tc := range cases {
		if _, err := ParseStructuredReply(tc.text); !apierr.Is(err, apierr.CodeMalformedModelOutput) {
			t.Fatalf("%s: expected malformed_model_output, got %v", tc.name, err)
		}
	}
}

func TestParseStructuredReply_ValidReply(t *testing.T) {
	reply, err := ParseStructuredReply(`{"respuesta_conversacional":"hola","datos":{"nombre_simbolico":"Ánima"},"fase_completa":true}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.RespuestaConversacional != "hola" || !reply.FaseCompleta {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if string(reply.Datos) != `{"nombre_simbolico":"Ánima"}` {
		t.Fatalf("unexpected datos: %s", reply.Datos)
	}
}
