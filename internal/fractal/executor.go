package fractal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/platform/gemini"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/types"
)

// HistoryWindow bounds how many turns are forwarded to the model per
// request. Older context is silently dropped.
const HistoryWindow = 12

// Turn is one message of the conversation history.
type Turn struct {
	Role string `json:"role"` // "user" | "model"
	Text string `json:"text"`
}

// StructuredReply is the parsed, schema-conformant output of one turn.
// Datos stays raw here; the merge engine decodes it per phase.
type StructuredReply struct {
	RespuestaConversacional string          `json:"respuesta_conversacional"`
	Datos                   json.RawMessage `json:"datos"`
	FaseCompleta            bool            `json:"fase_completa"`
}

// Executor drives a single conversational turn against the generative
// service. It mutates nothing; applying the reply is the caller's job.
type Executor struct {
	log *logger.Logger
	llm gemini.Client
}

func NewExecutor(log *logger.Logger, llm gemini.Client) *Executor {
	return &Executor{log: log.With("component", "FractalExecutor"), llm: llm}
}

func (e *Executor) RunTurn(ctx context.Context, phase int, history []Turn, data types.FractalData) (StructuredReply, error) {
	spec, err := SpecForPhase(phase, data)
	if err != nil {
		return StructuredReply{}, err
	}

	window := WindowHistory(history)
	contents := make([]gemini.Content, 0, len(window))
	for _, t := range window {
		contents = append(contents, gemini.Content{Role: t.Role, Text: t.Text})
	}

	text, err := e.llm.GenerateStructured(ctx, spec.Instruction, contents, spec.ResponseSchema)
	if err != nil {
		return StructuredReply{}, apierr.ServiceUnavailable(err)
	}

	return ParseStructuredReply(text)
}

// WindowHistory keeps the most recent HistoryWindow turns in original order.
func WindowHistory(history []Turn) []Turn {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}

// ParseStructuredReply decodes model text into a StructuredReply. Text that
// does not parse, or parses with any required field absent, is a
// malformed_model_output error. The caller may let the user retry the turn.
func ParseStructuredReply(text string) (StructuredReply, error) {
	var raw struct {
		RespuestaConversacional *string         `json:"respuesta_conversacional"`
		Datos                   json.RawMessage `json:"datos"`
		FaseCompleta            *bool           `json:"fase_completa"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return StructuredReply{}, apierr.MalformedModelOutput(fmt.Errorf("parse model output: %w", err))
	}
	if raw.RespuestaConversacional == nil {
		return StructuredReply{}, apierr.MalformedModelOutput(fmt.Errorf("model output missing respuesta_conversacional"))
	}
	if raw.Datos == nil {
		return StructuredReply{}, apierr.MalformedModelOutput(fmt.Errorf("model output missing datos"))
	}
	if raw.FaseCompleta == nil {
		return StructuredReply{}, apierr.MalformedModelOutput(fmt.Errorf("model output missing fase_completa"))
	}
	return StructuredReply{
		RespuestaConversacional: *raw.RespuestaConversacional,
		Datos:                   raw.Datos,
		FaseCompleta:            *raw.FaseCompleta,
	}, nil
}
