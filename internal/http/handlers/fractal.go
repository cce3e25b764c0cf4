package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/http/response"
	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/services"
)

type FractalHandler struct {
	fractalService services.FractalService
}

func NewFractalHandler(fractalService services.FractalService) *FractalHandler {
	return &FractalHandler{fractalService: fractalService}
}

// GET /api/fractal/state
func (h *FractalHandler) GetState(c *gin.Context) {
	state, err := h.fractalService.State(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"fractal":     state.Fractal,
		"phase":       state.Phase,
		"is_complete": state.Complete,
	})
}

type turnRequest struct {
	// Ordered conversation history, newest last. The engine forwards at
	// most the last 12 turns to the model.
	History []fractal.Turn `json:"history" binding:"required"`
}

// POST /api/fractal/turn
//
// The driving UI must not submit a new turn while one is in flight for the
// same session; the engine assumes at most one outstanding call per user.
func (h *FractalHandler) Turn(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	res, err := h.fractalService.ProcessTurn(c.Request.Context(), req.History)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// POST /api/fractal/reset
func (h *FractalHandler) Reset(c *gin.Context) {
	state, err := h.fractalService.Reset(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"fractal":     state.Fractal,
		"phase":       state.Phase,
		"is_complete": state.Complete,
	})
}

// GET /api/fractal/history
func (h *FractalHandler) History(c *gin.Context) {
	entries, err := h.fractalService.History(c.Request.Context(), 200)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"messages": entries})
}
