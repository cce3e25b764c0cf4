package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/http/response"
	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/services"
)

type ChallengeHandler struct {
	challengeService services.ChallengeService
}

func NewChallengeHandler(challengeService services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

type challengeTurnRequest struct {
	SystemInstruction string         `json:"system_instruction" binding:"required"`
	History           []fractal.Turn `json:"history" binding:"required"`
}

// POST /api/challenge/turn
func (h *ChallengeHandler) Turn(c *gin.Context) {
	var req challengeTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	text, err := h.challengeService.Respond(c.Request.Context(), req.SystemInstruction, req.History)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"text": text})
}
