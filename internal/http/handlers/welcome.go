package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/retodia/retodia-backend/internal/http/response"
	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/services"
	"github.com/retodia/retodia-backend/internal/types"
)

type WelcomeHandler struct {
	welcomeService services.WelcomeService
}

func NewWelcomeHandler(welcomeService services.WelcomeService) *WelcomeHandler {
	return &WelcomeHandler{welcomeService: welcomeService}
}

// GET /api/welcome/active
func (h *WelcomeHandler) GetActive(c *gin.Context) {
	content, err := h.welcomeService.GetActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveWelcomeContent) {
			response.RespondError(c, http.StatusNotFound, "no_active_content", err)
			return
		}
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"content": content})
}

// GET /api/admin/welcome
func (h *WelcomeHandler) List(c *gin.Context) {
	contents, err := h.welcomeService.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contents": contents})
}

// POST /api/admin/welcome
func (h *WelcomeHandler) Upsert(c *gin.Context) {
	var req types.WelcomeContent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	saved, err := h.welcomeService.Upsert(c.Request.Context(), &req)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"content": saved})
}

// POST /api/admin/welcome/:id/activate
func (h *WelcomeHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	if err := h.welcomeService.SetActive(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"activated": id})
}

// DELETE /api/admin/welcome/:id
func (h *WelcomeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	if err := h.welcomeService.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
