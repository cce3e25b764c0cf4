package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/retodia/retodia-backend/internal/http/response"
	"github.com/retodia/retodia-backend/internal/platform/ctxutil"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// GET /api/user
func (h *UserHandler) GetMe(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	response.RespondOK(c, gin.H{
		"id":    rd.UserID,
		"email": rd.Email,
		"role":  rd.Role,
	})
}
