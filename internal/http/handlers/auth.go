package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retodia/retodia-backend/internal/http/response"
	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	user, err := h.authService.RegisterUser(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "register_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	access, refresh, user, err := h.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          user,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// POST /api/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}
	access, refresh, err := h.authService.RefreshUser(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"access_token": access, "refresh_token": refresh})
}

// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.LogoutUser(c.Request.Context()); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"logged_out": true})
}
