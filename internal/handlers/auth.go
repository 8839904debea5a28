package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/constants"
	"github.com/shiftcrew/shift-management-api/internal/dto"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/middleware"
	"github.com/shiftcrew/shift-management-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a staff member and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		StaffID  string `json:"staffId" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.StaffID, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AdminLogin authenticates against the fixed admin credentials.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	type AdminLoginRequest struct {
		ID       string `json:"id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.AdminLogin(req.ID, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetCurrentStaff returns the authenticated staff member's identity.
func (h *AuthHandler) GetCurrentStaff(c *gin.Context) {
	staffID, exists := middleware.GetStaffID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	profile, err := h.authService.GetStaff(staffID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffSummaryDTO(*profile))
}

// GetAdmin returns the administrator identity.
func (h *AuthHandler) GetAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":   h.authService.AdminID(),
		"role": constants.RoleAdmin,
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.RespondWithError(c, http.StatusUnauthorized,
			apierrors.NewAPIError(apierrors.ErrCodeInvalidCredentials, err.Error()))
	case errors.Is(err, services.ErrStaffNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Error().Err(err).Msg("Authentication failed unexpectedly")
		apierrors.InternalError(c, "")
	}
}
