package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/dto"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/middleware"
	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/services"
)

// ShiftRequestHandler coordinates shift and leave request HTTP handlers.
type ShiftRequestHandler struct {
	shiftRequestService *services.ShiftRequestService
	projectService      *services.ProjectService
}

// NewShiftRequestHandler creates a new ShiftRequestHandler.
func NewShiftRequestHandler(shiftRequestService *services.ShiftRequestService, projectService *services.ProjectService) *ShiftRequestHandler {
	return &ShiftRequestHandler{
		shiftRequestService: shiftRequestService,
		projectService:      projectService,
	}
}

// Submit records a shift claim or leave request for the authenticated staff member.
func (h *ShiftRequestHandler) Submit(c *gin.Context) {
	staffID, exists := middleware.GetStaffID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SubmitRequest struct {
		SelectedDate         string  `json:"selectedDate" binding:"required"`
		RequestType          string  `json:"requestType" binding:"required"`
		Memo                 string  `json:"memo"`
		ProjectDescriptionID *uint64 `json:"projectDescriptionId"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Required fields are missing")
		return
	}

	date, err := parseDate(req.SelectedDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date")
		return
	}

	request, err := h.shiftRequestService.Submit(staffID, services.SubmitInput{
		Date:                 date,
		RequestType:          models.ShiftRequestType(req.RequestType),
		Memo:                 req.Memo,
		ProjectDescriptionID: req.ProjectDescriptionID,
	})
	if err != nil {
		respondShiftRequestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Request submitted",
		"shiftRequest": request,
	})
}

// ProjectsByDate returns the slots working on the given date, for shift claims.
func (h *ShiftRequestHandler) ProjectsByDate(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid date")
		return
	}

	descs, err := h.projectService.DescriptionsOnDate(date)
	if err != nil {
		respondShiftRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectSlotDTOs(descs)})
}

// Delete removes a request owned by the authenticated staff member.
func (h *ShiftRequestHandler) Delete(c *gin.Context) {
	staffID, exists := middleware.GetStaffID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid shift request ID")
		return
	}

	if err := h.shiftRequestService.Delete(id, staffID); err != nil {
		respondShiftRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shift request deleted"})
}

func respondShiftRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRequestFieldsMissing),
		errors.Is(err, services.ErrDateMismatch):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotRequestOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrStaffNotFound),
		errors.Is(err, services.ErrShiftRequestNotFound),
		errors.Is(err, services.ErrProjectDetailNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Error().Err(err).Msg("Shift request operation failed")
		apierrors.InternalError(c, "")
	}
}
