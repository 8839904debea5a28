package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/dto"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/middleware"
	"github.com/shiftcrew/shift-management-api/internal/services"
)

// RosterHandler coordinates project membership HTTP handlers.
type RosterHandler struct {
	rosterService *services.RosterService
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// AddMember assigns one staff profile to a slot.
func (h *RosterHandler) AddMember(c *gin.Context) {
	type AddMemberRequest struct {
		MemberID             uint64 `json:"memberId" binding:"required"`
		ProjectDescriptionID uint64 `json:"projectDescriptionId" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Required fields are missing")
		return
	}

	if _, err := h.rosterService.Assign(req.MemberID, req.ProjectDescriptionID); err != nil {
		respondRosterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project member added"})
}

// BulkUpdate reconciles the full desired roster per slot. Keys of the request
// map are slot IDs, values the complete desired staff list for that slot.
func (h *RosterHandler) BulkUpdate(c *gin.Context) {
	type memberRef struct {
		StaffProfileID uint64 `json:"staffProfileId"`
	}
	type BulkUpdateRequest struct {
		UpdateProjectMembers map[string][]memberRef `json:"updateProjectMembers" binding:"required"`
	}

	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid data format")
		return
	}

	desired := make(map[uint64][]uint64, len(req.UpdateProjectMembers))
	for key, members := range req.UpdateProjectMembers {
		descriptionID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project description ID: "+key)
			return
		}
		staffIDs := make([]uint64, len(members))
		for i, member := range members {
			staffIDs[i] = member.StaffProfileID
		}
		desired[descriptionID] = staffIDs
	}

	if err := h.rosterService.Reconcile(desired); err != nil {
		respondRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Roster and attendance records updated"})
}

// AssignedShifts returns the authenticated staff member's roster entries.
func (h *RosterHandler) AssignedShifts(c *gin.Context) {
	staffID, exists := middleware.GetStaffID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	members, err := h.rosterService.AssignedShifts(staffID)
	if err != nil {
		respondRosterError(c, err)
		return
	}

	shifts := make([]dto.AssignedShiftDTO, len(members))
	for i, member := range members {
		shifts[i] = dto.ToAssignedShiftDTO(member)
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

func respondRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyRosterUpdate):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStaffNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Error().Err(err).Msg("Roster operation failed")
		apierrors.InternalError(c, "")
	}
}
