package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/dto"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/services"
	"github.com/shiftcrew/shift-management-api/internal/utils"
)

// AttendanceHandler coordinates clock-in/out and aggregate query handlers.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

type attendanceUpdateRequest struct {
	StaffProfileID  uint64 `json:"staffProfileId" binding:"required"`
	ProjectMemberID uint64 `json:"projectMemberId" binding:"required"`
	CheckInPlace    string `json:"checkInPlace"`
	CheckOutPlace   string `json:"checkOutPlace"`
}

// CheckIn transitions the caller's open record to CLOCKED_IN.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req attendanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	attendance, err := h.attendanceService.CheckIn(req.StaffProfileID, req.ProjectMemberID, req.CheckInPlace)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTO(*attendance))
}

// CheckOut transitions the caller's open record to CLOCKED_OUT.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req attendanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	attendance, err := h.attendanceService.CheckOut(req.StaffProfileID, req.ProjectMemberID, req.CheckOutPlace)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTO(*attendance))
}

// Day returns records clocked in during one UTC day, default today.
func (h *AttendanceHandler) Day(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	records, err := h.attendanceService.Day(date)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendances": dto.ToAttendanceDTOs(records)})
}

// Week returns records clocked in during the week containing the date.
func (h *AttendanceHandler) Week(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	records, err := h.attendanceService.Week(date)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendances": dto.ToAttendanceDTOs(records)})
}

// Month returns records clocked in during the requested calendar month.
func (h *AttendanceHandler) Month(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		apierrors.BadRequest(c, "Invalid year or month")
		return
	}

	records, err := h.attendanceService.Month(year, time.Month(month))
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendances": dto.ToAttendanceDTOs(records)})
}

// List returns all attendance records with staff and slot detail, paginated.
func (h *AttendanceHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	records, total, err := h.attendanceService.List(params.Offset, params.Limit)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendances": dto.ToAttendanceDTOs(records),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

func queryDate(c *gin.Context) (time.Time, bool) {
	value := c.Query("date")
	if value == "" {
		return time.Now().UTC(), true
	}
	date, err := parseDate(value)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date")
		return time.Time{}, false
	}
	return date, true
}

func respondAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAttendanceNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Error().Err(err).Msg("Attendance operation failed")
		apierrors.InternalError(c, "")
	}
}
