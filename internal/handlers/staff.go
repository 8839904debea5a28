package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/dto"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/middleware"
	"github.com/shiftcrew/shift-management-api/internal/services"
)

// StaffHandler coordinates staff registration and profile HTTP handlers.
type StaffHandler struct {
	staffService *services.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
	}
}

// Register creates a staff member together with account, contacts,
// NG list and held qualifications.
func (h *StaffHandler) Register(c *gin.Context) {
	type ContactRequest struct {
		Name         string `json:"name" binding:"required"`
		Relationship string `json:"relationship"`
		PhoneNumber  string `json:"phoneNumber"`
	}
	type RegisterRequest struct {
		StaffID             string           `json:"staffId" binding:"required"`
		Password            string           `json:"password" binding:"required"`
		FullName            string           `json:"fullName" binding:"required"`
		FullNameRoman       string           `json:"fullNameRoman"`
		Address             string           `json:"address"`
		Postcode            string           `json:"postcode"`
		PhoneNumber         string           `json:"phoneNumber"`
		Email               string           `json:"email"`
		Birthday            string           `json:"birthday" binding:"required"`
		HireDate            string           `json:"hireDate" binding:"required"`
		Role                string           `json:"role"`
		EmergencyContacts   []ContactRequest `json:"emergencyContacts"`
		NGStaff             []uint64         `json:"ngStaff"`
		StaffQualifications []uint64         `json:"staffQualifications"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	birthday, err := parseDate(req.Birthday)
	if err != nil {
		apierrors.BadRequest(c, "Invalid birthday")
		return
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid hire date")
		return
	}

	contacts := make([]services.EmergencyContactInput, len(req.EmergencyContacts))
	for i, contact := range req.EmergencyContacts {
		contacts[i] = services.EmergencyContactInput{
			Name:         contact.Name,
			Relationship: contact.Relationship,
			PhoneNumber:  contact.PhoneNumber,
		}
	}

	_, err = h.staffService.Register(services.RegisterStaffInput{
		StaffID:             req.StaffID,
		Password:            req.Password,
		FullName:            req.FullName,
		FullNameRoman:       req.FullNameRoman,
		Address:             req.Address,
		Postcode:            req.Postcode,
		PhoneNumber:         req.PhoneNumber,
		Email:               req.Email,
		Birthday:            birthday,
		HireDate:            hireDate,
		Role:                req.Role,
		EmergencyContacts:   contacts,
		NGStaff:             req.NGStaff,
		StaffQualifications: req.StaffQualifications,
	})
	if err != nil {
		respondStaffError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Staff member registered"})
}

// List returns all staff members with contacts and qualification names.
func (h *StaffHandler) List(c *gin.Context) {
	profiles, err := h.staffService.List()
	if err != nil {
		respondStaffError(c, err)
		return
	}

	members := make([]dto.MemberDTO, len(profiles))
	for i, profile := range profiles {
		members[i] = dto.ToMemberDTO(profile)
	}

	c.JSON(http.StatusOK, members)
}

// Get returns one staff member.
func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid member ID")
		return
	}

	profile, err := h.staffService.Get(id)
	if err != nil {
		respondStaffError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update overwrites the profile fields of one staff member.
func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid member ID")
		return
	}

	type UpdateRequest struct {
		StaffID     string `json:"staffId" binding:"required"`
		Name        string `json:"name" binding:"required"`
		RomanName   string `json:"romanname"`
		Address     string `json:"address"`
		Postcode    string `json:"postcode"`
		PhoneNumber string `json:"phonenumber"`
		Email       string `json:"email"`
		Birthday    string `json:"birthday" binding:"required"`
		HireDate    string `json:"hiredate" binding:"required"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	birthday, err := parseDate(req.Birthday)
	if err != nil {
		apierrors.BadRequest(c, "Invalid birthday")
		return
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid hire date")
		return
	}

	profile, err := h.staffService.Update(id, services.UpdateStaffInput{
		StaffID:     req.StaffID,
		Name:        req.Name,
		RomanName:   req.RomanName,
		Address:     req.Address,
		Postcode:    req.Postcode,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Birthday:    birthday,
		HireDate:    hireDate,
	})
	if err != nil {
		respondStaffError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Delete removes a staff member and every dependent record.
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid member ID")
		return
	}

	if err := h.staffService.Delete(id); err != nil {
		respondStaffError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}

// GetProfile returns the authenticated staff member's own profile.
func (h *StaffHandler) GetProfile(c *gin.Context) {
	staffID, exists := middleware.GetStaffID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	profile, err := h.staffService.GetProfileByStaffID(staffID)
	if err != nil {
		respondStaffError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func respondStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrStaffIDRequired),
		errors.Is(err, services.ErrPasswordRequired),
		errors.Is(err, services.ErrNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStaffIDTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrStaffNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Error().Err(err).Msg("Staff operation failed")
		apierrors.InternalError(c, "")
	}
}
