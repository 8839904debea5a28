package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/services"
)

// ProjectHandler coordinates project and slot HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

type projectDetailRequest struct {
	ProjectName            string   `json:"projectName"`
	CompanyID              uint64   `json:"companyId"`
	WorkDate               string   `json:"workDate"`
	StartTime              string   `json:"startTime"`
	EndTime                string   `json:"endTime"`
	Address                string   `json:"address"`
	Postcode               string   `json:"postcode"`
	PhoneNumber            string   `json:"phonenumber"`
	ManagerName            string   `json:"managerName"`
	RequiredMembers        int      `json:"requiredMembers"`
	UnitPrice              int      `json:"unitPrice"`
	UnitPriceType          string   `json:"unitPriceType"`
	Memo                   string   `json:"memo"`
	SelectedQualifications []uint64 `json:"selectedQualifications"`
	QualifiedMembersNeeded []int    `json:"qualifiedMembersNeeded"`
}

func (r *projectDetailRequest) parseTimes() (workDate, startTime, endTime time.Time, err error) {
	if workDate, err = parseDate(r.WorkDate); err != nil {
		return
	}
	if startTime, err = parseTimestamp(r.StartTime); err != nil {
		return
	}
	endTime, err = parseTimestamp(r.EndTime)
	return
}

// Register creates a new project with its first slot, or appends a slot to
// an existing project.
func (h *ProjectHandler) Register(c *gin.Context) {
	type RegisterProjectRequest struct {
		projectDetailRequest
		ProjectType       string `json:"projectType" binding:"required"`
		ExistingProjectID uint64 `json:"existingProjectId"`
	}

	var req RegisterProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.ProjectType == services.ProjectTypeNew {
		if req.ProjectName == "" || req.CompanyID == 0 || req.WorkDate == "" ||
			req.StartTime == "" || req.EndTime == "" || req.ManagerName == "" ||
			req.RequiredMembers == 0 || req.UnitPrice == 0 || req.UnitPriceType == "" {
			apierrors.BadRequest(c, "Required fields are missing")
			return
		}
	}

	workDate, startTime, endTime, err := req.parseTimes()
	if err != nil {
		apierrors.BadRequest(c, "Invalid date or time")
		return
	}

	err = h.projectService.Register(services.RegisterProjectInput{
		ProjectType:            req.ProjectType,
		ProjectName:            req.ProjectName,
		CompanyID:              req.CompanyID,
		ExistingProjectID:      req.ExistingProjectID,
		WorkDate:               workDate,
		StartTime:              startTime,
		EndTime:                endTime,
		Address:                req.Address,
		Postcode:               req.Postcode,
		PhoneNumber:            req.PhoneNumber,
		ManagerName:            req.ManagerName,
		RequiredMembers:        req.RequiredMembers,
		UnitPrice:              req.UnitPrice,
		UnitPriceType:          req.UnitPriceType,
		Memo:                   req.Memo,
		SelectedQualifications: req.SelectedQualifications,
		QualifiedMembersNeeded: req.QualifiedMembersNeeded,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project registered"})
}

// ListAll returns every project with company and slots.
func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.projectService.ListAll()
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// ListByMonth returns projects with at least one slot in the requested month.
func (h *ProjectHandler) ListByMonth(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		apierrors.BadRequest(c, "Invalid year or month")
		return
	}

	projects, err := h.projectService.ListByMonth(year, time.Month(month))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetDetail returns a project restricted to one slot.
func (h *ProjectHandler) GetDetail(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}
	descriptionID, ok := pathID(c, "projectDescriptionId")
	if !ok {
		apierrors.BadRequest(c, "Invalid project description ID")
		return
	}

	project, err := h.projectService.GetDetail(projectID, descriptionID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateDetail updates the project, the slot and its requirement set.
func (h *ProjectHandler) UpdateDetail(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}
	descriptionID, ok := pathID(c, "projectDescriptionId")
	if !ok {
		apierrors.BadRequest(c, "Invalid project description ID")
		return
	}

	var req projectDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	workDate, startTime, endTime, err := req.parseTimes()
	if err != nil {
		apierrors.BadRequest(c, "Invalid date or time")
		return
	}

	err = h.projectService.UpdateDetail(projectID, descriptionID, services.UpdateDetailInput{
		ProjectName:            req.ProjectName,
		CompanyID:              req.CompanyID,
		WorkDate:               workDate,
		StartTime:              startTime,
		EndTime:                endTime,
		Address:                req.Address,
		Postcode:               req.Postcode,
		PhoneNumber:            req.PhoneNumber,
		ManagerName:            req.ManagerName,
		RequiredMembers:        req.RequiredMembers,
		UnitPrice:              req.UnitPrice,
		UnitPriceType:          req.UnitPriceType,
		Memo:                   req.Memo,
		SelectedQualifications: req.SelectedQualifications,
		QualifiedMembersNeeded: req.QualifiedMembersNeeded,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project detail updated"})
}

// DeleteDetail removes a slot; the whole project goes when it was the last one.
func (h *ProjectHandler) DeleteDetail(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}
	descriptionID, ok := pathID(c, "projectDescriptionId")
	if !ok {
		apierrors.BadRequest(c, "Invalid project description ID")
		return
	}

	if err := h.projectService.DeleteDetail(projectID, descriptionID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project detail deleted"})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidProjectType),
		errors.Is(err, services.ErrExistingProjectIDMissing),
		errors.Is(err, services.ErrRequirementMismatch):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrProjectDetailNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Error().Err(err).Msg("Project operation failed")
		apierrors.InternalError(c, "")
	}
}
