package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"github.com/shiftcrew/shift-management-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ProjectHandler
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.StaffProfile{},
		&models.Company{},
		&models.Project{},
		&models.ProjectDescription{},
		&models.ProjectQualification{},
		&models.Qualification{},
		&models.ProjectMember{},
		&models.Attendance{},
	)
	suite.Require().NoError(err)

	projectService := services.NewProjectService(repository.NewProjectRepository(suite.db))
	suite.handler = NewProjectHandler(projectService)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *ProjectHandlerTestSuite) createTestCompany() *models.Company {
	company := &models.Company{CompanyName: "Test Company"}
	suite.db.Create(company)
	return company
}

func (suite *ProjectHandlerTestSuite) createTestProject(companyID uint64, workDates ...time.Time) *models.Project {
	project := &models.Project{ProjectName: "Test Project", CompanyID: companyID}
	suite.db.Create(project)
	for _, workDate := range workDates {
		description := &models.ProjectDescription{
			ProjectID:       project.ID,
			WorkDate:        workDate,
			RequiredMembers: 1,
			UnitPrice:       15000,
		}
		suite.db.Create(description)
	}
	suite.db.Preload("Descriptions").First(project, project.ID)
	return project
}

func (suite *ProjectHandlerTestSuite) createContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func (suite *ProjectHandlerTestSuite) setDetailParams(c *gin.Context, projectID, descriptionID uint64) {
	c.Params = gin.Params{
		{Key: "projectId", Value: strconv.FormatUint(projectID, 10)},
		{Key: "projectDescriptionId", Value: strconv.FormatUint(descriptionID, 10)},
	}
}

func (suite *ProjectHandlerTestSuite) registerBody(extra map[string]interface{}) []byte {
	payload := map[string]interface{}{
		"projectType":     "new",
		"projectName":     "Warehouse Shift",
		"companyId":       1,
		"workDate":        "2026-06-01",
		"startTime":       "2026-06-01T09:00:00Z",
		"endTime":         "2026-06-01T18:00:00Z",
		"managerName":     "Manager",
		"requiredMembers": 3,
		"unitPrice":       15000,
		"unitPriceType":   "daily",
	}
	for k, v := range extra {
		payload[k] = v
	}
	body, _ := json.Marshal(payload)
	return body
}

// TestRegister_NewProject tests creating a project with its first slot
func (suite *ProjectHandlerTestSuite) TestRegister_NewProject() {
	company := suite.createTestCompany()

	body := suite.registerBody(map[string]interface{}{
		"companyId":              company.ID,
		"selectedQualifications": []uint64{1, 2},
		"qualifiedMembersNeeded": []int{2, 1},
	})
	c, w := suite.createContext("POST", "/registerProject", body)

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var project models.Project
	err := suite.db.Preload("Descriptions.Qualifications").First(&project).Error
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Warehouse Shift", project.ProjectName)
	suite.Require().Len(project.Descriptions, 1)
	assert.Equal(suite.T(), 3, project.Descriptions[0].RequiredMembers)
	assert.Len(suite.T(), project.Descriptions[0].Qualifications, 2)
}

// TestRegister_MissingFields tests new-project registration without a name
func (suite *ProjectHandlerTestSuite) TestRegister_MissingFields() {
	body := suite.registerBody(map[string]interface{}{"projectName": ""})
	c, w := suite.createContext("POST", "/registerProject", body)

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestRegister_RequirementMismatch tests uneven qualification inputs
func (suite *ProjectHandlerTestSuite) TestRegister_RequirementMismatch() {
	company := suite.createTestCompany()

	body := suite.registerBody(map[string]interface{}{
		"companyId":              company.ID,
		"selectedQualifications": []uint64{1, 2},
		"qualifiedMembersNeeded": []int{2},
	})
	c, w := suite.createContext("POST", "/registerProject", body)

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestRegister_ExistingProject tests appending a slot to an existing project
func (suite *ProjectHandlerTestSuite) TestRegister_ExistingProject() {
	company := suite.createTestCompany()
	project := suite.createTestProject(company.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	body := suite.registerBody(map[string]interface{}{
		"projectType":       "existing",
		"existingProjectId": project.ID,
		"workDate":          "2026-06-02",
	})
	c, w := suite.createContext("POST", "/registerProject", body)

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var count int64
	suite.db.Model(&models.ProjectDescription{}).
		Where("project_id = ?", project.ID).
		Count(&count)
	assert.Equal(suite.T(), int64(2), count)
}

// TestRegister_ExistingWithoutID tests the existing type without a project ID
func (suite *ProjectHandlerTestSuite) TestRegister_ExistingWithoutID() {
	body := suite.registerBody(map[string]interface{}{"projectType": "existing"})
	c, w := suite.createContext("POST", "/registerProject", body)

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestRegister_InvalidType tests an unknown project type
func (suite *ProjectHandlerTestSuite) TestRegister_InvalidType() {
	body := suite.registerBody(map[string]interface{}{"projectType": "unknown"})
	c, w := suite.createContext("POST", "/registerProject", body)

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListByMonth tests that only projects with a slot in the month appear
func (suite *ProjectHandlerTestSuite) TestListByMonth() {
	company := suite.createTestCompany()
	suite.createTestProject(company.ID, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
	suite.createTestProject(company.ID, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	c, w := suite.createContext("GET", "/projects", nil)
	c.Request.URL.RawQuery = "year=2026&month=6"

	suite.handler.ListByMonth(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Project
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 1)
}

// TestListByMonth_InvalidMonth tests the month listing with a bad month value
func (suite *ProjectHandlerTestSuite) TestListByMonth_InvalidMonth() {
	c, w := suite.createContext("GET", "/projects", nil)
	c.Request.URL.RawQuery = "year=2026&month=0"

	suite.handler.ListByMonth(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetDetail_Success tests fetching a project restricted to one slot
func (suite *ProjectHandlerTestSuite) TestGetDetail_Success() {
	company := suite.createTestCompany()
	project := suite.createTestProject(company.ID,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
	)

	c, w := suite.createContext("GET", "/project/1/description/1", nil)
	suite.setDetailParams(c, project.ID, project.Descriptions[0].ID)

	suite.handler.GetDetail(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response models.Project
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), project.ID, response.ID)
	assert.Len(suite.T(), response.Descriptions, 1)
	assert.Equal(suite.T(), project.Descriptions[0].ID, response.Descriptions[0].ID)
}

// TestGetDetail_WrongSlot tests a slot ID that belongs to another project
func (suite *ProjectHandlerTestSuite) TestGetDetail_WrongSlot() {
	company := suite.createTestCompany()
	project := suite.createTestProject(company.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	c, w := suite.createContext("GET", "/project/1/description/9999", nil)
	suite.setDetailParams(c, project.ID, 9999)

	suite.handler.GetDetail(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateDetail_ReconcilesRequirements tests that the requirement set is
// diffed against the desired set
func (suite *ProjectHandlerTestSuite) TestUpdateDetail_ReconcilesRequirements() {
	company := suite.createTestCompany()
	project := suite.createTestProject(company.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	description := project.Descriptions[0]

	// Existing requirements: qualification 1 (x1) and 2 (x1)
	suite.db.Create(&models.ProjectQualification{
		ProjectDescriptionID: description.ID, QualificationID: 1, NumberOfMembersNeeded: 1,
	})
	suite.db.Create(&models.ProjectQualification{
		ProjectDescriptionID: description.ID, QualificationID: 2, NumberOfMembersNeeded: 1,
	})

	// Desired: qualification 2 (x3) and 3 (x1)
	body := suite.registerBody(map[string]interface{}{
		"companyId":              company.ID,
		"selectedQualifications": []uint64{2, 3},
		"qualifiedMembersNeeded": []int{3, 1},
	})
	c, w := suite.createContext("PUT", "/projects/1/description/1", body)
	suite.setDetailParams(c, project.ID, description.ID)

	suite.handler.UpdateDetail(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var requirements []models.ProjectQualification
	suite.db.Where("project_description_id = ?", description.ID).
		Order("qualification_id").Find(&requirements)
	suite.Require().Len(requirements, 2)
	assert.Equal(suite.T(), uint64(2), requirements[0].QualificationID)
	assert.Equal(suite.T(), 3, requirements[0].NumberOfMembersNeeded)
	assert.Equal(suite.T(), uint64(3), requirements[1].QualificationID)

	// Project and slot fields were overwritten as well
	var updated models.Project
	suite.db.First(&updated, project.ID)
	assert.Equal(suite.T(), "Warehouse Shift", updated.ProjectName)
}

// TestDeleteDetail_KeepsProject tests removing one of several slots
func (suite *ProjectHandlerTestSuite) TestDeleteDetail_KeepsProject() {
	company := suite.createTestCompany()
	project := suite.createTestProject(company.ID,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
	)

	c, w := suite.createContext("DELETE", "/project/1/description/1", nil)
	suite.setDetailParams(c, project.ID, project.Descriptions[0].ID)

	suite.handler.DeleteDetail(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var projectCount, descriptionCount int64
	suite.db.Model(&models.Project{}).Count(&projectCount)
	suite.db.Model(&models.ProjectDescription{}).Count(&descriptionCount)
	assert.Equal(suite.T(), int64(1), projectCount)
	assert.Equal(suite.T(), int64(1), descriptionCount)
}

// TestDeleteDetail_LastSlotRemovesProject tests that deleting the only slot
// removes the project itself, roster and attendance included
func (suite *ProjectHandlerTestSuite) TestDeleteDetail_LastSlotRemovesProject() {
	company := suite.createTestCompany()
	project := suite.createTestProject(company.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	description := project.Descriptions[0]

	staff := &models.StaffProfile{StaffID: "S001", Name: "Test Staff"}
	suite.db.Create(staff)
	member := &models.ProjectMember{StaffProfileID: staff.ID, ProjectDescriptionID: description.ID}
	suite.db.Create(member)
	suite.db.Create(&models.Attendance{
		StaffProfileID: staff.ID, ProjectMemberID: member.ID, Status: models.AttendanceNotStarted,
	})

	c, w := suite.createContext("DELETE", "/project/1/description/1", nil)
	suite.setDetailParams(c, project.ID, description.ID)

	suite.handler.DeleteDetail(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var projectCount, memberCount, attendanceCount int64
	suite.db.Model(&models.Project{}).Count(&projectCount)
	suite.db.Model(&models.ProjectMember{}).Count(&memberCount)
	suite.db.Model(&models.Attendance{}).Count(&attendanceCount)
	assert.Equal(suite.T(), int64(0), projectCount)
	assert.Equal(suite.T(), int64(0), memberCount)
	assert.Equal(suite.T(), int64(0), attendanceCount)
}

// TestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
