package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiftcrew/shift-management-api/internal/constants"
	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"github.com/shiftcrew/shift-management-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RosterHandlerTestSuite defines the test suite for RosterHandler
type RosterHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *RosterHandler
}

// SetupTest runs before each test
func (suite *RosterHandlerTestSuite) SetupTest() {
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
		&models.ProjectMember{},
		&models.Attendance{},
	)
	suite.Require().NoError(err)

	rosterService := services.NewRosterService(
		repository.NewRosterRepository(suite.db),
		repository.NewStaffRepository(suite.db),
	)
	suite.handler = NewRosterHandler(rosterService)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *RosterHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *RosterHandlerTestSuite) createTestStaff(staffID string) *models.StaffProfile {
	profile := &models.StaffProfile{
		StaffID: staffID,
		Name:    "Staff " + staffID,
	}
	suite.db.Create(profile)
	return profile
}

func (suite *RosterHandlerTestSuite) createTestSlot() *models.ProjectDescription {
	company := &models.Company{CompanyName: "Test Company"}
	suite.db.Create(company)
	project := &models.Project{ProjectName: "Test Project", CompanyID: company.ID}
	suite.db.Create(project)
	description := &models.ProjectDescription{
		ProjectID:       project.ID,
		WorkDate:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		RequiredMembers: 2,
	}
	suite.db.Create(description)
	return description
}

func (suite *RosterHandlerTestSuite) createContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
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

func (suite *RosterHandlerTestSuite) bulkUpdateBody(desired map[uint64][]uint64) []byte {
	update := make(map[string][]map[string]uint64, len(desired))
	for descriptionID, staffIDs := range desired {
		refs := make([]map[string]uint64, len(staffIDs))
		for i, id := range staffIDs {
			refs[i] = map[string]uint64{"staffProfileId": id}
		}
		update[fmt.Sprintf("%d", descriptionID)] = refs
	}
	body, _ := json.Marshal(map[string]interface{}{"updateProjectMembers": update})
	return body
}

func (suite *RosterHandlerTestSuite) rosterFor(descriptionID uint64) []models.ProjectMember {
	var members []models.ProjectMember
	suite.db.Where("project_description_id = ?", descriptionID).Order("id").Find(&members)
	return members
}

// TestAddMember_Success tests assigning one staff member to a slot
func (suite *RosterHandlerTestSuite) TestAddMember_Success() {
	staff := suite.createTestStaff("S001")
	slot := suite.createTestSlot()

	body, _ := json.Marshal(map[string]interface{}{
		"memberId":             staff.ID,
		"projectDescriptionId": slot.ID,
	})
	c, w := suite.createContext("POST", "/project/1/member", body)

	suite.handler.AddMember(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	// Member and its attendance record must both exist
	members := suite.rosterFor(slot.ID)
	assert.Len(suite.T(), members, 1)

	var attendance models.Attendance
	err := suite.db.Where("project_member_id = ?", members[0].ID).First(&attendance).Error
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AttendanceNotStarted, attendance.Status)
	assert.Equal(suite.T(), staff.ID, attendance.StaffProfileID)
}

// TestAddMember_InvalidRequest tests assignment with missing fields
func (suite *RosterHandlerTestSuite) TestAddMember_InvalidRequest() {
	body, _ := json.Marshal(map[string]interface{}{"memberId": 1})
	c, w := suite.createContext("POST", "/project/1/member", body)

	suite.handler.AddMember(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestBulkUpdate_CreatesRoster tests filling two slots from scratch
func (suite *RosterHandlerTestSuite) TestBulkUpdate_CreatesRoster() {
	staffA := suite.createTestStaff("S001")
	staffB := suite.createTestStaff("S002")
	slot1 := suite.createTestSlot()
	slot2 := suite.createTestSlot()

	body := suite.bulkUpdateBody(map[uint64][]uint64{
		slot1.ID: {staffA.ID, staffB.ID},
		slot2.ID: {staffA.ID},
	})
	c, w := suite.createContext("POST", "/projectMembers/update", body)

	suite.handler.BulkUpdate(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.rosterFor(slot1.ID), 2)
	assert.Len(suite.T(), suite.rosterFor(slot2.ID), 1)

	// Every new member gets a fresh NOT_STARTED attendance record
	var count int64
	suite.db.Model(&models.Attendance{}).
		Where("status = ?", models.AttendanceNotStarted).
		Count(&count)
	assert.Equal(suite.T(), int64(3), count)
}

// TestBulkUpdate_SetDiff tests that only the difference is written: staff
// kept on the slot keep their member row and attendance state
func (suite *RosterHandlerTestSuite) TestBulkUpdate_SetDiff() {
	staffA := suite.createTestStaff("S001")
	staffB := suite.createTestStaff("S002")
	staffC := suite.createTestStaff("S003")
	slot := suite.createTestSlot()

	// Existing roster: A and B
	body := suite.bulkUpdateBody(map[uint64][]uint64{slot.ID: {staffA.ID, staffB.ID}})
	c, _ := suite.createContext("POST", "/projectMembers/update", body)
	suite.handler.BulkUpdate(c)

	members := suite.rosterFor(slot.ID)
	suite.Require().Len(members, 2)
	var keptMemberID uint64
	for _, m := range members {
		if m.StaffProfileID == staffB.ID {
			keptMemberID = m.ID
		}
	}

	// B has already clocked in by the time the roster changes
	suite.db.Model(&models.Attendance{}).
		Where("project_member_id = ?", keptMemberID).
		Update("status", models.AttendanceClockedIn)

	// Desired roster: B and C
	body = suite.bulkUpdateBody(map[uint64][]uint64{slot.ID: {staffB.ID, staffC.ID}})
	c, w := suite.createContext("POST", "/projectMembers/update", body)
	suite.handler.BulkUpdate(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	members = suite.rosterFor(slot.ID)
	assert.Len(suite.T(), members, 2)

	staffIDs := []uint64{members[0].StaffProfileID, members[1].StaffProfileID}
	assert.Contains(suite.T(), staffIDs, staffB.ID)
	assert.Contains(suite.T(), staffIDs, staffC.ID)

	// B's member row survived untouched, attendance state included
	var kept models.Attendance
	err := suite.db.Where("project_member_id = ?", keptMemberID).First(&kept).Error
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AttendanceClockedIn, kept.Status)

	// A's member row and attendance are gone
	var removedCount int64
	suite.db.Model(&models.Attendance{}).
		Where("staff_profile_id = ?", staffA.ID).
		Count(&removedCount)
	assert.Equal(suite.T(), int64(0), removedCount)
}

// TestBulkUpdate_Idempotent tests that reapplying the same roster is a no-op
func (suite *RosterHandlerTestSuite) TestBulkUpdate_Idempotent() {
	staffA := suite.createTestStaff("S001")
	slot := suite.createTestSlot()

	body := suite.bulkUpdateBody(map[uint64][]uint64{slot.ID: {staffA.ID}})
	c, _ := suite.createContext("POST", "/projectMembers/update", body)
	suite.handler.BulkUpdate(c)

	before := suite.rosterFor(slot.ID)
	suite.Require().Len(before, 1)

	c, w := suite.createContext("POST", "/projectMembers/update", body)
	suite.handler.BulkUpdate(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	after := suite.rosterFor(slot.ID)
	assert.Len(suite.T(), after, 1)
	assert.Equal(suite.T(), before[0].ID, after[0].ID)
}

// TestBulkUpdate_EmptyListClearsSlot tests that an empty desired list removes
// the whole roster for that slot
func (suite *RosterHandlerTestSuite) TestBulkUpdate_EmptyListClearsSlot() {
	staffA := suite.createTestStaff("S001")
	slot := suite.createTestSlot()

	body := suite.bulkUpdateBody(map[uint64][]uint64{slot.ID: {staffA.ID}})
	c, _ := suite.createContext("POST", "/projectMembers/update", body)
	suite.handler.BulkUpdate(c)

	body = suite.bulkUpdateBody(map[uint64][]uint64{slot.ID: {}})
	c, w := suite.createContext("POST", "/projectMembers/update", body)
	suite.handler.BulkUpdate(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.rosterFor(slot.ID), 0)

	var count int64
	suite.db.Model(&models.Attendance{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestBulkUpdate_EmptyRequest tests a request naming no slots at all
func (suite *RosterHandlerTestSuite) TestBulkUpdate_EmptyRequest() {
	body := suite.bulkUpdateBody(map[uint64][]uint64{})
	c, w := suite.createContext("POST", "/projectMembers/update", body)

	suite.handler.BulkUpdate(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestBulkUpdate_InvalidSlotKey tests a non-numeric slot key
func (suite *RosterHandlerTestSuite) TestBulkUpdate_InvalidSlotKey() {
	body, _ := json.Marshal(map[string]interface{}{
		"updateProjectMembers": map[string]interface{}{
			"not-a-number": []map[string]uint64{{"staffProfileId": 1}},
		},
	})
	c, w := suite.createContext("POST", "/projectMembers/update", body)

	suite.handler.BulkUpdate(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestAssignedShifts_Success tests the caller's own shift listing
func (suite *RosterHandlerTestSuite) TestAssignedShifts_Success() {
	staff := suite.createTestStaff("S001")
	slot := suite.createTestSlot()

	body := suite.bulkUpdateBody(map[uint64][]uint64{slot.ID: {staff.ID}})
	c, _ := suite.createContext("POST", "/projectMembers/update", body)
	suite.handler.BulkUpdate(c)

	c, w := suite.createContext("GET", "/assigned-shifts", nil)
	c.Set(constants.ContextKeyStaffID, staff.StaffID)

	suite.handler.AssignedShifts(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response["shifts"].([]interface{}), 1)
}

// TestAssignedShifts_Unauthenticated tests the listing without a staff context
func (suite *RosterHandlerTestSuite) TestAssignedShifts_Unauthenticated() {
	c, w := suite.createContext("GET", "/assigned-shifts", nil)

	suite.handler.AssignedShifts(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestSuite runs the test suite
func TestRosterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}
