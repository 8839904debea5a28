package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shiftcrew/shift-management-api/internal/constants"
	"github.com/shiftcrew/shift-management-api/internal/middleware"
	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"github.com/shiftcrew/shift-management-api/internal/services"
	"github.com/shiftcrew/shift-management-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *AuthHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *AuthHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.StaffProfile{},
		&models.StaffAccount{},
		&models.EmergencyContact{},
		&models.NGStaff{},
		&models.Qualification{},
		&models.StaffQualification{},
	)
	suite.Require().NoError(err)

	authService := services.NewAuthService(
		repository.NewStaffRepository(suite.db),
		testJWTSecret, "admin", "adminpass",
	)
	suite.handler = NewAuthHandler(authService)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.POST("/login", suite.handler.Login)
	suite.router.POST("/admin/login", suite.handler.AdminLogin)
	suite.router.GET("/me", middleware.RequireAuth(testJWTSecret), suite.handler.GetCurrentStaff)
	suite.router.GET("/admin/me", middleware.RequireAdmin(testJWTSecret), suite.handler.GetAdmin)
}

// TearDownTest runs after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *AuthHandlerTestSuite) createTestStaff(staffID, password string) *models.StaffProfile {
	profile := &models.StaffProfile{
		StaffID: staffID,
		Name:    "Test Staff",
	}
	suite.db.Create(profile)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	account := &models.StaffAccount{
		StaffID:  staffID,
		Password: string(hashed),
	}
	suite.db.Create(account)
	return profile
}

func (suite *AuthHandlerTestSuite) request(method, url string, payload map[string]interface{}, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestLogin_Success tests staff login with valid credentials
func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.createTestStaff("S001", "secret123")

	w := suite.request("POST", "/login", map[string]interface{}{
		"staffId":  "S001",
		"password": "secret123",
	}, "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response["token"])

	claims, err := utils.ValidateToken(testJWTSecret, response["token"])
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "S001", claims.StaffID)
	assert.Empty(suite.T(), claims.Role)
}

// TestLogin_WrongPassword tests staff login with a wrong password
func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	suite.createTestStaff("S001", "secret123")

	w := suite.request("POST", "/login", map[string]interface{}{
		"staffId":  "S001",
		"password": "wrong",
	}, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestLogin_UnknownStaff tests that unknown IDs get the same response as
// wrong passwords
func (suite *AuthHandlerTestSuite) TestLogin_UnknownStaff() {
	w := suite.request("POST", "/login", map[string]interface{}{
		"staffId":  "NOBODY",
		"password": "secret123",
	}, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestLogin_MissingFields tests staff login without a password
func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.request("POST", "/login", map[string]interface{}{
		"staffId": "S001",
	}, "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestAdminLogin_Success tests admin login with the configured credentials
func (suite *AuthHandlerTestSuite) TestAdminLogin_Success() {
	w := suite.request("POST", "/admin/login", map[string]interface{}{
		"id":       "admin",
		"password": "adminpass",
	}, "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	claims, err := utils.ValidateToken(testJWTSecret, response["token"])
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), constants.RoleAdmin, claims.Role)
}

// TestAdminLogin_WrongPassword tests admin login with a wrong password
func (suite *AuthHandlerTestSuite) TestAdminLogin_WrongPassword() {
	w := suite.request("POST", "/admin/login", map[string]interface{}{
		"id":       "admin",
		"password": "wrong",
	}, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestAdminLogin_DisabledWithoutPassword tests that an empty configured
// password disables admin login entirely
func (suite *AuthHandlerTestSuite) TestAdminLogin_DisabledWithoutPassword() {
	authService := services.NewAuthService(
		repository.NewStaffRepository(suite.db),
		testJWTSecret, "admin", "",
	)
	handler := NewAuthHandler(authService)

	router := gin.New()
	router.POST("/admin/login", handler.AdminLogin)

	body, _ := json.Marshal(map[string]interface{}{"id": "admin", "password": ""})
	req := httptest.NewRequest("POST", "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Binding rejects the empty password before the service is reached, and a
	// non-empty guess fails the comparison
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body, _ = json.Marshal(map[string]interface{}{"id": "admin", "password": "guess"})
	req = httptest.NewRequest("POST", "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestGetCurrentStaff_Success tests the identity endpoint with a valid token
func (suite *AuthHandlerTestSuite) TestGetCurrentStaff_Success() {
	suite.createTestStaff("S001", "secret123")

	token, err := utils.GenerateStaffToken(testJWTSecret, "S001")
	suite.Require().NoError(err)

	w := suite.request("GET", "/me", nil, token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "S001", response["staffId"])
}

// TestGetCurrentStaff_MissingToken tests the identity endpoint without a token
func (suite *AuthHandlerTestSuite) TestGetCurrentStaff_MissingToken() {
	w := suite.request("GET", "/me", nil, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestGetCurrentStaff_InvalidToken tests the identity endpoint with a garbage token
func (suite *AuthHandlerTestSuite) TestGetCurrentStaff_InvalidToken() {
	w := suite.request("GET", "/me", nil, "not-a-token")

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestGetCurrentStaff_WrongSecret tests a token signed with another secret
func (suite *AuthHandlerTestSuite) TestGetCurrentStaff_WrongSecret() {
	token, err := utils.GenerateStaffToken("another-secret", "S001")
	suite.Require().NoError(err)

	w := suite.request("GET", "/me", nil, token)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestGetAdmin_Success tests the admin identity endpoint with an admin token
func (suite *AuthHandlerTestSuite) TestGetAdmin_Success() {
	token, err := utils.GenerateAdminToken(testJWTSecret)
	suite.Require().NoError(err)

	w := suite.request("GET", "/admin/me", nil, token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "admin", response["id"])
	assert.Equal(suite.T(), constants.RoleAdmin, response["role"])
}

// TestGetAdmin_StaffToken tests that a staff token cannot reach admin endpoints
func (suite *AuthHandlerTestSuite) TestGetAdmin_StaffToken() {
	token, err := utils.GenerateStaffToken(testJWTSecret, "S001")
	suite.Require().NoError(err)

	w := suite.request("GET", "/admin/me", nil, token)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
