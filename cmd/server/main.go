package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/config"
	"github.com/shiftcrew/shift-management-api/internal/database"
	"github.com/shiftcrew/shift-management-api/internal/handlers"
	"github.com/shiftcrew/shift-management-api/internal/middleware"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"github.com/shiftcrew/shift-management-api/internal/services"
	"github.com/shiftcrew/shift-management-api/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	utils.InitLogger()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	db := database.GetDB()

	// Initialize repositories
	staffRepo := repository.NewStaffRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	rosterRepo := repository.NewRosterRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	shiftRequestRepo := repository.NewShiftRequestRepository(db)

	// Initialize services
	authService := services.NewAuthService(staffRepo, cfg.JWTSecret, cfg.AdminID, cfg.AdminPassword)
	staffService := services.NewStaffService(staffRepo)
	projectService := services.NewProjectService(projectRepo)
	rosterService := services.NewRosterService(rosterRepo, staffRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo)
	shiftRequestService := services.NewShiftRequestService(shiftRequestRepo, projectRepo, staffRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	staffHandler := handlers.NewStaffHandler(staffService)
	companyHandler := handlers.NewCompanyHandler()
	qualificationHandler := handlers.NewQualificationHandler()
	projectHandler := handlers.NewProjectHandler(projectService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	shiftRequestHandler := handlers.NewShiftRequestHandler(shiftRequestService, projectService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.GinLogger())
	r.Use(cors.New(corsConfig(cfg)))

	staffAuth := middleware.RequireAuth(cfg.JWTSecret)
	adminAuth := middleware.RequireAdmin(cfg.JWTSecret)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth
	r.POST("/login", authHandler.Login)
	r.POST("/admin/login", authHandler.AdminLogin)
	r.GET("/admin/me", adminAuth, authHandler.GetAdmin)
	r.GET("/me", staffAuth, authHandler.GetCurrentStaff)

	// Staff
	r.POST("/register", staffHandler.Register)
	r.GET("/members", staffHandler.List)
	r.GET("/members/:id", staffHandler.Get)
	r.PUT("/members/:id", staffHandler.Update)
	r.DELETE("/members/:id", staffHandler.Delete)
	r.GET("/profile", staffAuth, staffHandler.GetProfile)

	// Companies
	r.POST("/registerCompany", companyHandler.Register)
	r.GET("/companies", companyHandler.List)
	r.GET("/companies/:id", companyHandler.Get)
	r.PUT("/companies/:id", companyHandler.Update)
	r.DELETE("/companies/:id", companyHandler.Delete)

	// Qualifications
	r.POST("/registerQualification", qualificationHandler.Register)
	r.GET("/qualifications", qualificationHandler.List)
	r.GET("/qualifications/:id", qualificationHandler.Get)
	r.PUT("/qualifications/:id", qualificationHandler.Update)
	r.DELETE("/qualifications/:id", qualificationHandler.Delete)

	// Projects
	r.POST("/registerProject", projectHandler.Register)
	r.GET("/reprojects", projectHandler.ListAll)
	r.GET("/projects", projectHandler.ListByMonth)
	r.GET("/project/:projectId/description/:projectDescriptionId", projectHandler.GetDetail)
	r.PUT("/projects/:projectId/description/:projectDescriptionId", projectHandler.UpdateDetail)
	r.DELETE("/project/:projectId/description/:projectDescriptionId", projectHandler.DeleteDetail)

	// Roster
	r.POST("/project/:projectId/member", rosterHandler.AddMember)
	r.POST("/projectMembers/update", rosterHandler.BulkUpdate)
	r.GET("/assigned-shifts", staffAuth, rosterHandler.AssignedShifts)

	// Attendance
	r.POST("/attendance/checkin", attendanceHandler.CheckIn)
	r.PATCH("/attendance/checkout", attendanceHandler.CheckOut)
	r.GET("/attendance/day", attendanceHandler.Day)
	r.GET("/attendance/week", attendanceHandler.Week)
	r.GET("/attendance/month", attendanceHandler.Month)
	r.GET("/attendances", attendanceHandler.List)

	// Shift requests
	r.POST("/submitShiftRequest", staffAuth, shiftRequestHandler.Submit)
	r.GET("/projects/:date", staffAuth, shiftRequestHandler.ProjectsByDate)
	r.DELETE("/deleteShiftRequest/:id", staffAuth, shiftRequestHandler.Delete)

	// Best-effort database disconnect on shutdown signals
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down, closing database connection")
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		os.Exit(0)
	}()

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.CORSAllowedOrigins != "" {
		corsCfg.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	return corsCfg
}
