package app

import (
	"go-wfm/internal/attendance"
	"go-wfm/internal/dashboard"
	"go-wfm/internal/employee"
	"go-wfm/internal/holiday"
	"go-wfm/internal/leave"
	"go-wfm/internal/meeting"
	"go-wfm/internal/messaging/kafka"
	"go-wfm/internal/middleware"
	"go-wfm/internal/rbac"
	"go-wfm/internal/report"
	"go-wfm/internal/shared/counter"
	"go-wfm/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	meetingRepo := meeting.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, outboxRepo)
	reportService := report.NewService(db, reportRepo)
	dashboardService := dashboard.NewService(dashboardRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	taskService := task.NewServiceWithOutbox(db, taskRepo, outboxRepo)
	meetingService := meeting.NewServiceWithOutbox(db, meetingRepo, outboxRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	reportHandler := report.NewHandler(reportService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	taskHandler := task.NewHandler(taskService)
	meetingHandler := meeting.NewHandler(meetingService)
	holidayHandler := holiday.NewHandler()

	// --- Routes registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		task.RegisterRoutes(api, taskHandler, rbacService)
		meeting.RegisterRoutes(api, meetingHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler)
	}

	return nil
}
