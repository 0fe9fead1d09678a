package app

import (
	"go-hrm/internal/attendance"
	"go-hrm/internal/auth"
	"go-hrm/internal/config"
	"go-hrm/internal/leave"
	"go-hrm/internal/payslip"
	"go-hrm/internal/profile"
	"go-hrm/internal/todo"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	publisher leave.EventPublisher,
	serverCfg config.ServerConfig,
) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	todoRepo := todo.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo)
	authService := auth.NewService(authRepo)
	leaveService := leave.NewService(leaveRepo, publisher)
	payslipService := payslip.NewService(payslipRepo)
	profileService := profile.NewService(profileRepo)
	todoService := todo.NewService(todoRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	leaveHandler := leave.NewHandler(leaveService)
	payslipHandler := payslip.NewHandler(payslipService)
	profileHandler := profile.NewHandler(profileService)
	todoHandler := todo.NewHandler(todoService)

	// --- Routes Registration ---
	payslip.RegisterRoutes(router, payslipHandler)
	auth.RegisterRoutes(router, authHandler,
		rate.Limit(serverCfg.LoginRateLimitRPS), serverCfg.LoginRateLimitBurst)
	leave.RegisterRoutes(router, leaveHandler, rdb)
	attendance.RegisterRoutes(router, attendanceHandler, rdb)
	todo.RegisterRoutes(router, todoHandler)
	profile.RegisterRoutes(router, profileHandler)
}
