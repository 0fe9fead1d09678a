package auth

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts the legacy login endpoints. The login route gets its
// own per-IP limiter; a non-positive loginRate disables it.
func RegisterRoutes(r gin.IRouter, handler *Handler, loginRate rate.Limit, loginBurst int) {
	r.POST("/employee-login", middleware.RateLimitByIP(loginRate, loginBurst), handler.Login)
	r.GET("/get-employee-name/:employeeId", handler.GetEmployeeName)
}
