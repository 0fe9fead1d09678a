package attendance

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r gin.IRouter, h *Handler, rdb *redis.Client) {
	attendances := r.Group("/attendance/attendance")
	{
		attendances.POST("/mark/:employeeId", middleware.Idempotency(rdb), h.Mark)
		attendances.PUT("/update/:employeeId", h.Update)
		attendances.GET("/history/:employeeId", h.History)
		attendances.GET("/check/:employeeId/:date", h.Check)
	}
}
