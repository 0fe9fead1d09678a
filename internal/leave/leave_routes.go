package leave

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the leave endpoints. rdb may be nil, in which case
// apply-leave runs without idempotency protection.
func RegisterRoutes(r gin.IRouter, handler *Handler, rdb *redis.Client) {
	apply := r.Group("/apply")
	{
		apply.POST("/apply-leave", middleware.Idempotency(rdb), handler.Apply)
		apply.GET("/leave-stats", handler.Stats)
		apply.GET("/fetch/:employeeId", handler.Fetch)
		apply.DELETE("/delete/:employeeId/:id", handler.Cancel)
		apply.PUT("/update/:employeeId/:id", handler.Update)
	}
}
