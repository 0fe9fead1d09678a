package profile

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	profiles := r.Group("/profile")
	{
		profiles.POST("/", handler.Create)
		profiles.GET("/:id", handler.GetByID)
	}
}
