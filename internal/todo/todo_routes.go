package todo

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	planner := r.Group("/todo_planner/todo")
	{
		planner.GET("/progress", handler.Progress)
		planner.POST("/save", handler.Save)
		planner.GET("/:date", handler.GetByDate)
	}
}
