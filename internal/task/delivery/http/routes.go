package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chatbot := rg.Group("/chatbot")
	{
		chatbot.POST("/message", h.ChatCreate)
	}

	ai := rg.Group("/ai")
	{
		ai.POST("/predict", h.Predict)
	}

	schedule := rg.Group("/schedule")
	{
		schedule.POST("/today", h.ScheduleToday)
		schedule.POST("/week", h.ScheduleWeek)
		schedule.POST("/apply", h.ApplySchedule)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
	}
}
