package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/task"
	"smart-todo-backend/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	ChatCreate(c *gin.Context)
	Predict(c *gin.Context)
	ScheduleToday(c *gin.Context)
	ScheduleWeek(c *gin.Context)
	ApplySchedule(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

// ScheduleDefaults are the budgets used when a schedule request leaves
// them out. Zero values fall back to the service constants (8h day
// starting at 9, 6h weekly days).
type ScheduleDefaults struct {
	AvailableHours float64
	StartHour      int
	HoursPerDay    float64
}

type handler struct {
	l        log.Logger
	uc       task.UseCase
	defaults ScheduleDefaults
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, defaults ScheduleDefaults) *handler {
	if defaults.AvailableHours <= 0 {
		defaults.AvailableHours = 8
	}
	if defaults.StartHour <= 0 {
		defaults.StartHour = 9
	}
	if defaults.HoursPerDay <= 0 {
		defaults.HoursPerDay = 6
	}
	return &handler{
		l:        l,
		uc:       uc,
		defaults: defaults,
	}
}
