package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/scheduler"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/pkg/response"
)

// respondError translates domain errors into the response envelope.
// Rejected input carries the offending field; unrecognized errors become
// opaque 500s.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyMessage):
		response.ValidationError(c, err, map[string]string{"message": "required"})
	case errors.Is(err, task.ErrMissingDuration):
		response.ValidationError(c, err, map[string]string{"estimated_duration_min": "required"})
	case errors.Is(err, task.ErrEmptySchedule):
		response.ValidationError(c, err, map[string]string{"schedule": "required"})
	case errors.Is(err, task.ErrTitleRequired):
		response.ValidationError(c, err, map[string]string{"title": "required"})
	case errors.Is(err, scheduler.ErrInvalidAvailableHours):
		response.ValidationError(c, err, map[string]string{"available_hours": "must be positive"})
	case errors.Is(err, scheduler.ErrInvalidStartHour):
		response.ValidationError(c, err, map[string]string{"start_hour": "must be between 0 and 23"})
	case errors.Is(err, scheduler.ErrInvalidHoursPerDay):
		response.ValidationError(c, err, map[string]string{"hours_per_day": "must be positive"})
	default:
		response.InternalError(c, err)
	}
}
