package scheduler

import (
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/model"
)

// Predictor is the slice of the AI service the scorer needs.
type Predictor interface {
	PredictWithConfidence(t model.Task, extra *ai.Overrides) ai.Prediction
}

// ScheduleEntry is one slot of a daily schedule.
// Start and end are minute-precision local wall-clock times; Reason is
// informational only.
type ScheduleEntry struct {
	TaskID        string         `json:"task_id"`
	Title         string         `json:"title"`
	Priority      model.Priority `json:"priority"`
	Score         int            `json:"score"`
	StartTime     time.Time      `json:"-"`
	EndTime       time.Time      `json:"-"`
	DurationHours float64        `json:"duration_hours"`
	Reason        string         `json:"reason"`
}

// DayPlan is the result of ScheduleToday.
type DayPlan struct {
	Schedule       []ScheduleEntry `json:"schedule"`
	TotalHours     float64         `json:"total_hours"`
	AvailableHours float64         `json:"available_hours"`
	Utilization    float64         `json:"utilization"`
	FixedTasks     int             `json:"fixed_tasks"`
	FlexibleTasks  int             `json:"flexible_tasks"`
}

// WeekDayPlan is one day of a weekly schedule.
type WeekDayPlan struct {
	Day        string          `json:"day"`
	DayNumber  int             `json:"day_number"`
	Tasks      []ScheduleEntry `json:"tasks"`
	TotalHours float64         `json:"total_hours"`
}

// WeekPlan is the result of ScheduleWeek.
type WeekPlan struct {
	WeeklySchedule      []WeekDayPlan `json:"weekly_schedule"`
	TotalTasksScheduled int           `json:"total_tasks_scheduled"`
	TotalTasks          int           `json:"total_tasks"`
}

// Coarse priority→hours duration table. Deliberately independent of
// estimated_duration_min: day planning works in half-day-friendly blocks.
var priorityDurations = map[model.Priority]float64{
	model.PriorityUrgent: 2,
	model.PriorityHigh:   3,
	model.PriorityMedium: 2,
	model.PriorityLow:    1,
}

func estimateHours(p model.Priority) float64 {
	if h, ok := priorityDurations[p]; ok {
		return h
	}
	return 2
}

// Weekly urgency tier thresholds over the priority score.
const (
	tierUrgentMin = 90
	tierHighMin   = 70
	tierMediumMin = 40
)

var weekDayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
