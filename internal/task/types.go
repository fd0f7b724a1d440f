package task

import (
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/scheduler"
)

// --- UseCase Inputs ---

type ChatCreateInput struct {
	Scope   model.Scope
	Message string
}

// PredictInput covers both prediction paths: a stored task by ID, or an
// ad-hoc payload. On the ad-hoc path EstimatedDurationMin is mandatory;
// the pointer fields override derived features when set.
type PredictInput struct {
	Scope                model.Scope
	TaskID               string
	Priority             string
	EstimatedDurationMin *int
	StartHour            *int
	DayOfWeek            *int
}

type ScheduleTodayInput struct {
	Scope          model.Scope
	AvailableHours float64
	StartHour      int
}

type ScheduleWeekInput struct {
	Scope       model.Scope
	HoursPerDay float64
}

// ApplyEntry is one accepted slot of a previously suggested schedule.
type ApplyEntry struct {
	TaskID  string
	EndTime time.Time
}

type ApplyScheduleInput struct {
	Scope   model.Scope
	Entries []ApplyEntry
}

type CreateInput struct {
	Scope                model.Scope
	Title                string
	Description          string
	Priority             string
	DueAt                *time.Time
	RemindAt             *time.Time
	EstimatedDurationMin int
}

type ListInput struct {
	Scope            model.Scope
	IncludeCompleted bool
}

type DetailInput struct {
	Scope  model.Scope
	TaskID string
}

// --- UseCase Outputs ---

type ChatCreateOutput struct {
	Task       model.Task
	Reply      string
	Prediction ai.Prediction
}

type PredictOutput struct {
	TaskID     string
	Prediction ai.Prediction
}

type ScheduleTodayOutput struct {
	Plan scheduler.DayPlan
}

type ScheduleWeekOutput struct {
	Plan scheduler.WeekPlan
}

type ApplyScheduleOutput struct {
	UpdatedCount int
}

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
}

type DetailOutput struct {
	Task model.Task
}
