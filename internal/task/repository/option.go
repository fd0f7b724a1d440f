package repository

import (
	"time"

	"smart-todo-backend/internal/model"
)

// CreateOptions holds parameters for inserting a new task.
type CreateOptions struct {
	Title                string
	Description          string
	Priority             model.Priority
	DueAt                *time.Time
	RemindAt             *time.Time
	PlannedStartAt       *time.Time
	EstimatedDurationMin int
}

// ListOptions filters the scoped task list.
type ListOptions struct {
	IncludeCompleted bool
}

// UpdateOptions holds a partial update. Nil pointer fields are left alone.
type UpdateOptions struct {
	ID             string
	DueAt          *time.Time
	PlannedStartAt *time.Time
	Completed      *bool
}
