package chatbot

import (
	"time"

	"smart-todo-backend/internal/model"
)

// TaskDraft is the structured result of parsing one chat message.
// Title is never empty: unparseable input falls back to DefaultTitle.
type TaskDraft struct {
	Title                string
	Description          string
	Priority             model.Priority
	DueAt                *time.Time
	PlannedStartAt       *time.Time
	EstimatedDurationMin int
}

// DefaultTitle is the placeholder used when no usable title survives parsing.
const DefaultTitle = "Task mới"

// maxMessageLen caps the input before parsing. Longer messages are truncated,
// not rejected.
const maxMessageLen = 500

// Hour defaults used when the message names no explicit time.
const (
	endOfWorkHour = 18 // offset-0 deadlines land at the end of the working day
	endOfDayHour  = 23 // future-day deadlines land at 23:59
)
