package model

import (
	"strings"
	"time"
)

// Priority is a task priority label.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// ParsePriority maps a label to a Priority, case-insensitively.
// Unrecognized labels fall back to Medium.
func ParsePriority(label string) Priority {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	case "urgent":
		return PriorityUrgent
	default:
		return PriorityMedium
	}
}

// Numeric returns the ordinal rank used for feature extraction.
// High and Urgent share rank 3 on purpose: the trained model was fit on
// three classes, while the scheduler distinguishes them by score weight.
func (p Priority) Numeric() int {
	switch Priority(strings.ToLower(string(p))) {
	case "low":
		return 1
	case "medium":
		return 2
	case "high", "urgent":
		return 3
	default:
		return 2
	}
}

// Task is a task record as seen by the scheduling core.
// The core only reads tasks; all mutation happens in the store.
type Task struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Priority             Priority   `json:"priority"`
	DueAt                *time.Time `json:"due_at,omitempty"`
	RemindAt             *time.Time `json:"remind_at,omitempty"`
	PlannedStartAt       *time.Time `json:"planned_start_at,omitempty"`
	EstimatedDurationMin int        `json:"estimated_duration_min,omitempty"` // 0 = unset
	Completed            bool       `json:"completed"`
	CreatedAt            time.Time  `json:"created_at"`
}

// startReference is PlannedStartAt when set, else CreatedAt.
func (t Task) startReference() time.Time {
	if t.PlannedStartAt != nil {
		return *t.PlannedStartAt
	}
	return t.CreatedAt
}

// StartHour returns the hour component (0-23) of the start reference time.
func (t Task) StartHour() int {
	return t.startReference().Hour()
}

// DayOfWeek returns the ISO weekday of the start reference: 1=Monday .. 7=Sunday.
func (t Task) DayOfWeek() int {
	wd := int(t.startReference().Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// EffectiveDurationMin returns the working duration estimate in minutes.
// Explicit estimate wins; else the gap from start reference to the due time,
// floored at one minute; else 60.
func (t Task) EffectiveDurationMin() int {
	if t.EstimatedDurationMin > 0 {
		return t.EstimatedDurationMin
	}
	if t.DueAt != nil {
		mins := int(t.DueAt.Sub(t.startReference()).Minutes())
		if mins < 1 {
			mins = 1
		}
		return mins
	}
	return 60
}

// IsOverdue reports whether the task's due time has passed.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now)
}
