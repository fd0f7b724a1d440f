package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task không tồn tại")
	ErrEmptyMessage    = errors.New("message không được trống")
	ErrMissingDuration = errors.New("thiếu estimated_duration_min")
	ErrEmptySchedule   = errors.New("no schedule provided")
	ErrTitleRequired   = errors.New("title is required")
)
