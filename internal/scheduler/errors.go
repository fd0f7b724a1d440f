package scheduler

import "errors"

// Validation errors for schedule requests.
var (
	ErrInvalidAvailableHours = errors.New("available_hours must be positive")
	ErrInvalidStartHour      = errors.New("start_hour must be between 0 and 23")
	ErrInvalidHoursPerDay    = errors.New("hours_per_day must be positive")
)
