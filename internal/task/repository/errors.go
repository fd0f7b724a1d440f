package repository

import "errors"

// ErrNotFound is returned when no task matches the scope and ID.
var ErrNotFound = errors.New("task not found")
