package repository

import (
	"context"

	"smart-todo-backend/internal/model"
)

// Repository is the data access contract for the task domain.
// Every method is scoped: a task is only visible to its owner.
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opt CreateOptions) (model.Task, error)
	GetOne(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	List(ctx context.Context, sc model.Scope, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, sc model.Scope, opt UpdateOptions) (model.Task, error)
}
