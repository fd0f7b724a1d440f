package usecase

import (
	"context"
	"errors"
	"strings"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// Create persists a task from an explicit payload.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrTitleRequired
	}

	created, err := uc.repo.Create(ctx, input.Scope, repo.CreateOptions{
		Title:                title,
		Description:          input.Description,
		Priority:             model.ParsePriority(input.Priority),
		DueAt:                input.DueAt,
		RemindAt:             input.RemindAt,
		EstimatedDurationMin: input.EstimatedDurationMin,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: created}, nil
}

// List returns the scoped task list, open tasks only by default.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, input.Scope, repo.ListOptions{IncludeCompleted: input.IncludeCompleted})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks}, nil
}

// Detail returns a single scoped task.
func (uc *implUseCase) Detail(ctx context.Context, input task.DetailInput) (task.DetailOutput, error) {
	t, err := uc.repo.GetOne(ctx, input.Scope, input.TaskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return task.DetailOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail: %v", err)
		return task.DetailOutput{}, err
	}

	return task.DetailOutput{Task: t}, nil
}
