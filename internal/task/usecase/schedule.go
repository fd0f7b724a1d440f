package usecase

import (
	"context"
	"errors"

	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// ScheduleToday plans the user's open tasks into today's time budget.
func (uc *implUseCase) ScheduleToday(ctx context.Context, input task.ScheduleTodayInput) (task.ScheduleTodayOutput, error) {
	tasks, err := uc.repo.List(ctx, input.Scope, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleToday List: %v", err)
		return task.ScheduleTodayOutput{}, err
	}

	plan, err := uc.sched.ScheduleToday(tasks, uc.clock(), input.AvailableHours, input.StartHour)
	if err != nil {
		return task.ScheduleTodayOutput{}, err
	}

	return task.ScheduleTodayOutput{Plan: plan}, nil
}

// ScheduleWeek spreads the user's open tasks across the coming week.
func (uc *implUseCase) ScheduleWeek(ctx context.Context, input task.ScheduleWeekInput) (task.ScheduleWeekOutput, error) {
	tasks, err := uc.repo.List(ctx, input.Scope, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleWeek List: %v", err)
		return task.ScheduleWeekOutput{}, err
	}

	plan, err := uc.sched.ScheduleWeek(tasks, uc.clock(), input.HoursPerDay)
	if err != nil {
		return task.ScheduleWeekOutput{}, err
	}

	return task.ScheduleWeekOutput{Plan: plan}, nil
}

// ApplySchedule writes accepted slot end times back onto the tasks' due
// dates. Entries pointing at unknown tasks are skipped, not fatal.
func (uc *implUseCase) ApplySchedule(ctx context.Context, input task.ApplyScheduleInput) (task.ApplyScheduleOutput, error) {
	if len(input.Entries) == 0 {
		return task.ApplyScheduleOutput{}, task.ErrEmptySchedule
	}

	updated := 0
	for _, e := range input.Entries {
		end := e.EndTime
		_, err := uc.repo.Update(ctx, input.Scope, repo.UpdateOptions{ID: e.TaskID, DueAt: &end})
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				uc.l.Warnf(ctx, "uc.ApplySchedule: skipping unknown task %s", e.TaskID)
				continue
			}
			uc.l.Errorf(ctx, "uc.ApplySchedule Update: %v", err)
			return task.ApplyScheduleOutput{}, err
		}
		updated++
	}

	return task.ApplyScheduleOutput{UpdatedCount: updated}, nil
}
