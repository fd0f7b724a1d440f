package usecase

import (
	"context"
	"errors"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// Predict runs the on-time prediction either for a stored task (task_id
// path) or for an ad-hoc payload. The ad-hoc path requires an explicit
// duration estimate; everything else falls back to defaults.
func (uc *implUseCase) Predict(ctx context.Context, input task.PredictInput) (task.PredictOutput, error) {
	if input.TaskID != "" {
		t, err := uc.repo.GetOne(ctx, input.Scope, input.TaskID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return task.PredictOutput{}, task.ErrTaskNotFound
			}
			uc.l.Errorf(ctx, "uc.Predict GetOne: %v", err)
			return task.PredictOutput{}, err
		}

		return task.PredictOutput{
			TaskID:     t.ID,
			Prediction: uc.predictor.PredictWithConfidence(t, nil),
		}, nil
	}

	if input.EstimatedDurationMin == nil {
		return task.PredictOutput{}, task.ErrMissingDuration
	}

	adhoc := model.Task{
		Priority:             model.ParsePriority(input.Priority),
		EstimatedDurationMin: *input.EstimatedDurationMin,
		CreatedAt:            uc.clock(),
	}
	extra := &ai.Overrides{
		StartHour: input.StartHour,
		DayOfWeek: input.DayOfWeek,
	}

	return task.PredictOutput{
		Prediction: uc.predictor.PredictWithConfidence(adhoc, extra),
	}, nil
}
