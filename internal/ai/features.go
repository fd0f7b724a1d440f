package ai

import (
	"smart-todo-backend/internal/model"
)

// FeaturesFromTask builds the feature vector for a task.
// Overrides win over task-derived values; missing signals fall back to
// the package defaults. The function is total: it never fails for a
// well-typed task.
func FeaturesFromTask(t model.Task, extra *Overrides) FeatureVector {
	fv := FeatureVector{
		DurationMin:  float64(t.EffectiveDurationMin()),
		PriorityRank: t.Priority.Numeric(),
		StartHour:    t.StartHour(),
		DayOfWeek:    t.DayOfWeek(),
	}

	if t.CreatedAt.IsZero() && t.PlannedStartAt == nil {
		// Ad-hoc preview tasks carry no start reference.
		fv.StartHour = defaultStartHour
		fv.DayOfWeek = defaultDayOfWeek
	}

	if extra == nil {
		return fv
	}

	switch {
	case extra.EstimatedDurationMin != nil:
		fv.DurationMin = *extra.EstimatedDurationMin
	case extra.DurationMin != nil:
		fv.DurationMin = *extra.DurationMin
	}
	if fv.DurationMin <= 0 {
		fv.DurationMin = defaultDurationMin
	}

	if extra.StartHour != nil {
		fv.StartHour = *extra.StartHour
	}
	if extra.DayOfWeek != nil {
		fv.DayOfWeek = *extra.DayOfWeek
	}

	if fv.StartHour < 0 || fv.StartHour > 23 {
		fv.StartHour = defaultStartHour
	}
	if fv.DayOfWeek < 1 || fv.DayOfWeek > 7 {
		fv.DayOfWeek = defaultDayOfWeek
	}

	return fv
}
