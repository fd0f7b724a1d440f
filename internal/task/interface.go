package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat-driven creation
	ChatCreate(ctx context.Context, input ChatCreateInput) (ChatCreateOutput, error)

	// Prediction
	Predict(ctx context.Context, input PredictInput) (PredictOutput, error)

	// Scheduling
	ScheduleToday(ctx context.Context, input ScheduleTodayInput) (ScheduleTodayOutput, error)
	ScheduleWeek(ctx context.Context, input ScheduleWeekInput) (ScheduleWeekOutput, error)
	ApplySchedule(ctx context.Context, input ApplyScheduleInput) (ApplyScheduleOutput, error)

	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
}
