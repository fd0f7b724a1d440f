package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/chatbot"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/scheduler"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
	"smart-todo-backend/internal/task/repository/memory"
)

// nopLogger satisfies log.Logger without output.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, ...any)           {}
func (nopLogger) Debugf(context.Context, string, ...any)  {}
func (nopLogger) Info(context.Context, ...any)            {}
func (nopLogger) Infof(context.Context, string, ...any)   {}
func (nopLogger) Warn(context.Context, ...any)            {}
func (nopLogger) Warnf(context.Context, string, ...any)   {}
func (nopLogger) Error(context.Context, ...any)           {}
func (nopLogger) Errorf(context.Context, string, ...any)  {}
func (nopLogger) DPanic(context.Context, ...any)          {}
func (nopLogger) DPanicf(context.Context, string, ...any) {}
func (nopLogger) Panic(context.Context, ...any)           {}
func (nopLogger) Panicf(context.Context, string, ...any)  {}
func (nopLogger) Fatal(context.Context, ...any)           {}
func (nopLogger) Fatalf(context.Context, string, ...any)  {}

// stubPredictor returns a canned prediction and records the last call.
type stubPredictor struct {
	pred     ai.Prediction
	lastTask model.Task
	lastOvr  *ai.Overrides
}

func (s *stubPredictor) PredictWithConfidence(t model.Task, extra *ai.Overrides) ai.Prediction {
	s.lastTask = t
	s.lastOvr = extra
	return s.pred
}

var (
	testNow   = time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local) // Tuesday morning
	testScope = model.Scope{UserID: "u1", Username: "tester"}
)

func newTestUseCase(pred *stubPredictor) (*implUseCase, *memory.Store) {
	store := memory.New()
	sched := scheduler.New(scheduler.NewScorer(pred))
	uc := NewWithClock(nopLogger{}, store, chatbot.NewParser(), pred, sched, func() time.Time { return testNow })
	return uc, store
}

func TestChatCreate(t *testing.T) {
	pred := &stubPredictor{pred: ai.Prediction{OnTime: 0.85, Confidence: 0.85, Class: ai.ClassOnTime}}
	uc, _ := newTestUseCase(pred)
	ctx := context.Background()

	out, err := uc.ChatCreate(ctx, task.ChatCreateInput{
		Scope:   testScope,
		Message: "Thêm task học Python 2 tiếng chiều mai",
	})
	if err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}

	if out.Task.ID == "" {
		t.Error("expected persisted task with an ID")
	}
	if out.Task.EstimatedDurationMin != 120 {
		t.Errorf("duration = %d, want 120", out.Task.EstimatedDurationMin)
	}
	if out.Task.DueAt == nil || out.Task.DueAt.Hour() != 14 {
		t.Errorf("unexpected due time %v", out.Task.DueAt)
	}

	for _, part := range []string{"✓", "Ưu tiên: TB", "Thời lượng: 2h", "Deadline: Mai 14:00", "Dễ hoàn thành đúng hạn"} {
		if !strings.Contains(out.Reply, part) {
			t.Errorf("reply missing %q:\n%s", part, out.Reply)
		}
	}
	if pred.lastTask.ID != out.Task.ID {
		t.Error("prediction must run on the persisted task")
	}
}

func TestChatCreateRejectsEmptyMessage(t *testing.T) {
	uc, _ := newTestUseCase(&stubPredictor{})

	_, err := uc.ChatCreate(context.Background(), task.ChatCreateInput{Scope: testScope, Message: "   "})
	if !errors.Is(err, task.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestChatCreateReplyRiskHint(t *testing.T) {
	pred := &stubPredictor{pred: ai.Prediction{OnTime: 0.3, Confidence: 0.5, Class: ai.ClassLate, Fallback: true}}
	uc, _ := newTestUseCase(pred)

	out, err := uc.ChatCreate(context.Background(), task.ChatCreateInput{
		Scope:   testScope,
		Message: "làm slide gấp hôm nay",
	})
	if err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	if !strings.Contains(out.Reply, "Khó hoàn thành, cần ưu tiên cao") {
		t.Errorf("expected high-risk hint, got:\n%s", out.Reply)
	}
	if !strings.Contains(out.Reply, "Ưu tiên: Khẩn") {
		t.Errorf("expected urgent label, got:\n%s", out.Reply)
	}
}

func TestPredictByTaskID(t *testing.T) {
	pred := &stubPredictor{pred: ai.Prediction{OnTime: 0.7, Confidence: 0.7, Class: ai.ClassOnTime}}
	uc, store := newTestUseCase(pred)
	ctx := context.Background()

	created, err := store.Create(ctx, testScope, repo.CreateOptions{
		Title: "ôn thi", Priority: model.PriorityHigh, EstimatedDurationMin: 90,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := uc.Predict(ctx, task.PredictInput{Scope: testScope, TaskID: created.ID})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if out.TaskID != created.ID {
		t.Errorf("TaskID = %q, want %q", out.TaskID, created.ID)
	}
	if pred.lastTask.EstimatedDurationMin != 90 {
		t.Error("prediction must use the stored task's fields")
	}
}

func TestPredictUnknownTask(t *testing.T) {
	uc, _ := newTestUseCase(&stubPredictor{})

	_, err := uc.Predict(context.Background(), task.PredictInput{Scope: testScope, TaskID: "missing"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestPredictAdHoc(t *testing.T) {
	pred := &stubPredictor{pred: ai.Prediction{OnTime: 0.6, Confidence: 0.5, Class: ai.ClassOnTime, Fallback: true}}
	uc, _ := newTestUseCase(pred)
	ctx := context.Background()

	t.Run("Missing Duration Rejected", func(t *testing.T) {
		_, err := uc.Predict(ctx, task.PredictInput{Scope: testScope, Priority: "High"})
		if !errors.Is(err, task.ErrMissingDuration) {
			t.Errorf("expected ErrMissingDuration, got %v", err)
		}
	})

	t.Run("Overrides Forwarded", func(t *testing.T) {
		dur, hour, dow := 45, 20, 6
		out, err := uc.Predict(ctx, task.PredictInput{
			Scope:                testScope,
			Priority:             "urgent",
			EstimatedDurationMin: &dur,
			StartHour:            &hour,
			DayOfWeek:            &dow,
		})
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if out.TaskID != "" {
			t.Errorf("ad-hoc path must not report a task ID, got %q", out.TaskID)
		}
		if pred.lastTask.Priority != model.PriorityUrgent || pred.lastTask.EstimatedDurationMin != 45 {
			t.Errorf("ad-hoc task fields wrong: %+v", pred.lastTask)
		}
		if pred.lastOvr == nil || *pred.lastOvr.StartHour != 20 || *pred.lastOvr.DayOfWeek != 6 {
			t.Errorf("overrides not forwarded: %+v", pred.lastOvr)
		}
	})
}

func TestScheduleTodayUsesOpenTasks(t *testing.T) {
	uc, store := newTestUseCase(&stubPredictor{})
	ctx := context.Background()

	if _, err := store.Create(ctx, testScope, repo.CreateOptions{Title: "open", Priority: model.PriorityMedium}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	done, _ := store.Create(ctx, testScope, repo.CreateOptions{Title: "done", Priority: model.PriorityUrgent})
	completed := true
	if _, err := store.Update(ctx, testScope, repo.UpdateOptions{ID: done.ID, Completed: &completed}); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	out, err := uc.ScheduleToday(ctx, task.ScheduleTodayInput{Scope: testScope, AvailableHours: 8, StartHour: 9})
	if err != nil {
		t.Fatalf("ScheduleToday: %v", err)
	}
	if len(out.Plan.Schedule) != 1 || out.Plan.Schedule[0].Title != "open" {
		t.Errorf("expected only the open task planned, got %+v", out.Plan.Schedule)
	}
}

func TestScheduleTodayValidationPassthrough(t *testing.T) {
	uc, _ := newTestUseCase(&stubPredictor{})

	_, err := uc.ScheduleToday(context.Background(), task.ScheduleTodayInput{Scope: testScope, AvailableHours: -1, StartHour: 9})
	if !errors.Is(err, scheduler.ErrInvalidAvailableHours) {
		t.Errorf("expected scheduler validation error, got %v", err)
	}
}

func TestScheduleWeek(t *testing.T) {
	uc, store := newTestUseCase(&stubPredictor{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, testScope, repo.CreateOptions{Title: "t", Priority: model.PriorityMedium}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := uc.ScheduleWeek(ctx, task.ScheduleWeekInput{Scope: testScope, HoursPerDay: 6})
	if err != nil {
		t.Fatalf("ScheduleWeek: %v", err)
	}
	if out.Plan.TotalTasks != 3 || out.Plan.TotalTasksScheduled != 3 {
		t.Errorf("expected all 3 scheduled, got %+v", out.Plan)
	}
}

func TestApplySchedule(t *testing.T) {
	uc, store := newTestUseCase(&stubPredictor{})
	ctx := context.Background()

	created, _ := store.Create(ctx, testScope, repo.CreateOptions{Title: "move me", Priority: model.PriorityMedium})
	end := testNow.Add(3 * time.Hour)

	t.Run("Empty Rejected", func(t *testing.T) {
		_, err := uc.ApplySchedule(ctx, task.ApplyScheduleInput{Scope: testScope})
		if !errors.Is(err, task.ErrEmptySchedule) {
			t.Errorf("expected ErrEmptySchedule, got %v", err)
		}
	})

	t.Run("Writes Due And Skips Unknown", func(t *testing.T) {
		out, err := uc.ApplySchedule(ctx, task.ApplyScheduleInput{
			Scope: testScope,
			Entries: []task.ApplyEntry{
				{TaskID: created.ID, EndTime: end},
				{TaskID: "ghost", EndTime: end},
			},
		})
		if err != nil {
			t.Fatalf("ApplySchedule: %v", err)
		}
		if out.UpdatedCount != 1 {
			t.Errorf("UpdatedCount = %d, want 1", out.UpdatedCount)
		}

		got, err := store.GetOne(ctx, testScope, created.ID)
		if err != nil {
			t.Fatalf("GetOne: %v", err)
		}
		if got.DueAt == nil || !got.DueAt.Equal(end) {
			t.Errorf("DueAt = %v, want %v", got.DueAt, end)
		}
	})
}

func TestCreateListDetail(t *testing.T) {
	uc, _ := newTestUseCase(&stubPredictor{})
	ctx := context.Background()

	t.Run("Create Requires Title", func(t *testing.T) {
		_, err := uc.Create(ctx, task.CreateInput{Scope: testScope, Title: "  "})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	due := testNow.Add(48 * time.Hour)
	created, err := uc.Create(ctx, task.CreateInput{
		Scope:    testScope,
		Title:    "  viết tài liệu  ",
		Priority: "high",
		DueAt:    &due,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Task.Title != "viết tài liệu" {
		t.Errorf("expected trimmed title, got %q", created.Task.Title)
	}
	if created.Task.Priority != model.PriorityHigh {
		t.Errorf("expected High, got %s", created.Task.Priority)
	}

	list, err := uc.List(ctx, task.ListInput{Scope: testScope})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(list.Tasks))
	}

	detail, err := uc.Detail(ctx, task.DetailInput{Scope: testScope, TaskID: created.Task.ID})
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Task.ID != created.Task.ID {
		t.Errorf("Detail returned wrong task: %+v", detail.Task)
	}

	if _, err := uc.Detail(ctx, task.DetailInput{Scope: testScope, TaskID: "nope"}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
