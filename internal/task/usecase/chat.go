package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// ChatCreate parses one chat message into a task, persists it, predicts its
// on-time chance and renders the confirmation reply.
func (uc *implUseCase) ChatCreate(ctx context.Context, input task.ChatCreateInput) (task.ChatCreateOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return task.ChatCreateOutput{}, task.ErrEmptyMessage
	}

	now := uc.clock()
	draft := uc.parser.Parse(input.Message, now)

	created, err := uc.repo.Create(ctx, input.Scope, repo.CreateOptions{
		Title:                draft.Title,
		Description:          draft.Description,
		Priority:             draft.Priority,
		DueAt:                draft.DueAt,
		PlannedStartAt:       draft.PlannedStartAt,
		EstimatedDurationMin: draft.EstimatedDurationMin,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ChatCreate Create: %v", err)
		return task.ChatCreateOutput{}, err
	}

	pred := uc.predictor.PredictWithConfidence(created, nil)

	return task.ChatCreateOutput{
		Task:       created,
		Reply:      renderReply(created, pred, now),
		Prediction: pred,
	}, nil
}

// renderReply builds the short Vietnamese confirmation shown to the user.
func renderReply(t model.Task, pred ai.Prediction, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✓ %s\n", t.Title)
	fmt.Fprintf(&b, "Ưu tiên: %s | Thời lượng: %s\n", priorityLabel(t.Priority), durationLabel(t.EstimatedDurationMin))

	if t.DueAt != nil {
		fmt.Fprintf(&b, "Deadline: %s\n", deadlineLabel(*t.DueAt, now))
	}

	switch p := pred.OnTime; {
	case p >= 0.8:
		b.WriteString("\n→ Dễ hoàn thành đúng hạn")
	case p >= 0.6:
		b.WriteString("\n→ Có thể hoàn thành đúng hạn")
	case p >= 0.4:
		b.WriteString("\n→ Hơi khó, nên bắt đầu sớm")
	default:
		b.WriteString("\n→ Khó hoàn thành, cần ưu tiên cao")
	}

	return b.String()
}

func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityUrgent:
		return "Khẩn"
	case model.PriorityHigh:
		return "Cao"
	case model.PriorityMedium:
		return "TB"
	case model.PriorityLow:
		return "Thấp"
	default:
		return string(p)
	}
}

func durationLabel(minutes int) string {
	if minutes <= 0 {
		minutes = 60
	}
	if minutes < 60 {
		return fmt.Sprintf("%dp", minutes)
	}
	h, m := minutes/60, minutes%60
	if m > 0 {
		return fmt.Sprintf("%dh%dp", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// deadlineLabel renders the due moment relative to today.
func deadlineLabel(due, now time.Time) string {
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch days := int(dueDay.Sub(today).Hours() / 24); days {
	case 0:
		return "Hôm nay " + due.Format("15:04")
	case 1:
		return "Mai " + due.Format("15:04")
	default:
		return due.Format("02/01 15:04")
	}
}
