package usecase

import (
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/chatbot"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/scheduler"
	"smart-todo-backend/internal/task/repository"
	"smart-todo-backend/pkg/log"
)

// Predictor is the slice of the AI service this use case needs.
type Predictor interface {
	PredictWithConfidence(t model.Task, extra *ai.Overrides) ai.Prediction
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	parser    *chatbot.Parser
	predictor Predictor
	sched     *scheduler.Scheduler
	clock     func() time.Time
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository, parser *chatbot.Parser, predictor Predictor, sched *scheduler.Scheduler) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		parser:    parser,
		predictor: predictor,
		sched:     sched,
		clock:     time.Now,
	}
}

// NewWithClock is New with an injected clock for tests.
func NewWithClock(l log.Logger, repo repository.Repository, parser *chatbot.Parser, predictor Predictor, sched *scheduler.Scheduler, clock func() time.Time) *implUseCase {
	uc := New(l, repo, parser, predictor, sched)
	uc.clock = clock
	return uc
}
