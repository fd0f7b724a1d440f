package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task/repository"
)

// Store is an in-memory task repository. It is the reference store the
// delivery layer runs against in development and tests; a database-backed
// implementation satisfies the same interface.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]map[string]model.Task // userID -> taskID -> task
	clock func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		tasks: make(map[string]map[string]model.Task),
		clock: time.Now,
	}
}

// NewWithClock creates a store with an injected clock for tests.
func NewWithClock(clock func() time.Time) *Store {
	s := New()
	s.clock = clock
	return s
}

func (s *Store) Create(_ context.Context, sc model.Scope, opt repository.CreateOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Task{
		ID:                   uuid.NewString(),
		Title:                opt.Title,
		Description:          opt.Description,
		Priority:             opt.Priority,
		DueAt:                opt.DueAt,
		RemindAt:             opt.RemindAt,
		PlannedStartAt:       opt.PlannedStartAt,
		EstimatedDurationMin: opt.EstimatedDurationMin,
		CreatedAt:            s.clock(),
	}

	if s.tasks[sc.UserID] == nil {
		s.tasks[sc.UserID] = make(map[string]model.Task)
	}
	s.tasks[sc.UserID][t.ID] = t

	return t, nil
}

func (s *Store) GetOne(_ context.Context, sc model.Scope, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[sc.UserID][id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (s *Store) List(_ context.Context, sc model.Scope, opt repository.ListOptions) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.tasks[sc.UserID]))
	for _, t := range s.tasks[sc.UserID] {
		if t.Completed && !opt.IncludeCompleted {
			continue
		}
		out = append(out, t)
	}

	// Map iteration is random; keep listings deterministic.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (s *Store) Update(_ context.Context, sc model.Scope, opt repository.UpdateOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[sc.UserID][opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	if opt.DueAt != nil {
		due := *opt.DueAt
		t.DueAt = &due
	}
	if opt.PlannedStartAt != nil {
		start := *opt.PlannedStartAt
		t.PlannedStartAt = &start
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}

	s.tasks[sc.UserID][opt.ID] = t
	return t, nil
}
