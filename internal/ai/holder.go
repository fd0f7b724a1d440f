package ai

import (
	"context"
	"sync"

	pkgLog "smart-todo-backend/pkg/log"
)

// Holder lazily loads the classifier exactly once per process.
// A failed load is cached permanently: later callers go straight to the
// heuristic fallback without touching the filesystem again.
type Holder struct {
	l    pkgLog.Logger
	path string

	mu         sync.Mutex
	loaded     bool
	loadFailed bool
	clf        Classifier
}

// NewHolder creates a holder for the model at path.
// An empty path means no model is configured and the fallback is used.
func NewHolder(l pkgLog.Logger, path string) *Holder {
	return &Holder{l: l, path: path}
}

// NewHolderWithClassifier wires a pre-built classifier, bypassing file load.
func NewHolderWithClassifier(clf Classifier) *Holder {
	return &Holder{loaded: true, clf: clf}
}

// Get returns the classifier, or nil when unavailable.
// The first caller performs the load under the lock; concurrent callers
// block until it completes or fails.
func (h *Holder) Get() Classifier {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loadFailed {
		return nil
	}
	if h.loaded {
		return h.clf
	}

	h.loaded = true

	if h.path == "" {
		h.loadFailed = true
		return nil
	}

	clf, err := loadModelFile(h.path)
	if err != nil {
		if h.l != nil {
			h.l.Warnf(context.Background(), "ai: model unavailable, using heuristic fallback: %v", err)
		}
		h.loadFailed = true
		return nil
	}

	if h.l != nil {
		h.l.Infof(context.Background(), "ai: model loaded from %s", h.path)
	}
	h.clf = clf
	return h.clf
}
