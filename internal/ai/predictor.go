package ai

import (
	"context"
	"math"

	"smart-todo-backend/internal/model"
	pkgLog "smart-todo-backend/pkg/log"
)

// Service predicts whether a task will be completed on time.
type Service struct {
	l      pkgLog.Logger
	holder *Holder
}

// NewService creates the prediction service.
func NewService(l pkgLog.Logger, holder *Holder) *Service {
	return &Service{l: l, holder: holder}
}

// Predict returns the on-time score for a task.
func (s *Service) Predict(t model.Task, extra *Overrides) float64 {
	return s.PredictWithConfidence(t, extra).OnTime
}

// PredictWithConfidence returns the full prediction. It never fails for a
// feature-extractable task: a panicking or unavailable classifier routes
// to the heuristic fallback.
func (s *Service) PredictWithConfidence(t model.Task, extra *Overrides) Prediction {
	fv := FeaturesFromTask(t, extra)

	clf := s.holder.Get()
	if clf == nil {
		return fallbackPrediction(fv)
	}

	pred, ok := s.classify(clf, fv)
	if !ok {
		return fallbackPrediction(fv)
	}
	return pred
}

// classify runs the classifier, converting a panic into "unavailable".
func (s *Service) classify(clf Classifier, fv FeatureVector) (pred Prediction, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if s.l != nil {
				s.l.Errorf(context.Background(), "ai: classifier panicked, falling back: %v", r)
			}
			ok = false
		}
	}()

	feats := fv.Floats()
	class := clf.Predict(feats)

	pred = Prediction{
		OnTime:   float64(class),
		Class:    class,
		Fallback: false,
	}

	if proba, hasProba := clf.(ProbaClassifier); hasProba {
		p := proba.PredictProba(feats)
		pred.OnTime = p
		pred.Confidence = round2(p)
	}

	return pred, true
}

// fallbackPrediction is the deterministic heuristic used when no model is
// available. Scores live in [0.1, 0.95]; confidence is a flat 0.5.
func fallbackPrediction(fv FeatureVector) Prediction {
	score := 0.7

	if fv.DurationMin < 60 {
		score += 0.15
	} else if fv.DurationMin > 180 {
		score -= 0.2
	}

	if fv.PriorityRank >= 3 {
		score += 0.1
	} else if fv.PriorityRank == 1 {
		score -= 0.1
	}

	if fv.DayOfWeek == 6 || fv.DayOfWeek == 7 {
		score -= 0.05
	}

	if fv.StartHour >= 9 && fv.StartHour <= 17 {
		score += 0.05
	}

	score = math.Max(0.1, math.Min(0.95, score))

	class := ClassOnTime
	if score < 0.5 {
		class = ClassLate
	}

	return Prediction{
		OnTime:     score,
		Confidence: 0.5,
		Class:      class,
		Fallback:   true,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
