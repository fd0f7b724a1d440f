package scheduler

import (
	"fmt"
	"math"
	"strings"
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/model"
)

// Scorer computes the 0-100 composite urgency score driving scheduling
// order. Three independently capped components: priority weight (max 40),
// deadline urgency (max 40), prediction-risk bonus (max 20).
type Scorer struct {
	predictor Predictor
}

// NewScorer creates a scorer. predictor may be nil; prediction is an
// enhancement, never a hard dependency.
func NewScorer(predictor Predictor) *Scorer {
	return &Scorer{predictor: predictor}
}

var priorityWeights = map[model.Priority]int{
	model.PriorityUrgent: 40,
	model.PriorityHigh:   30,
	model.PriorityMedium: 20,
	model.PriorityLow:    10,
}

// Score computes the priority score for a task at the given time.
func (s *Scorer) Score(t model.Task, now time.Time) int {
	score := 0

	if w, ok := priorityWeights[t.Priority]; ok {
		score += w
	} else {
		score += 20
	}

	score += deadlineUrgency(t, now)
	score += s.riskBonus(t)

	if score > 100 {
		score = 100
	}
	return score
}

func deadlineUrgency(t model.Task, now time.Time) int {
	if t.DueAt == nil {
		return 5
	}

	hoursUntilDue := t.DueAt.Sub(now).Hours()
	switch {
	case hoursUntilDue < 0:
		return 40 // overdue dominates
	case hoursUntilDue < 24:
		return 35
	case hoursUntilDue < 48:
		return 30
	case hoursUntilDue < 168:
		return 20
	default:
		return 10
	}
}

// riskBonus adds weight for tasks the predictor flags as likely late.
// Any predictor trouble contributes zero.
func (s *Scorer) riskBonus(t model.Task) (bonus int) {
	if s.predictor == nil {
		return 0
	}
	defer func() {
		if recover() != nil {
			bonus = 0
		}
	}()

	pred := s.predictor.PredictWithConfidence(t, nil)
	if pred.Class == ai.ClassLate {
		return int(math.Round(20 * pred.Confidence))
	}
	return 0
}

// Reason builds a human-readable justification for a schedule entry.
func (s *Scorer) Reason(t model.Task, score int, now time.Time) string {
	var reasons []string

	if t.Priority == model.PriorityUrgent || t.Priority == model.PriorityHigh {
		reasons = append(reasons, fmt.Sprintf("%s priority", t.Priority))
	}

	if t.DueAt != nil {
		switch hours := t.DueAt.Sub(now).Hours(); {
		case hours < 0:
			reasons = append(reasons, "Overdue!")
		case hours < 24:
			reasons = append(reasons, "Due today")
		case hours < 48:
			reasons = append(reasons, "Due tomorrow")
		}
	}

	if score >= 90 {
		reasons = append(reasons, "Critical")
	}

	if len(reasons) == 0 {
		return "Scheduled"
	}
	return strings.Join(reasons, ", ")
}
