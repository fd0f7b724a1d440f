package ai

// Feature vector layout. The trained model depends on this exact order:
// [duration_min, priority_rank, start_hour, day_of_week].
type FeatureVector struct {
	DurationMin  float64
	PriorityRank int // 1..3, High and Urgent both map to 3
	StartHour    int // 0..23
	DayOfWeek    int // ISO, 1=Monday .. 7=Sunday
}

// Floats returns the vector in wire order.
func (f FeatureVector) Floats() []float64 {
	return []float64{f.DurationMin, float64(f.PriorityRank), float64(f.StartHour), float64(f.DayOfWeek)}
}

// Overrides supplies request-level feature values that take precedence
// over values derived from the task. DurationMin is a legacy alias kept
// for older clients that predate estimated_duration_min.
type Overrides struct {
	EstimatedDurationMin *float64 `json:"estimated_duration_min,omitempty"`
	DurationMin          *float64 `json:"duration_min,omitempty"`
	StartHour            *int     `json:"start_hour,omitempty"`
	DayOfWeek            *int     `json:"day_of_week,omitempty"`
}

// Prediction classes.
const (
	ClassLate   = 0
	ClassOnTime = 1
)

// Prediction is the on-time completion estimate for a task.
type Prediction struct {
	OnTime     float64 `json:"on_time_prediction"` // probability-like score of finishing on time
	Confidence float64 `json:"confidence"`
	Class      int     `json:"-"` // ClassOnTime or ClassLate
	Fallback   bool    `json:"fallback"`
}

// Feature defaults applied when neither task nor overrides supply a signal.
const (
	defaultDurationMin  = 60.0
	defaultPriorityRank = 2
	defaultStartHour    = 9
	defaultDayOfWeek    = 2
)
