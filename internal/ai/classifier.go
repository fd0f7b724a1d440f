package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Classifier predicts the on-time class for a feature vector in wire order.
type Classifier interface {
	Predict(features []float64) int
}

// ProbaClassifier additionally exposes the probability of the on-time class.
type ProbaClassifier interface {
	Classifier
	PredictProba(features []float64) float64
}

// logisticModel is the reference classifier: a logistic regression whose
// coefficients are exported to JSON at training time.
type logisticModel struct {
	Weights   []float64 `json:"weights"`
	Bias      float64   `json:"bias"`
	Threshold float64   `json:"threshold"`
}

func (m *logisticModel) PredictProba(features []float64) float64 {
	z := m.Bias
	for i, w := range m.Weights {
		if i < len(features) {
			z += w * features[i]
		}
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

func (m *logisticModel) Predict(features []float64) int {
	if m.PredictProba(features) >= m.Threshold {
		return ClassOnTime
	}
	return ClassLate
}

// loadModelFile reads the exported classifier from path.
func loadModelFile(path string) (ProbaClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file %q: %w", path, err)
	}

	var m logisticModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model file %q: %w", path, err)
	}

	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model file %q has no weights", path)
	}
	if m.Threshold <= 0 || m.Threshold >= 1 {
		m.Threshold = 0.5
	}

	return &m, nil
}
