package inference

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Feature names the softmax artifact may reference. Order inside the
// artifact's "features" list is authoritative; these are the allowed keys.
const (
	featureBMI           = "bmi"
	featureAgeGroup      = "age_group"
	featureLifestyleRisk = "lifestyle_risk"
	featureCityTier      = "city_tier"
	featureIncomeLPA     = "income_lpa"
	featureOccupation    = "occupation"
)

// Artifact is the JSON export of a trained multinomial logistic model:
// class labels, ordered feature names, per-class weights and intercepts,
// and the categorical encoding tables used during training.
type Artifact struct {
	ModelType  string                        `json:"model_type"`
	Version    string                        `json:"version"`
	Classes    []string                      `json:"classes"`
	Features   []string                      `json:"features"`
	Encodings  map[string]map[string]float64 `json:"encodings"`
	Weights    [][]float64                   `json:"weights"`
	Intercepts []float64                     `json:"intercepts"`
}

// SoftmaxClassifier evaluates a multinomial logistic model loaded from an
// artifact file. It holds only immutable state and is safe for concurrent
// use without locking.
type SoftmaxClassifier struct {
	artifact Artifact
}

// Load reads and validates a classifier artifact from disk. A load failure
// is fatal to process start; the caller must not serve without a model.
func Load(path string) (*SoftmaxClassifier, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		return nil, fmt.Errorf("parsing model artifact: %w", err)
	}
	return NewSoftmaxClassifier(artifact)
}

// NewSoftmaxClassifier validates the artifact shape and wraps it.
func NewSoftmaxClassifier(artifact Artifact) (*SoftmaxClassifier, error) {
	if len(artifact.Classes) == 0 {
		return nil, fmt.Errorf("model artifact has no classes")
	}
	if len(artifact.Features) == 0 {
		return nil, fmt.Errorf("model artifact has no features")
	}
	if len(artifact.Weights) != len(artifact.Classes) {
		return nil, fmt.Errorf("model artifact has %d weight rows for %d classes",
			len(artifact.Weights), len(artifact.Classes))
	}
	if len(artifact.Intercepts) != len(artifact.Classes) {
		return nil, fmt.Errorf("model artifact has %d intercepts for %d classes",
			len(artifact.Intercepts), len(artifact.Classes))
	}
	for i, row := range artifact.Weights {
		if len(row) != len(artifact.Features) {
			return nil, fmt.Errorf("weight row %d has %d values for %d features",
				i, len(row), len(artifact.Features))
		}
	}
	return &SoftmaxClassifier{artifact: artifact}, nil
}

// ModelVersion returns the version string recorded in the artifact.
func (c *SoftmaxClassifier) ModelVersion() string {
	return c.artifact.Version
}

// Classes returns the model's class labels in training order.
func (c *SoftmaxClassifier) Classes() []string {
	return c.artifact.Classes
}

// Encode maps a feature row onto the numeric vector the model was trained
// on. Categorical labels absent from the artifact's encoding tables are a
// model contract violation, not a client error.
func (c *SoftmaxClassifier) Encode(row FeatureRow) ([]float64, error) {
	encoded := make([]float64, len(c.artifact.Features))
	for i, name := range c.artifact.Features {
		switch name {
		case featureBMI:
			encoded[i] = row.BMI
		case featureCityTier:
			encoded[i] = float64(row.CityTier)
		case featureIncomeLPA:
			encoded[i] = row.IncomeLPA
		case featureAgeGroup:
			code, err := c.encodeCategory(featureAgeGroup, row.AgeGroup)
			if err != nil {
				return nil, err
			}
			encoded[i] = code
		case featureLifestyleRisk:
			code, err := c.encodeCategory(featureLifestyleRisk, row.LifestyleRisk)
			if err != nil {
				return nil, err
			}
			encoded[i] = code
		case featureOccupation:
			code, err := c.encodeCategory(featureOccupation, row.Occupation)
			if err != nil {
				return nil, err
			}
			encoded[i] = code
		default:
			return nil, fmt.Errorf("unknown feature %q in model artifact", name)
		}
	}
	return encoded, nil
}

func (c *SoftmaxClassifier) encodeCategory(feature, label string) (float64, error) {
	table, ok := c.artifact.Encodings[feature]
	if !ok {
		return 0, fmt.Errorf("model artifact has no encoding table for %q", feature)
	}
	code, ok := table[label]
	if !ok {
		return 0, fmt.Errorf("label %q not present in %q encoding table", label, feature)
	}
	return code, nil
}

// PredictProba returns the softmax probability per class for an encoded
// row, aligned to Classes(). Probabilities sum to 1 by construction.
func (c *SoftmaxClassifier) PredictProba(encoded []float64) ([]float64, error) {
	if len(encoded) != len(c.artifact.Features) {
		return nil, fmt.Errorf("encoded row has %d values, model expects %d",
			len(encoded), len(c.artifact.Features))
	}

	scores := make([]float64, len(c.artifact.Classes))
	maxScore := math.Inf(-1)
	for i, weights := range c.artifact.Weights {
		score := c.artifact.Intercepts[i]
		for j, w := range weights {
			score += w * encoded[j]
		}
		scores[i] = score
		if score > maxScore {
			maxScore = score
		}
	}

	// Shift by the max score before exponentiating to avoid overflow.
	var sum float64
	probs := make([]float64, len(scores))
	for i, score := range scores {
		probs[i] = math.Exp(score - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// Predict returns the class label with the highest probability.
func (c *SoftmaxClassifier) Predict(encoded []float64) (string, error) {
	probs, err := c.PredictProba(encoded)
	if err != nil {
		return "", err
	}
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return c.artifact.Classes[best], nil
}
