// Package inference wraps the pre-trained premium classifier behind a
// narrow interface and adapts derived features into the ordered row the
// model expects.
package inference

import (
	"errors"
	"fmt"
)

// ErrModelNotLoaded indicates the classifier artifact was never loaded.
var ErrModelNotLoaded = errors.New("classifier not loaded")

// Error is a model or serving fault: the classifier is unavailable, the
// row cannot be encoded with the training-time encodings, or the model
// returned output of the wrong shape. It is distinct from a client
// validation failure so monitoring can separate the two.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("inference %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FeatureRow is the fixed-order input contract of the deployed model:
// bmi, age_group, lifestyle_risk, city_tier, income_lpa, occupation.
// Categorical fields carry the same string labels used at training time.
type FeatureRow struct {
	BMI           float64
	AgeGroup      string
	LifestyleRisk string
	CityTier      int
	IncomeLPA     float64
	Occupation    string
}

// Classifier is the boundary to the trained model artifact. Implementations
// must be safe for concurrent use; the service never mutates a classifier
// after startup.
type Classifier interface {
	// Classes returns the model's known class labels in its internal order.
	Classes() []string

	// Encode maps a feature row onto the numeric vector the model was
	// trained on, using the encodings frozen in the artifact.
	Encode(row FeatureRow) ([]float64, error)

	// Predict returns the class label with the highest probability.
	Predict(encoded []float64) (string, error)

	// PredictProba returns one probability per class, aligned to Classes().
	PredictProba(encoded []float64) ([]float64, error)
}
