package inference

import (
	"fmt"

	"github.com/insurekart/premium-prediction-service/internal/models"
)

// Adapter packages derived and passthrough features into the classifier's
// row contract, runs prediction, and shapes the result. Stateless apart
// from the injected classifier; safe for concurrent use.
type Adapter struct {
	classifier Classifier
}

// NewAdapter creates an adapter around a loaded classifier.
func NewAdapter(classifier Classifier) *Adapter {
	return &Adapter{classifier: classifier}
}

// Ready reports whether a classifier is loaded and predictions can be served.
func (a *Adapter) Ready() bool {
	return a.classifier != nil
}

// Infer runs the classifier on one request's features. Label and probability
// prediction run on the same encoded row so they can never diverge. Returns
// either a complete result or an error; there is no partial mode.
func (a *Adapter) Infer(derived models.DerivedFeatures, incomeLPA float64, occupation string) (*models.PredictionResult, error) {
	if !a.Ready() {
		return nil, &Error{Op: "predict", Err: ErrModelNotLoaded}
	}

	row := FeatureRow{
		BMI:           derived.BMI,
		AgeGroup:      derived.AgeGroup,
		LifestyleRisk: derived.LifestyleRisk,
		CityTier:      derived.CityTier,
		IncomeLPA:     incomeLPA,
		Occupation:    occupation,
	}

	encoded, err := a.classifier.Encode(row)
	if err != nil {
		return nil, &Error{Op: "encode", Err: err}
	}

	probs, err := a.classifier.PredictProba(encoded)
	if err != nil {
		return nil, &Error{Op: "predict_proba", Err: err}
	}

	classes := a.classifier.Classes()
	if len(probs) != len(classes) {
		return nil, &Error{
			Op:  "predict_proba",
			Err: fmt.Errorf("classifier returned %d probabilities for %d classes", len(probs), len(classes)),
		}
	}

	label, err := a.classifier.Predict(encoded)
	if err != nil {
		return nil, &Error{Op: "predict", Err: err}
	}

	probabilities := make(map[string]float64, len(classes))
	confidence := 0.0
	for i, class := range classes {
		probabilities[class] = probs[i]
		if probs[i] > confidence {
			confidence = probs[i]
		}
	}

	return &models.PredictionResult{
		PredictedCategory:  label,
		ClassProbabilities: probabilities,
		Confidence:         confidence,
	}, nil
}
