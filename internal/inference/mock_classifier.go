package inference

// MockClassifier is a mock implementation of Classifier for testing
type MockClassifier struct {
	ClassesFunc      func() []string
	EncodeFunc       func(row FeatureRow) ([]float64, error)
	PredictFunc      func(encoded []float64) (string, error)
	PredictProbaFunc func(encoded []float64) ([]float64, error)
}

// NewMockClassifier creates a mock classifier with a fixed three-class
// distribution so tests are deterministic by default.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{
		ClassesFunc: func() []string {
			return []string{"High", "Low", "Medium"}
		},
		EncodeFunc: func(_ FeatureRow) ([]float64, error) {
			return []float64{0, 0, 0, 0, 0, 0}, nil
		},
		PredictFunc: func(_ []float64) (string, error) {
			return "Medium", nil
		},
		PredictProbaFunc: func(_ []float64) ([]float64, error) {
			return []float64{0.1, 0.25, 0.65}, nil
		},
	}
}

// Classes implements Classifier.Classes
func (m *MockClassifier) Classes() []string {
	return m.ClassesFunc()
}

// Encode implements Classifier.Encode
func (m *MockClassifier) Encode(row FeatureRow) ([]float64, error) {
	return m.EncodeFunc(row)
}

// Predict implements Classifier.Predict
func (m *MockClassifier) Predict(encoded []float64) (string, error) {
	return m.PredictFunc(encoded)
}

// PredictProba implements Classifier.PredictProba
func (m *MockClassifier) PredictProba(encoded []float64) ([]float64, error) {
	return m.PredictProbaFunc(encoded)
}
