// Package handlers contains HTTP request handlers for the premium prediction service.
package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/insurekart/premium-prediction-service/internal/features"
	"github.com/insurekart/premium-prediction-service/internal/inference"
	"github.com/insurekart/premium-prediction-service/internal/models"
)

// Confidence is rounded to this many decimal places in responses.
const confidencePrecision = 4

func init() {
	// Report violations under the JSON field names clients actually sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Predictor runs the classifier on one request's derived and passthrough
// features. Implemented by inference.Adapter; stubbed in tests.
type Predictor interface {
	Ready() bool
	Infer(derived models.DerivedFeatures, incomeLPA float64, occupation string) (*models.PredictionResult, error)
}

// PredictHandler handles premium category prediction requests
type PredictHandler struct {
	predictor Predictor
	tiers     *features.TierTable
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(predictor Predictor, tiers *features.TierTable) *PredictHandler {
	return &PredictHandler{
		predictor: predictor,
		tiers:     tiers,
	}
}

// FieldViolation describes one violated constraint on one request field.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// PredictionPayload is the prediction portion of the response body.
type PredictionPayload struct {
	PredictedCategory  string             `json:"predicted_category"`
	Confidence         float64            `json:"confidence"`
	ClassProbabilities map[string]float64 `json:"class_probabilities"`
}

// PredictionResponse is the full response body for POST /predict.
type PredictionResponse struct {
	Response PredictionPayload `json:"response"`
}

// Predict handles premium category prediction
// POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var input models.ProfileInput

	if err := c.ShouldBindJSON(&input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_failed",
				"message": "Request failed validation",
				"fields":  fieldViolations(verrs),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON payload: " + err.Error(),
		})
		return
	}

	input.Normalize()
	derived := features.Derive(&input, h.tiers)

	result, err := h.predictor.Infer(derived, *input.IncomeLPA, input.Occupation)
	if err != nil {
		var infErr *inference.Error
		if errors.As(err, &infErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "inference_failed",
				"message": "Classifier could not produce a prediction",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to produce a prediction",
		})
		return
	}

	c.JSON(http.StatusOK, buildPredictionResponse(result))
}

// buildPredictionResponse shapes a prediction result into the response
// contract. Confidence is rounded for presentation; the per-class
// probabilities are returned as produced.
func buildPredictionResponse(result *models.PredictionResult) PredictionResponse {
	return PredictionResponse{
		Response: PredictionPayload{
			PredictedCategory:  result.PredictedCategory,
			Confidence:         roundTo(result.Confidence, confidencePrecision),
			ClassProbabilities: result.ClassProbabilities,
		},
	}
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(value*factor) / factor
}

// fieldViolations flattens validator output into one entry per violated
// constraint, covering every failing field rather than just the first.
func fieldViolations(verrs validator.ValidationErrors) []FieldViolation {
	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, FieldViolation{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}
