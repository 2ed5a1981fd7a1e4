package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurekart/premium-prediction-service/internal/config"
	"github.com/insurekart/premium-prediction-service/internal/features"
	"github.com/insurekart/premium-prediction-service/internal/handlers"
	"github.com/insurekart/premium-prediction-service/internal/inference"
)

func testArtifact() inference.Artifact {
	return inference.Artifact{
		ModelType: "softmax_regression",
		Version:   "test",
		Classes:   []string{"High", "Low", "Medium"},
		Features:  []string{"bmi", "age_group", "lifestyle_risk", "city_tier", "income_lpa", "occupation"},
		Encodings: map[string]map[string]float64{
			"age_group":      {"young": 0, "adult": 1, "middle_aged": 2, "senior": 3},
			"lifestyle_risk": {"low": 0, "medium": 1, "high": 2},
			"occupation": {
				"business_owner": 0, "freelancer": 1, "government_job": 2,
				"private_job": 3, "retired": 4, "student": 5, "unemployed": 6,
			},
		},
		Weights: [][]float64{
			{0.081, 0.462, 0.913, -0.204, -0.047, 0.021},
			{-0.064, -0.518, -0.842, 0.153, -0.019, -0.008},
			{0.012, 0.096, 0.054, 0.024, 0.058, -0.003},
		},
		Intercepts: []float64{-3.118, 2.407, 0.385},
	}
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	classifier, err := inference.NewSoftmaxClassifier(testArtifact())
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
	}

	return New(&Dependencies{
		Config:    cfg,
		Predictor: inference.NewAdapter(classifier),
		TierTable: features.NewTierTable(),
		Logger:    zerolog.Nop(),
	})
}

func TestServer_Health(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.True(t, response.ModelLoaded)
}

func TestServer_Home(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Premium")
}

func TestServer_RequestIDHeader(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func predictRequest(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServer_PredictEndToEnd(t *testing.T) {
	router := newTestServer(t)

	body := map[string]interface{}{
		"age":        35,
		"weight":     85.5,
		"height":     1.75,
		"income_lpa": 12.5,
		"smoker":     false,
		"city":       "Mumbai",
		"occupation": "private_job",
	}

	w := predictRequest(t, router, body)
	require.Equal(t, http.StatusOK, w.Code)

	var response handlers.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Contains(t, []string{"High", "Low", "Medium"}, response.Response.PredictedCategory)
	require.Len(t, response.Response.ClassProbabilities, 3)

	var sum, max float64
	for _, p := range response.Response.ClassProbabilities {
		sum += p
		if p > max {
			max = p
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.InDelta(t, max, response.Response.Confidence, 1e-4)
}

func TestServer_PredictIdempotent(t *testing.T) {
	router := newTestServer(t)

	body := map[string]interface{}{
		"age":        52,
		"weight":     78.0,
		"height":     1.62,
		"income_lpa": 6.0,
		"smoker":     true,
		"city":       "jaipur",
		"occupation": "business_owner",
	}

	first := predictRequest(t, router, body)
	second := predictRequest(t, router, body)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestServer_PredictValidationFailure(t *testing.T) {
	router := newTestServer(t)

	body := map[string]interface{}{
		"age":        35,
		"weight":     85.5,
		"height":     1.75,
		"income_lpa": 12.5,
		"smoker":     false,
		"city":       "Mumbai",
		"occupation": "astronaut",
	}

	w := predictRequest(t, router, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "occupation")
}
