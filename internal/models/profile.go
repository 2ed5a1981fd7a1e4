// Package models contains data models for the premium prediction service.
package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Occupation categories the classifier was trained on. Anything outside this
// set is rejected at validation time and never reaches the model.
const (
	OccupationRetired       = "retired"
	OccupationFreelancer    = "freelancer"
	OccupationStudent       = "student"
	OccupationGovernmentJob = "government_job"
	OccupationBusinessOwner = "business_owner"
	OccupationUnemployed    = "unemployed"
	OccupationPrivateJob    = "private_job"
)

// Occupations lists every recognized occupation category.
var Occupations = []string{
	OccupationRetired,
	OccupationFreelancer,
	OccupationStudent,
	OccupationGovernmentJob,
	OccupationBusinessOwner,
	OccupationUnemployed,
	OccupationPrivateJob,
}

// Lifestyle risk buckets derived from smoking status and BMI.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Age group buckets. Boundaries are half-open on the lower bound so every
// age in [0,120] maps to exactly one bucket.
const (
	AgeGroupYoung      = "young"
	AgeGroupAdult      = "adult"
	AgeGroupMiddleAged = "middle_aged"
	AgeGroupSenior     = "senior"
)

// ProfileInput represents one prediction request. Numeric and boolean fields
// are pointers so that a missing field is distinguishable from a legitimate
// zero value (age 0, income 0, smoker false are all valid inputs).
type ProfileInput struct {
	// Age in whole years
	Age *int `json:"age" binding:"required,gte=0,lte=120"`

	// Weight in kilograms
	Weight *float64 `json:"weight" binding:"required,gt=0"`

	// Height in meters
	Height *float64 `json:"height" binding:"required,gt=0,lte=2.5"`

	// Annual income in lakhs per annum, passed through to the model
	IncomeLPA *float64 `json:"income_lpa" binding:"required,gte=0"`

	// Whether the person smokes
	Smoker *bool `json:"smoker" binding:"required"`

	// City of residence, free text; normalized before tier lookup
	City string `json:"city" binding:"required"`

	// Occupation category
	Occupation string `json:"occupation" binding:"required,oneof=retired freelancer student government_job business_owner unemployed private_job"`
}

// Normalize canonicalizes free-text fields in place. City matching is
// case- and whitespace-insensitive: "  mumbai " and "MUMBAI" both resolve
// to "Mumbai" before the tier table is consulted.
func (p *ProfileInput) Normalize() {
	p.City = NormalizeCity(p.City)
}

// NormalizeCity trims surrounding whitespace and title-cases a city name.
func NormalizeCity(city string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(city))
}

// DerivedFeatures holds the engineered features computed from a validated
// ProfileInput. It is a pure function of the input and the city tier table,
// recomputed per request and never persisted.
type DerivedFeatures struct {
	BMI           float64
	LifestyleRisk string
	AgeGroup      string
	CityTier      int
}

// PredictionResult is the classifier output for one request.
type PredictionResult struct {
	// Class label with the highest probability
	PredictedCategory string

	// Probability per class label; entries sum to 1.0 within floating-point
	// tolerance and the keys are exactly the classifier's known classes
	ClassProbabilities map[string]float64

	// Maximum value in ClassProbabilities
	Confidence float64
}
