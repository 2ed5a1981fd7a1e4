package features

import (
	"github.com/insurekart/premium-prediction-service/internal/models"
)

// BMI thresholds for the lifestyle risk buckets. These match the values the
// deployed model was trained with and must not be tuned independently.
const (
	bmiHighRiskThreshold   = 30.0
	bmiMediumRiskThreshold = 27.0
)

// Derive computes the engineered features for a validated, normalized input.
// Pure function: identical input and table always yield identical output.
func Derive(input *models.ProfileInput, table *TierTable) models.DerivedFeatures {
	bmi := BMI(*input.Weight, *input.Height)
	return models.DerivedFeatures{
		BMI:           bmi,
		LifestyleRisk: LifestyleRisk(*input.Smoker, bmi),
		AgeGroup:      AgeGroup(*input.Age),
		CityTier:      table.Lookup(input.City),
	}
}

// BMI returns weight (kg) divided by height (m) squared.
func BMI(weight, height float64) float64 {
	return weight / (height * height)
}

// LifestyleRisk buckets smoking status and BMI into low/medium/high.
// The smoker-with-high-BMI check runs first: it is a strict refinement of
// the broader OR condition below it.
func LifestyleRisk(smoker bool, bmi float64) string {
	switch {
	case smoker && bmi > bmiHighRiskThreshold:
		return models.RiskHigh
	case smoker || bmi > bmiMediumRiskThreshold:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// AgeGroup buckets an age into young/adult/middle_aged/senior.
func AgeGroup(age int) string {
	switch {
	case age < 25:
		return models.AgeGroupYoung
	case age < 45:
		return models.AgeGroupAdult
	case age < 60:
		return models.AgeGroupMiddleAged
	default:
		return models.AgeGroupSenior
	}
}
