package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insurekart/premium-prediction-service/internal/models"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 27.918, BMI(85.5, 1.75), 0.001)
	assert.InDelta(t, 22.857, BMI(70, 1.75), 0.001)
}

func TestLifestyleRisk(t *testing.T) {
	tests := []struct {
		name   string
		smoker bool
		bmi    float64
		want   string
	}{
		{"smoker with high bmi", true, 31, models.RiskHigh},
		{"smoker with low bmi", true, 20, models.RiskMedium},
		{"non-smoker with elevated bmi", false, 28, models.RiskMedium},
		{"non-smoker with normal bmi", false, 22, models.RiskLow},
		{"smoker exactly at high threshold", true, 30, models.RiskMedium},
		{"non-smoker exactly at medium threshold", false, 27, models.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LifestyleRisk(tt.smoker, tt.bmi))
		})
	}
}

func TestAgeGroup_Boundaries(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{0, models.AgeGroupYoung},
		{24, models.AgeGroupYoung},
		{25, models.AgeGroupAdult},
		{44, models.AgeGroupAdult},
		{45, models.AgeGroupMiddleAged},
		{59, models.AgeGroupMiddleAged},
		{60, models.AgeGroupSenior},
		{120, models.AgeGroupSenior},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeGroup(tt.age), "age %d", tt.age)
	}
}

func TestAgeGroup_TotalAndNonOverlapping(t *testing.T) {
	buckets := map[string]bool{
		models.AgeGroupYoung:      true,
		models.AgeGroupAdult:      true,
		models.AgeGroupMiddleAged: true,
		models.AgeGroupSenior:     true,
	}
	// Every valid age maps to exactly one known bucket.
	for age := 0; age <= 120; age++ {
		assert.True(t, buckets[AgeGroup(age)], "age %d mapped to %q", age, AgeGroup(age))
	}
}

func TestDerive(t *testing.T) {
	table := NewTierTable()

	age := 35
	weight := 85.5
	height := 1.75
	income := 12.5
	smoker := false
	input := &models.ProfileInput{
		Age:        &age,
		Weight:     &weight,
		Height:     &height,
		IncomeLPA:  &income,
		Smoker:     &smoker,
		City:       "Mumbai",
		Occupation: models.OccupationPrivateJob,
	}

	derived := Derive(input, table)

	assert.InDelta(t, 27.918, derived.BMI, 0.001)
	assert.Equal(t, models.RiskMedium, derived.LifestyleRisk)
	assert.Equal(t, models.AgeGroupAdult, derived.AgeGroup)
	assert.Equal(t, 1, derived.CityTier)
}

func TestDerive_Deterministic(t *testing.T) {
	table := NewTierTable()

	age := 61
	weight := 92.0
	height := 1.68
	income := 4.0
	smoker := true
	input := &models.ProfileInput{
		Age:        &age,
		Weight:     &weight,
		Height:     &height,
		IncomeLPA:  &income,
		Smoker:     &smoker,
		City:       "Gaya",
		Occupation: models.OccupationRetired,
	}

	first := Derive(input, table)
	second := Derive(input, table)

	assert.Equal(t, first, second)
	assert.Equal(t, models.RiskHigh, first.LifestyleRisk)
	assert.Equal(t, models.AgeGroupSenior, first.AgeGroup)
	assert.Equal(t, 2, first.CityTier)
}
