// Package features computes the engineered features the premium classifier
// was trained on. Derivation is deterministic and must stay in lockstep with
// the training pipeline; the thresholds and city lists here are part of the
// frozen feature contract of the deployed model artifact.
package features

// Default tier for any city not present in the curated lists.
const TierOther = 3

var tier1Cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune",
}

var tier2Cities = []string{
	"Jaipur", "Chandigarh", "Indore", "Lucknow", "Patna", "Ranchi",
	"Visakhapatnam", "Coimbatore", "Bhopal", "Nagpur", "Vadodara", "Surat",
	"Rajkot", "Jodhpur", "Raipur", "Amritsar", "Varanasi", "Agra", "Dehradun",
	"Mysore", "Jabalpur", "Guwahati", "Thiruvananthapuram", "Ludhiana",
	"Nashik", "Allahabad", "Udaipur", "Aurangabad", "Hubli", "Belgaum",
	"Salem", "Vijayawada", "Tiruchirappalli", "Bhavnagar", "Gwalior",
	"Dhanbad", "Bareilly", "Aligarh", "Gaya", "Kozhikode", "Warangal",
	"Kolhapur", "Bilaspur", "Jalandhar", "Noida", "Guntur", "Asansol",
	"Siliguri",
}

// TierTable maps normalized city names to their tier. It is built once at
// startup and shared read-only across all requests.
type TierTable struct {
	tiers map[string]int
}

// NewTierTable builds the tier table from the curated city lists.
func NewTierTable() *TierTable {
	tiers := make(map[string]int, len(tier1Cities)+len(tier2Cities))
	for _, city := range tier1Cities {
		tiers[city] = 1
	}
	for _, city := range tier2Cities {
		tiers[city] = 2
	}
	return &TierTable{tiers: tiers}
}

// Lookup returns the tier for a normalized city name. Cities absent from
// both lists resolve to tier 3; an unknown city is not an error.
func (t *TierTable) Lookup(city string) int {
	if tier, ok := t.tiers[city]; ok {
		return tier
	}
	return TierOther
}
