package estimator

import "github.com/fr4nk3nst1ner/talentscope/internal/models"

const (
	// FallbackBase is the base compensation ($K) used for roles missing from the table
	FallbackBase = 95

	// DefaultLocationMultiplier applies to locations missing from the table
	DefaultLocationMultiplier = 1.0

	lowerOffset       = 12
	upperOffset       = 18
	confidencePercent = 87
)

// Shell defaults for the predictor form
const (
	DefaultRole       = "Data Analyst"
	DefaultExperience = models.Mid
	DefaultLocation   = "Remote"
)

// Base salary in $K at mid level, in display order
var roleTable = []models.RoleEntry{
	{Label: "Data Analyst", BaseCompensation: 85},
	{Label: "Business Analyst", BaseCompensation: 82},
	{Label: "Financial Analyst", BaseCompensation: 88},
	{Label: "Product Analyst", BaseCompensation: 95},
	{Label: "Marketing Analyst", BaseCompensation: 78},
	{Label: "Data Scientist", BaseCompensation: 115},
	{Label: "Research Scientist", BaseCompensation: 130},
	{Label: "Applied Scientist", BaseCompensation: 125},
	{Label: "Analytics Engineer", BaseCompensation: 105},
	{Label: "Data Engineer", BaseCompensation: 125},
	{Label: "ML Engineer", BaseCompensation: 140},
	{Label: "BI Analyst", BaseCompensation: 90},
	{Label: "BI Developer", BaseCompensation: 98},
	{Label: "Data Architect", BaseCompensation: 145},
	{Label: "Software Engineer", BaseCompensation: 120},
	{Label: "Backend Engineer", BaseCompensation: 118},
	{Label: "DevOps Engineer", BaseCompensation: 115},
	{Label: "Solutions Architect", BaseCompensation: 135},
	{Label: "Statistician", BaseCompensation: 95},
	{Label: "Quantitative Analyst", BaseCompensation: 110},
	{Label: "Machine Learning Engineer", BaseCompensation: 142},
	{Label: "AI Engineer", BaseCompensation: 138},
	{Label: "ETL Developer", BaseCompensation: 102},
	{Label: "Database Administrator", BaseCompensation: 100},
}

var locationTable = []models.LocationEntry{
	{Label: "Remote", Multiplier: 1.05},
	{Label: "San Francisco", Multiplier: 1.3},
	{Label: "New York", Multiplier: 1.25},
	{Label: "Seattle", Multiplier: 1.2},
	{Label: "Austin", Multiplier: 1.0},
	{Label: "Boston", Multiplier: 1.15},
	{Label: "Chicago", Multiplier: 1.0},
	{Label: "Denver", Multiplier: 1.0},
	{Label: "Los Angeles", Multiplier: 1.15},
	{Label: "Washington DC", Multiplier: 1.2},
	{Label: "Atlanta", Multiplier: 0.95},
	{Label: "Miami", Multiplier: 0.95},
	{Label: "Dallas", Multiplier: 1.0},
	{Label: "Philadelphia", Multiplier: 1.05},
}

var tierTable = []models.TierEntry{
	{Tier: models.Junior, Multiplier: 0.75},
	{Tier: models.Mid, Multiplier: 1.0},
	{Tier: models.Senior, Multiplier: 1.35},
}

var (
	roleIndex     = make(map[string]int, len(roleTable))
	locationIndex = make(map[string]float64, len(locationTable))
	tierIndex     = make(map[models.ExperienceTier]float64, len(tierTable))
)

func init() {
	for _, r := range roleTable {
		roleIndex[r.Label] = r.BaseCompensation
	}
	for _, l := range locationTable {
		locationIndex[l.Label] = l.Multiplier
	}
	for _, t := range tierTable {
		tierIndex[t.Tier] = t.Multiplier
	}
}

// Roles returns the role table in display order
func Roles() []models.RoleEntry {
	out := make([]models.RoleEntry, len(roleTable))
	copy(out, roleTable)
	return out
}

// Locations returns the location table in display order
func Locations() []models.LocationEntry {
	out := make([]models.LocationEntry, len(locationTable))
	copy(out, locationTable)
	return out
}

// Tiers returns the experience tiers from least to most senior
func Tiers() []models.TierEntry {
	out := make([]models.TierEntry, len(tierTable))
	copy(out, tierTable)
	return out
}
