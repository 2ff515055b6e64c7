// Package estimator computes salary predictions from the static role,
// experience and location tables.
//
// The estimate never fails: an unknown role uses FallbackBase, an unknown
// location uses a neutral multiplier and an unknown experience tier is
// treated as Mid.
package estimator

import (
	"math"
	"strings"

	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

// BaseCompensation returns the base salary for a role and whether the role is known
func BaseCompensation(role string) (int, bool) {
	if base, ok := roleIndex[role]; ok {
		return base, true
	}
	return FallbackBase, false
}

// LocationMultiplier returns the pay multiplier for a location and whether it is known
func LocationMultiplier(location string) (float64, bool) {
	if mult, ok := locationIndex[location]; ok {
		return mult, true
	}
	return DefaultLocationMultiplier, false
}

// ExperienceMultiplier returns the multiplier for a tier. Anything other than
// Junior, Mid or Senior gets the Mid multiplier.
func ExperienceMultiplier(tier models.ExperienceTier) (float64, bool) {
	if mult, ok := tierIndex[tier]; ok {
		return mult, true
	}
	return tierIndex[models.Mid], false
}

// ParseExperienceTier maps free text to a tier, case-insensitively.
// Unrecognized input yields Mid and false.
func ParseExperienceTier(s string) (models.ExperienceTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior":
		return models.Junior, true
	case "mid":
		return models.Mid, true
	case "senior":
		return models.Senior, true
	}
	return models.Mid, false
}

// Estimate predicts compensation in $K for a role, experience tier and location
func Estimate(role string, experience models.ExperienceTier, location string) models.EstimateResult {
	base, _ := BaseCompensation(role)
	expMult, _ := ExperienceMultiplier(experience)
	locMult, _ := LocationMultiplier(location)
	return result(predict(base, expMult, locMult))
}

// Explain runs Estimate for a request and reports which lookups fell back
func Explain(req models.EstimateRequest) models.Estimate {
	tier, tierKnown := ParseExperienceTier(req.Experience)
	base, roleKnown := BaseCompensation(req.Role)
	expMult, _ := ExperienceMultiplier(tier)
	locMult, locKnown := LocationMultiplier(req.Location)

	return models.Estimate{
		Request:              req,
		Result:               result(predict(base, expMult, locMult)),
		BaseCompensation:     base,
		ExperienceMultiplier: expMult,
		LocationMultiplier:   locMult,
		RoleKnown:            roleKnown,
		ExperienceKnown:      tierKnown,
		LocationKnown:        locKnown,
	}
}

// predict evaluates base * expMult * locMult left to right. Every operand is
// positive, so math.Round is round-half-up here.
func predict(base int, expMult, locMult float64) int {
	v := float64(base) * expMult * locMult
	return int(math.Round(v))
}

func result(predicted int) models.EstimateResult {
	return models.EstimateResult{
		Predicted:         predicted,
		LowerBound:        predicted - lowerOffset,
		UpperBound:        predicted + upperOffset,
		ConfidencePercent: confidencePercent,
	}
}
