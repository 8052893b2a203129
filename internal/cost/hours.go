// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cost

import "strings"

// complexity tiers for heuristic hour estimation.
type complexity string

const (
	tierSimple  complexity = "simple"
	tierMedium  complexity = "medium"
	tierComplex complexity = "complex"
)

// roleCategory buckets role names for the hour table.
type roleCategory string

const (
	catFrontend roleCategory = "frontend"
	catBackend  roleCategory = "backend"
	catDatabase roleCategory = "database"
	catCloud    roleCategory = "cloud"
	catTesting  roleCategory = "testing"
)

// defaultHours is returned for a (category, tier) pair missing from the table.
const defaultHours = 16

// hourTable maps role category and complexity tier to a canned hour estimate.
var hourTable = map[roleCategory]map[complexity]float64{
	catFrontend: {tierSimple: 8, tierMedium: 16, tierComplex: 32},
	catBackend:  {tierSimple: 12, tierMedium: 24, tierComplex: 48},
	catDatabase: {tierSimple: 16, tierMedium: 32, tierComplex: 64},
	catCloud:    {tierSimple: 20, tierMedium: 40, tierComplex: 80},
	catTesting:  {tierSimple: 8, tierMedium: 16, tierComplex: 24},
}

// complexityRules map signal words in the task description to a tier,
// consulted in order. No match means medium.
var complexityRules = []struct {
	tier  complexity
	words []string
}{
	{tierSimple, []string{"simple", "basic", "quick", "minor"}},
	{tierComplex, []string{"complex", "advanced", "sophisticated", "comprehensive"}},
}

// categoryRules map substrings of the role name to a category, consulted in
// order. No match means backend.
var categoryRules = []struct {
	category roleCategory
	substr   string
}{
	{catFrontend, "frontend"},
	{catBackend, "backend"},
	{catDatabase, "database"},
	{catCloud, "cloud"},
	{catTesting, "test"},
}

// EstimateHours maps a free-text task description and a role name to a canned
// hour estimate by keyword matching. The scan is case-insensitive.
func EstimateHours(description, role string) float64 {
	tier := classifyComplexity(description)
	category := classifyRole(role)

	if hours, ok := hourTable[category][tier]; ok {
		return hours
	}
	return defaultHours
}

func classifyComplexity(description string) complexity {
	lower := strings.ToLower(description)
	for _, rule := range complexityRules {
		for _, word := range rule.words {
			if strings.Contains(lower, word) {
				return rule.tier
			}
		}
	}
	return tierMedium
}

func classifyRole(role string) roleCategory {
	lower := strings.ToLower(role)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.substr) {
			return rule.category
		}
	}
	return catBackend
}
