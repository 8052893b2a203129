// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questioner

import (
	"strings"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// bucket identifies one of the five requirement groups.
type bucket int

const (
	bucketOverview bucket = iota
	bucketTechnical
	bucketFinancial
	bucketTimeline
	bucketResource
)

// classifyRules is the ordered rule table for section bucketing. Rules are
// consulted top to bottom and the first match wins, so the matching policy is
// data rather than scattered conditionals.
var classifyRules = []struct {
	bucket   bucket
	keywords []string
}{
	{bucketOverview, []string{"overview", "description", "summary"}},
	{bucketTechnical, []string{"technical", "technology", "architecture", "system"}},
	{bucketFinancial, []string{"financial", "budget", "cost", "pricing"}},
	{bucketTimeline, []string{"timeline", "schedule", "deadline", "milestone"}},
	{bucketResource, []string{"resource", "team", "staff", "personnel"}},
}

// Classify re-buckets sections into requirement groups by keyword matching on
// lower-cased titles. Each section lands in at most one bucket; the overview
// bucket assigns rather than appends since only one overview is expected.
// Sections matching no rule are dropped from the bundle.
func Classify(sections []types.Section) types.Requirements {
	var reqs types.Requirements

	for _, sec := range sections {
		b, ok := matchBucket(sec.Title)
		if !ok {
			continue
		}

		switch b {
		case bucketOverview:
			reqs.Overview = strings.Join(sec.Questions, "\n")
		case bucketTechnical:
			reqs.Technical = append(reqs.Technical, sec.Questions...)
		case bucketFinancial:
			reqs.Financial = append(reqs.Financial, sec.Questions...)
		case bucketTimeline:
			reqs.Timeline = append(reqs.Timeline, sec.Questions...)
		case bucketResource:
			reqs.Resource = append(reqs.Resource, sec.Questions...)
		}
	}

	return reqs
}

// matchBucket returns the first rule bucket whose keyword appears in the
// lower-cased title.
func matchBucket(title string) (bucket, bool) {
	lower := strings.ToLower(title)
	for _, rule := range classifyRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.bucket, true
			}
		}
	}
	return 0, false
}
