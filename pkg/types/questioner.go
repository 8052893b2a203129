// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Section is a titled group of consecutive interview questions as found in
// the source document. Ordering is document order.
type Section struct {
	// Title is the heading or bold-run text that opened the section.
	Title string `json:"title" yaml:"title"`

	// Questions are the non-marker paragraphs under the heading, in order.
	Questions []string `json:"questions" yaml:"questions"`
}

// Content is the parsed interview script.
type Content struct {
	// Sections are the titled question groups in document order. A document
	// with no heading or bold paragraphs has zero sections; that is expected,
	// not an error.
	Sections []Section `json:"sections" yaml:"sections"`

	// RawText is every non-blank paragraph joined with newlines.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Preamble collects paragraphs that appear before the first section marker.
	Preamble string `json:"preamble,omitempty" yaml:"preamble,omitempty"`
}

// Requirements re-buckets sectionized content into the five analysis groups.
// A section contributes to at most one bucket, chosen by the first matching
// keyword category in priority order; sections matching no category are
// dropped from the bundle (the raw section list still holds them).
type Requirements struct {
	// Overview is the joined question text of the overview-flavored section.
	// Assignment, not append: only one overview is expected.
	Overview string `json:"project_overview" yaml:"project_overview"`

	Technical []string `json:"technical_requirements" yaml:"technical_requirements"`
	Financial []string `json:"financial_requirements" yaml:"financial_requirements"`
	Timeline  []string `json:"timeline_requirements" yaml:"timeline_requirements"`
	Resource  []string `json:"resource_requirements" yaml:"resource_requirements"`
}
