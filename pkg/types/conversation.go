// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Message is one turn in a conversation: a speaker role and its text.
// The delegate contract is an ordered list of messages in, one text blob out.
type Message struct {
	// Role is the speaker tag: "user", "assistant", or "system".
	Role string `json:"role" yaml:"role"`

	// Content is the message text.
	Content string `json:"content" yaml:"content"`
}

// ProjectData accumulates what the interview has learned about the client's
// project. It is owned by a single session and is never persisted; the report
// files are the only durable output.
type ProjectData struct {
	// Overview is the client's project description, assembled from the
	// overview-flavored interview sections.
	Overview string `json:"overview" yaml:"overview"`

	// TechnicalRequirements lists technical questions and answers in
	// interview order.
	TechnicalRequirements []string `json:"technical_requirements" yaml:"technical_requirements"`

	// FinancialRequirements lists budget and pricing items in interview order.
	FinancialRequirements []string `json:"financial_requirements" yaml:"financial_requirements"`

	// UserResponses maps question to answer in insertion order.
	UserResponses []Response `json:"user_responses" yaml:"user_responses"`
}

// Response pairs an interview question with the user's answer. A slice of
// these preserves insertion order, which a map would not.
type Response struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Analysis is the two-field response contract an analyst delegate is asked to
// honor: a technical half and a financial half, split on a literal marker.
type Analysis struct {
	// Technical is the technical report text. When the delegate omits the
	// financial marker the entire reply lands here.
	Technical string `json:"technical" yaml:"technical"`

	// Financial is the financial report text, empty when the marker is absent.
	Financial string `json:"financial" yaml:"financial"`
}

// ModelResult is the per-model outcome of one report-generation fan-out.
// A failure is a value in Err, not a propagated error: one model failing
// leaves its siblings' results intact.
type ModelResult struct {
	// TechnicalReport and FinancialReport are the written document paths.
	TechnicalReport string `json:"technical_report,omitempty" yaml:"technical_report,omitempty"`
	FinancialReport string `json:"financial_report,omitempty" yaml:"financial_report,omitempty"`

	// TechnicalPDF and FinancialPDF are the derived renderings.
	TechnicalPDF string `json:"technical_pdf,omitempty" yaml:"technical_pdf,omitempty"`
	FinancialPDF string `json:"financial_pdf,omitempty" yaml:"financial_pdf,omitempty"`

	// Analysis is the parsed delegate reply.
	Analysis Analysis `json:"analysis" yaml:"analysis"`

	// Err is the delegate or assembly failure message. Non-empty Err means
	// the path fields are empty.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether this model's generation ended in a captured error.
func (r ModelResult) Failed() bool {
	return r.Err != ""
}
