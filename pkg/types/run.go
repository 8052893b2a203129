// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus is the recorded outcome of one model's report generation.
type RunStatus string

const (
	RunOK    RunStatus = "ok"
	RunError RunStatus = "error"
)

// Run is one ledger entry: a single model's report generation within a
// session. The ledger records run metadata only; conversation transcripts and
// project data are never persisted.
type Run struct {
	// ID is a unique identifier for this run.
	ID string `json:"id" yaml:"id"`

	// SessionID ties the run to the interview session that produced it.
	SessionID string `json:"session_id" yaml:"session_id"`

	// Model is the analyst model name the run belongs to.
	Model string `json:"model" yaml:"model"`

	// Status is ok or error.
	Status RunStatus `json:"status" yaml:"status"`

	// TechnicalReport and FinancialReport are the written report paths,
	// empty on error.
	TechnicalReport string `json:"technical_report,omitempty" yaml:"technical_report,omitempty"`
	FinancialReport string `json:"financial_report,omitempty" yaml:"financial_report,omitempty"`

	// Err is the captured failure message for error runs.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`

	// CreatedAt is when the run was recorded, UTC.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
