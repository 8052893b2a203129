// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes analysis text into per-model report documents and
// derives a fixed-layout PDF rendering from each written document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Type is one of the two fixed report categories.
type Type string

const (
	Technical Type = "technical"
	Financial Type = "financial"
)

// Valid reports whether t is a known report type.
func (t Type) Valid() bool {
	return t == Technical || t == Financial
}

// Title renders the document heading for a model's report.
func (t Type) Title(model string) string {
	switch t {
	case Technical:
		return "Technical Report - " + model
	case Financial:
		return "Financial Report - " + model
	}
	return "Report - " + model
}

// Assembler writes reports under a fixed directory layout:
// <ReportsDir>/<model>/<type>_report.md, with the derived PDF alongside.
type Assembler struct {
	ReportsDir string
}

// Path returns the deterministic document path for a (model, type) pair.
func (a Assembler) Path(model string, reportType Type) string {
	return filepath.Join(a.ReportsDir, model, string(reportType)+"_report.md")
}

// Create writes a titled report document whose body is the analysis text
// verbatim, creating parent directories as needed. Re-invoking with the same
// (model, type) overwrites the prior file.
func (a Assembler) Create(model string, reportType Type, analysis string) (string, error) {
	if !reportType.Valid() {
		return "", fmt.Errorf("unknown report type %q", reportType)
	}

	path := a.Path(model, reportType)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	doc := "# " + reportType.Title(model) + "\n\n" + analysis + "\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}

	return path, nil
}

// Text re-extracts the analysis body from a written report document: the
// title heading is dropped and the remainder is returned unchanged, so a
// Create/Text round trip preserves the analysis exactly.
func Text(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading report %s: %w", path, err)
	}

	content := string(data)
	if _, body, found := strings.Cut(content, "\n\n"); found && strings.HasPrefix(content, "# ") {
		content = body
	}
	return strings.TrimSuffix(content, "\n"), nil
}
