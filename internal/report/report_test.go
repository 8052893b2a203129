// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_PathLayout(t *testing.T) {
	a := Assembler{ReportsDir: t.TempDir()}

	path, err := a.Create("openai", Technical, "some analysis")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(a.ReportsDir, "openai", "technical_report.md"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestCreate_RoundTrip(t *testing.T) {
	a := Assembler{ReportsDir: t.TempDir()}
	analysis := "## Introduction\n\nThe system is a web app.\n\n## Architecture\n\nGo services."

	path, err := a.Create("openai", Technical, analysis)
	require.NoError(t, err)

	got, err := Text(path)
	require.NoError(t, err)
	assert.Equal(t, analysis, got)
}

func TestCreate_OverwriteIdempotent(t *testing.T) {
	a := Assembler{ReportsDir: t.TempDir()}

	_, err := a.Create("claude", Financial, "first version")
	require.NoError(t, err)

	path, err := a.Create("claude", Financial, "second version")
	require.NoError(t, err)

	got, err := Text(path)
	require.NoError(t, err)
	assert.Equal(t, "second version", got)
}

func TestCreate_UnknownType(t *testing.T) {
	a := Assembler{ReportsDir: t.TempDir()}

	_, err := a.Create("openai", Type("summary"), "text")
	assert.Error(t, err)
}

func TestText_MissingFile(t *testing.T) {
	_, err := Text(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	a := Assembler{ReportsDir: t.TempDir()}

	docPath, err := a.Create("openai", Technical, "Line one.\n\nLine two.")
	require.NoError(t, err)

	pdfPath, err := RenderPDF(docPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(a.ReportsDir, "openai", "technical_report.pdf"), pdfPath)

	info, err := os.Stat(pdfPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderPDF_MissingDocument(t *testing.T) {
	_, err := RenderPDF(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestPlainParagraphs(t *testing.T) {
	paras := plainParagraphs("# Title\n\nBody line.\n\n## Sub\nMore.\n")
	assert.Equal(t, []string{"Title", "Body line.", "Sub", "More."}, paras)
}
