// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

// RenderPDF produces the derived PDF rendering of a written report document
// at the same logical location with a .pdf extension. The document's plain
// text is re-extracted and laid out as one paragraph block per
// newline-delimited chunk, with a fixed title block prepended.
func RenderPDF(docPath string) (string, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return "", fmt.Errorf("reading report %s: %w", docPath, err)
	}

	pdfPath := strings.TrimSuffix(docPath, ".md") + ".pdf"

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Project Report"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	for _, para := range plainParagraphs(string(data)) {
		pdf.MultiCell(0, 5, tr(para), "", "L", false)
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return "", fmt.Errorf("writing pdf %s: %w", pdfPath, err)
	}

	return pdfPath, nil
}

// plainParagraphs strips the document to its non-blank lines, with Markdown
// heading prefixes removed.
func plainParagraphs(content string) []string {
	var paras []string
	for _, line := range strings.Split(content, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		text = strings.TrimSpace(strings.TrimLeft(text, "#"))
		if text != "" {
			paras = append(paras, text)
		}
	}
	return paras
}
