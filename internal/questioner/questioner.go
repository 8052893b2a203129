// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package questioner parses the Markdown interview script into titled
// question sections and re-buckets them into analysis requirement groups.
package questioner

import (
	"fmt"
	"os"
	"strings"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// ExtractContent parses the interview script at path. The only error case is
// a missing or unreadable file; structural oddities degrade instead. A marker
// paragraph (heading prefix or bold first run) opens a section with the
// marker text as title; every following non-marker paragraph becomes a
// question of that section until the next marker or end of document.
// Paragraphs before any marker accumulate into the preamble. A document with
// no markers at all yields zero sections and all text in the preamble.
func ExtractContent(path string) (*types.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading interview script %s: %w", path, err)
	}

	return parse(string(data)), nil
}

// parse runs the single linear pass over the document's paragraphs.
// No backtracking.
func parse(document string) *types.Content {
	content := &types.Content{}

	var raw []string
	var preamble []string
	currentTitle := ""
	sectionOpen := false
	var questions []string

	flush := func() {
		if sectionOpen {
			content.Sections = append(content.Sections, types.Section{
				Title:     currentTitle,
				Questions: questions,
			})
		}
		questions = nil
	}

	for _, para := range paragraphs(document) {
		raw = append(raw, para)

		if isSectionMarker(para) {
			flush()
			currentTitle = markerTitle(para)
			sectionOpen = true
			continue
		}

		if sectionOpen {
			questions = append(questions, para)
		} else {
			preamble = append(preamble, para)
		}
	}
	flush()

	content.RawText = strings.Join(raw, "\n")
	content.Preamble = strings.Join(preamble, "\n")
	return content
}

// paragraphs splits the document into blank-line-delimited blocks. Lines
// within a block are trimmed and joined with single spaces, so a question
// wrapped across lines stays one paragraph and inline emphasis on a
// continuation line cannot open a section.
func paragraphs(document string) []string {
	var blocks []string
	var lines []string
	emit := func() {
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, " "))
		}
		lines = nil
	}
	for _, line := range strings.Split(document, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			emit()
			continue
		}
		lines = append(lines, text)
	}
	emit()
	return blocks
}

// isSectionMarker reports whether a paragraph opens a section: a Markdown
// heading of any level, or a paragraph whose first text run is bold.
func isSectionMarker(text string) bool {
	if headingLevel(text) > 0 {
		return true
	}
	return strings.HasPrefix(text, "**") || strings.HasPrefix(text, "__")
}

// headingLevel returns the number of leading # characters followed by a
// space, or 0 for a non-heading paragraph.
func headingLevel(text string) int {
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(text) || text[level] != ' ' {
		return 0
	}
	return level
}

// markerTitle strips the heading prefix or emphasis markers from a section
// marker, leaving the title text.
func markerTitle(text string) string {
	if headingLevel(text) > 0 {
		title := strings.TrimSpace(strings.TrimLeft(text, "#"))
		// Closed ATX headings carry a trailing hash run after a space.
		if rest := strings.TrimRight(title, "#"); rest != title && strings.HasSuffix(rest, " ") {
			title = strings.TrimSpace(rest)
		}
		return title
	}
	title := strings.ReplaceAll(text, "**", "")
	title = strings.ReplaceAll(title, "__", "")
	return strings.TrimSpace(title)
}

// SectionTitles returns all section titles in document order.
func SectionTitles(content *types.Content) []string {
	titles := make([]string, 0, len(content.Sections))
	for _, sec := range content.Sections {
		titles = append(titles, sec.Title)
	}
	return titles
}

// SectionQuestions returns the questions of the section whose title matches
// case-insensitively, or nil when no section matches.
func SectionQuestions(content *types.Content, title string) []string {
	for _, sec := range content.Sections {
		if strings.EqualFold(sec.Title, title) {
			return sec.Questions
		}
	}
	return nil
}

// Summary renders a numbered overview of the document structure with question
// counts and a truncated sample question per section.
func Summary(content *types.Content) string {
	var b strings.Builder
	b.WriteString("Interview Script Structure:\n\n")

	for i, sec := range content.Sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, sec.Title)
		fmt.Fprintf(&b, "   Questions: %d\n", len(sec.Questions))
		if len(sec.Questions) > 0 {
			fmt.Fprintf(&b, "   Sample: %s\n", truncate(sec.Questions[0], 100))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
