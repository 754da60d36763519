// Package structure classifies text lines into document structure:
// titles, list items, table rows and paragraphs.
//
// Classification is line-oriented and first-match-wins in a fixed priority
// order: title patterns, then list patterns, then the table heuristic, and
// finally paragraph accumulation. Every non-blank line lands in exactly one
// bucket; a blank line flushes the paragraph buffer.
package structure

import (
	"regexp"
	"strings"

	"github.com/kyungmin-lee/docstruct/model"
)

// Config holds the pattern tables for structure detection. Patterns are
// matched in slice order; reordering them changes classification.
type Config struct {
	// TitlePatterns identify heading lines. Checked before list patterns,
	// so a numbered Korean line like "1. 소프트웨어 개발" is a title, not
	// a list item.
	TitlePatterns []*regexp.Regexp

	// ListPatterns identify list-item lines.
	ListPatterns []*regexp.Regexp

	// TableMinColumns is the minimum number of non-empty columns a
	// delimiter-split line must produce to count as a table row.
	TableMinColumns int
}

// DefaultConfig returns the fixed pattern tables.
func DefaultConfig() Config {
	return Config{
		TitlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^[A-Z\s]{3,30}$`),     // all-uppercase run
			regexp.MustCompile(`^제\s*\d+\s*[장절조항]`),   // 제1장, 제2절, 제3조, 제4항
			regexp.MustCompile(`^[가-힣\s]{2,20}$`),     // pure Korean line
			regexp.MustCompile(`^\d+\.\s*[가-힣A-Za-z]`), // numbered heading
		},
		ListPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^[-*•]\s+`),     // bullet markers
			regexp.MustCompile(`^\d+[.)]\s+`),   // 1. or 1)
			regexp.MustCompile(`^[가-힣]\.\s+`),   // 가. 나. 다.
			regexp.MustCompile(`^\([가-힣]\)\s+`), // (가) (나)
		},
		TableMinColumns: 2,
	}
}

// multiSpace splits table candidate lines on runs of three or more
// spaces. Tabs are handled separately and take precedence.
var multiSpace = regexp.MustCompile(`\s{3,}`)

// Detector classifies text structure using compiled pattern tables built
// once at construction; safe for concurrent use.
type Detector struct {
	config Config
}

// New creates a structure detector with the default pattern tables.
func New() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewWithConfig creates a structure detector with custom tables.
func NewWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect classifies each line of text and returns the assembled structure.
// The Entities field is left empty; entity extraction is a separate pass
// whose output the caller attaches to the same scope.
func (d *Detector) Detect(text string) model.TextStructure {
	var s model.TextStructure
	var paragraph []string

	flush := func() {
		if len(paragraph) > 0 {
			s.Paragraphs = append(s.Paragraphs, strings.Join(paragraph, " "))
			paragraph = paragraph[:0]
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		if d.matchAny(d.config.TitlePatterns, line) {
			s.Titles = append(s.Titles, line)
			continue
		}

		if d.matchAny(d.config.ListPatterns, line) {
			s.Lists = append(s.Lists, line)
			continue
		}

		if columns, ok := d.tableColumns(line); ok {
			s.Tables = append(s.Tables, columns)
			continue
		}

		paragraph = append(paragraph, line)
	}
	flush()

	return s
}

func (d *Detector) matchAny(patterns []*regexp.Regexp, line string) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// tableColumns applies the table heuristic: a line containing a tab, or a
// run of three or more spaces, split on that delimiter and trimmed. The
// line is a table row only if enough non-empty columns remain; otherwise
// it falls through to paragraph accumulation.
func (d *Detector) tableColumns(line string) ([]string, bool) {
	var parts []string
	switch {
	case strings.Contains(line, "\t"):
		parts = strings.Split(line, "\t")
	case multiSpace.MatchString(line):
		parts = multiSpace.Split(line, -1)
	default:
		return nil, false
	}

	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			columns = append(columns, trimmed)
		}
	}

	if len(columns) < d.config.TableMinColumns {
		return nil, false
	}
	return columns, true
}
