// Package entity extracts typed entities (emails, phone numbers, dates,
// amounts and Korean administrative identifiers) from text using a fixed
// battery of regular expressions.
//
// Extraction runs one pass per entity type, in the catalog's fixed order,
// collecting all non-overlapping matches of that type left to right.
// Matches of different types are not deduplicated against each other: a
// span that is both a URL and contains an email yields both entities.
package entity

import (
	"regexp"
	"unicode/utf8"

	"github.com/kyungmin-lee/docstruct/model"
)

// typePattern binds one catalog entry to its compiled pattern. Slice order
// is the extraction pass order.
type typePattern struct {
	entityType model.EntityType
	pattern    *regexp.Regexp
}

// Extractor holds the compiled entity patterns, built once and read-only
// afterward; safe for concurrent use.
type Extractor struct {
	patterns []typePattern
}

// New compiles the fixed entity pattern battery.
func New() *Extractor {
	return &Extractor{
		patterns: []typePattern{
			{model.EntityEmail, regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
			{model.EntityPhone, regexp.MustCompile(`(?:\d{2,3}[-\s]?)?\d{3,4}[-\s]?\d{4}`)},
			{model.EntityURL, regexp.MustCompile(`https?://(?:[-\w.])+(?:[:\d]+)?(?:/(?:[\w/_.])*(?:\?(?:[\w&=%.])*)?(?:#(?:[\w.])*)?)?`)},
			{model.EntityDateKorean, regexp.MustCompile(`\d{4}년\s*\d{1,2}월\s*\d{1,2}일`)},
			{model.EntityDateNumeric, regexp.MustCompile(`\d{4}[-/.]\d{1,2}[-/.]\d{1,2}`)},
			{model.EntityTime, regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AP]M)?`)},
			{model.EntityCurrency, regexp.MustCompile(`[₩$¥€][\d,]+(?:\.\d{2})?|\d{1,3}(?:,\d{3})*원`)},
			{model.EntityPostcode, regexp.MustCompile(`\d{5}(?:-\d{4})?`)},
			{model.EntityIDNumber, regexp.MustCompile(`\d{6}-[1-4]\d{6}`)},
			{model.EntityBusinessNumber, regexp.MustCompile(`\d{3}-\d{2}-\d{5}`)},
		},
	}
}

// Extract returns all entities found in text, attributed to pageNumber
// (1-based). Positions are (start, end) rune offsets into text; confidence
// is always 1.0 because a regex match is exact-or-nothing.
func (e *Extractor) Extract(text string, pageNumber int) []model.ExtractedEntity {
	if text == "" {
		return nil
	}

	var entities []model.ExtractedEntity
	for _, tp := range e.patterns {
		for _, loc := range tp.pattern.FindAllStringIndex(text, -1) {
			entities = append(entities, model.ExtractedEntity{
				Text:       text[loc[0]:loc[1]],
				Type:       tp.entityType,
				Confidence: 1.0,
				Position:   runeSpan(text, loc[0], loc[1]),
				PageNumber: pageNumber,
			})
		}
	}
	return entities
}

// runeSpan converts byte offsets from the regexp engine into the rune
// offsets the document model promises.
func runeSpan(text string, startByte, endByte int) [2]int {
	start := utf8.RuneCountInString(text[:startByte])
	return [2]int{start, start + utf8.RuneCountInString(text[startByte:endByte])}
}
