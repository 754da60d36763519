// Package stats computes text statistics and merges near-duplicate text
// regions.
package stats

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kyungmin-lee/docstruct/language"
	"github.com/kyungmin-lee/docstruct/model"
)

// sentenceEnders counts sentence terminators: Latin/Korean full stops,
// question and exclamation marks, and the Ethiopic full stop (።), which
// OCR occasionally produces for degraded Korean punctuation.
var sentenceEnders = regexp.MustCompile(`[.!?።]`)

// paragraphBreak splits text into blank-line-delimited segments.
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Calculate computes counting statistics for one block of text. Empty
// input returns the zero value; averages with zero denominators are 0,
// never an error.
func Calculate(text string) model.TextStatistics {
	if text == "" {
		return model.TextStatistics{}
	}

	var s model.TextStatistics
	s.CharacterCount = utf8.RuneCountInString(text)
	s.WordCount = len(strings.Fields(text))
	s.LineCount = len(strings.Split(text, "\n"))
	s.SentenceCount = len(sentenceEnders.FindAllString(text, -1))

	for _, p := range paragraphBreak.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(p) != "" {
			s.ParagraphCount++
		}
	}

	s.KoreanCharacters, s.EnglishCharacters, s.NumberCharacters = language.CountClasses(text)

	if s.SentenceCount > 0 {
		s.AvgWordsPerSent = round2(float64(s.WordCount) / float64(s.SentenceCount))
	}
	if s.WordCount > 0 {
		s.AvgCharsPerWord = round2(float64(s.CharacterCount) / float64(s.WordCount))
	}

	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// JaccardSimilarity computes word-set similarity between two texts:
// intersection over union of their lowercased whitespace-split tokens.
// Two empty sets are identical (1.0); exactly one empty set shares
// nothing (0.0).
func JaccardSimilarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)

	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 1.0
	}
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}

// MergeRegions clusters near-duplicate region texts with a greedy single
// pass: each unconsumed region anchors a new group, and every later
// unconsumed region whose similarity to the anchor meets threshold joins
// it. Multi-member groups emit a single space-joined string in grouping
// order; single-member groups emit verbatim.
//
// Clustering is deliberately non-transitive: members are compared to the
// group's anchor only, never to each other, so results depend on the
// original region order. Callers relying on the looser grouping this
// produces should not expect transitive-closure behavior.
func MergeRegions(texts []string, threshold float64) []string {
	if len(texts) == 0 {
		return nil
	}

	merged := make([]string, 0, len(texts))
	consumed := make([]bool, len(texts))

	for i, anchor := range texts {
		if consumed[i] {
			continue
		}
		consumed[i] = true

		group := []string{anchor}
		for j := i + 1; j < len(texts); j++ {
			if consumed[j] {
				continue
			}
			if JaccardSimilarity(anchor, texts[j]) >= threshold {
				group = append(group, texts[j])
				consumed[j] = true
			}
		}

		if len(group) == 1 {
			merged = append(merged, group[0])
		} else {
			merged = append(merged, strings.Join(group, " "))
		}
	}

	return merged
}
