// Package language assigns a primary-language label to a text block by
// character-class ratio analysis. This is a script-dominance heuristic,
// not a language-identification model: it counts Hangul syllables, Latin
// letters and digits, and labels the block by which class dominates.
package language

import (
	"strings"
	"unicode"

	"github.com/kyungmin-lee/docstruct/model"
)

// dominanceThreshold is the ratio above which a single script is declared
// the primary language. Below it for both scripts, the block is "mixed".
const dominanceThreshold = 0.3

// Detector performs character-ratio language detection. The zero value is
// ready to use; New exists for symmetry with the other detectors.
type Detector struct{}

// New returns a language Detector.
func New() *Detector {
	return &Detector{}
}

// Detect analyzes text and returns the primary-language label with its
// confidence and the underlying character-class ratios. Text with no
// non-whitespace characters yields "unknown" with zero confidence and no
// ratios.
func (d *Detector) Detect(text string) model.LanguageInfo {
	var korean, english, number, total int

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		switch {
		case isHangulSyllable(r):
			korean++
		case isLatinLetter(r):
			english++
		case r >= '0' && r <= '9':
			number++
		}
	}

	if total == 0 {
		return model.LanguageInfo{PrimaryLanguage: model.LangUnknown, Confidence: 0}
	}

	info := model.LanguageInfo{
		KoreanRatio:  float64(korean) / float64(total),
		EnglishRatio: float64(english) / float64(total),
		NumberRatio:  float64(number) / float64(total),
		HasRatios:    true,
	}

	// Decision order matters: Korean dominance is checked first, so a
	// text above threshold in both scripts is labeled Korean.
	switch {
	case info.KoreanRatio > dominanceThreshold:
		info.PrimaryLanguage = model.LangKorean
		info.Confidence = info.KoreanRatio
	case info.EnglishRatio > dominanceThreshold:
		info.PrimaryLanguage = model.LangEnglish
		info.Confidence = info.EnglishRatio
	default:
		info.PrimaryLanguage = model.LangMixed
		info.Confidence = max(info.KoreanRatio, info.EnglishRatio)
	}

	return info
}

// CountClasses returns the per-class character counts used by both
// detection and text statistics: Hangul syllables, Latin letters, digits.
func CountClasses(text string) (korean, english, number int) {
	for _, r := range text {
		switch {
		case isHangulSyllable(r):
			korean++
		case isLatinLetter(r):
			english++
		case r >= '0' && r <= '9':
			number++
		}
	}
	return korean, english, number
}

// isHangulSyllable reports whether r is a precomposed Hangul syllable
// (가-힣). Free-standing jamo do not count: they are OCR noise, not
// Korean prose.
func isHangulSyllable(r rune) bool {
	return r >= '가' && r <= '힣'
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// NonWhitespaceLength counts the characters that remain after removing
// all whitespace, the denominator for ratio computation.
func NonWhitespaceLength(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// Distribution tallies primary-language labels across blocks, for
// document-level language distribution.
func Distribution(labels []string) map[string]int {
	dist := make(map[string]int, 4)
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			continue
		}
		dist[l]++
	}
	return dist
}
