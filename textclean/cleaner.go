// Package textclean normalizes and corrects OCR-extracted text.
//
// Cleaning and correction are table-driven: a Cleaner compiles its pattern
// tables once at construction and never mutates them afterward, so a single
// Cleaner can be shared by any number of concurrent callers. Both entry
// points are pure and total: no input causes an error, and the worst case
// returns the input largely unchanged.
package textclean

import (
	"regexp"
	"strings"
)

// Repeat-run collapse thresholds. CleanText removes longer runs (5+) as
// part of noise removal; CorrectCommonErrors applies a tighter threshold
// (4+) independently. The two thresholds are intentionally distinct.
const (
	cleanRepeatRun   = 5
	correctRepeatRun = 4
)

// substitution is one ordered replacement rule. Rules run in table order;
// a map would randomize application order between runs.
type substitution struct {
	from, to string
}

// charSubstitutions maps characters OCR commonly confuses: free-standing
// jamo mistaken for Latin look-alikes, and Latin letters mistaken for
// digits.
var charSubstitutions = []substitution{
	{"ㅇ", "o"}, {"ㅁ", "m"}, {"ㅂ", "b"}, {"ㅍ", "p"},
	{"ㅌ", "t"}, {"ㅋ", "k"}, {"ㅈ", "j"}, {"ㅎ", "h"},
	{"ㅗ", "o"}, {"ㅏ", "a"}, {"ㅓ", "e"}, {"ㅜ", "u"}, {"ㅣ", "i"},
	{"O", "0"}, {"l", "1"}, {"I", "1"}, {"S", "5"},
}

// wordSubstitutions canonicalizes colloquial or foreign terms.
var wordSubstitutions = []substitution{
	{"휴대폰", "휴대전화"},
	{"핸드폰", "휴대전화"},
	{"E-mail", "이메일"},
	{"e-mail", "이메일"},
	{"Tel", "전화"},
	{"Fax", "팩스"},
}

// unitWords are the unit terms that must follow a number without a space.
const unitWords = "원|달러|킬로|미터|센티|그램"

// Cleaner holds the compiled pattern tables for cleaning and correction.
type Cleaner struct {
	whitespaceRun *regexp.Regexp
	blankLines    *regexp.Regexp
	noiseChars    *regexp.Regexp
	strayJamo     *regexp.Regexp

	spaceBeforePunct *regexp.Regexp
	missingSpace     *regexp.Regexp
	numberUnitGap    *regexp.Regexp
}

// NewCleaner compiles the fixed pattern tables.
func NewCleaner() *Cleaner {
	return &Cleaner{
		whitespaceRun: regexp.MustCompile(`\s+`),
		blankLines:    regexp.MustCompile(`\n\s*\n`),
		// Anything outside word characters, whitespace, Hangul syllables
		// and basic punctuation is noise.
		noiseChars: regexp.MustCompile(`[^\w\s가-힣.,!?;:()\[\]{}"'-]`),
		// Free-standing compatibility jamo: an artifact of broken syllable
		// recognition, never legitimate document text.
		strayJamo: regexp.MustCompile(`[ㄱ-ㅎㅏ-ㅣ]`),

		spaceBeforePunct: regexp.MustCompile(`\s+([,.!?;:])`),
		missingSpace:     regexp.MustCompile(`([,.!?;:])\s*([가-힣A-Za-z])`),
		numberUnitGap:    regexp.MustCompile(`(\d)\s+(` + unitWords + `)`),
	}
}

// CleanText performs basic text cleanup: whitespace normalization,
// blank-line collapsing, noise removal, then the character and word
// substitution tables, in that fixed order. Empty input returns ""
// immediately.
func (c *Cleaner) CleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := c.whitespaceRun.ReplaceAllString(text, " ")
	cleaned = strings.TrimSpace(cleaned)

	cleaned = c.blankLines.ReplaceAllString(cleaned, "\n")

	cleaned = c.noiseChars.ReplaceAllString(cleaned, "")
	cleaned = collapseRuns(cleaned, cleanRepeatRun)
	cleaned = c.strayJamo.ReplaceAllString(cleaned, "")

	for _, s := range charSubstitutions {
		cleaned = strings.ReplaceAll(cleaned, s.from, s.to)
	}
	for _, s := range wordSubstitutions {
		cleaned = strings.ReplaceAll(cleaned, s.from, s.to)
	}

	return strings.TrimSpace(cleaned)
}

// CorrectCommonErrors fixes recurring OCR mistakes: repeated-character
// runs (4+, independent of CleanText's 5+ rule), stray jamo, spacing
// around punctuation, number/unit spacing, and the word substitution
// table.
func (c *Cleaner) CorrectCommonErrors(text string) string {
	if text == "" {
		return ""
	}

	corrected := collapseRuns(text, correctRepeatRun)
	corrected = c.strayJamo.ReplaceAllString(corrected, "")

	corrected = c.spaceBeforePunct.ReplaceAllString(corrected, "$1")
	corrected = c.missingSpace.ReplaceAllString(corrected, "$1 $2")

	corrected = c.numberUnitGap.ReplaceAllString(corrected, "$1$2")

	for _, s := range wordSubstitutions {
		corrected = strings.ReplaceAll(corrected, s.from, s.to)
	}

	return corrected
}

// collapseRuns reduces any run of at least minRun identical characters to
// a single character. Newlines are exempt: a run of line breaks is layout,
// not an OCR misread. Implemented by hand because RE2 has no
// backreferences.
func collapseRuns(s string, minRun int) string {
	runes := []rune(s)
	if len(runes) < minRun {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		runLen := j - i
		if runLen >= minRun && runes[i] != '\n' {
			b.WriteRune(runes[i])
		} else {
			for k := i; k < j; k++ {
				b.WriteRune(runes[k])
			}
		}
		i = j
	}
	return b.String()
}
