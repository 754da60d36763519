package model

// Language labels assigned by the character-ratio heuristic. These are
// script-dominance labels, not true language identification.
const (
	LangKorean  = "korean"
	LangEnglish = "english"
	LangMixed   = "mixed"
	LangUnknown = "unknown"
)

// LanguageInfo is the result of character-class ratio analysis on a text
// block. When the text has no non-whitespace characters, PrimaryLanguage is
// "unknown", Confidence is 0 and the ratio fields are meaningless (all
// zero, HasRatios false).
type LanguageInfo struct {
	PrimaryLanguage string  `json:"primary_language"`
	Confidence      float64 `json:"confidence"`
	KoreanRatio     float64 `json:"korean_ratio"`
	EnglishRatio    float64 `json:"english_ratio"`
	NumberRatio     float64 `json:"number_ratio"`

	// HasRatios distinguishes "ratios computed as zero" from
	// "text was empty, ratios never computed".
	HasRatios bool `json:"has_ratios"`
}

// TextStructure is the per-scope structural classification of text.
// Every non-blank input line lands in exactly one of titles, lists, a
// table row, or a paragraph. Tables hold rows, each row an ordered
// sequence of column strings.
type TextStructure struct {
	Titles     []string          `json:"titles"`
	Paragraphs []string          `json:"paragraphs"`
	Lists      []string          `json:"lists"`
	Tables     [][]string        `json:"tables"`
	Entities   []ExtractedEntity `json:"entities"`
}

// ElementCount returns the total number of classified elements
// (titles + paragraphs + lists + table rows).
func (s TextStructure) ElementCount() int {
	return len(s.Titles) + len(s.Paragraphs) + len(s.Lists) + len(s.Tables)
}
