package model

import "time"

// TextStatistics holds counting statistics for one block of text.
// Averages are rounded to two decimals and guarded against division by
// zero: a zero denominator yields a zero average, never an error.
type TextStatistics struct {
	CharacterCount    int     `json:"character_count"`
	WordCount         int     `json:"word_count"`
	LineCount         int     `json:"line_count"`
	SentenceCount     int     `json:"sentence_count"`
	ParagraphCount    int     `json:"paragraph_count"`
	KoreanCharacters  int     `json:"korean_characters"`
	EnglishCharacters int     `json:"english_characters"`
	NumberCharacters  int     `json:"number_characters"`
	AvgWordsPerSent   float64 `json:"avg_words_per_sentence"`
	AvgCharsPerWord   float64 `json:"avg_chars_per_word"`
}

// ProcessingMetadata records when a page was processed and by which
// processor version.
type ProcessingMetadata struct {
	ProcessedAt      time.Time `json:"processed_at"`
	ProcessorVersion string    `json:"processor_version"`
}

// PageResult bundles everything the pipeline produced for one page.
// Structure is a nested value, not a reference: each PageResult owns its
// structure. Created once per page, immutable after creation.
type PageResult struct {
	PageNumber    int                `json:"page_number"`
	OriginalText  string             `json:"original_text"`
	CleanedText   string             `json:"cleaned_text"`
	CorrectedText string             `json:"corrected_text"`
	LanguageInfo  LanguageInfo       `json:"language_info"`
	Structure     TextStructure      `json:"structure"`
	Statistics    TextStatistics     `json:"statistics"`
	Metadata      ProcessingMetadata `json:"processing_metadata"`
}

// SummaryTotals aggregates counts across all pages of a document.
type SummaryTotals struct {
	TotalPages           int            `json:"total_pages"`
	TotalCharacters      int            `json:"total_characters"`
	TotalWords           int            `json:"total_words"`
	TotalSentences       int            `json:"total_sentences"`
	TotalParagraphs      int            `json:"total_paragraphs"`
	AverageCharsPerPage  float64        `json:"average_chars_per_page"`
	AverageWordsPerPage  float64        `json:"average_words_per_page"`
	LanguageDistribution map[string]int `json:"language_distribution"`
	GeneratedAt          time.Time      `json:"generated_at"`
}

// ContentOverview summarizes structural content across all pages.
// TitleCount is the raw pre-deduplication total; UniqueTitles is the
// deduplicated list (order not guaranteed).
type ContentOverview struct {
	TitleCount    int                `json:"title_count"`
	ListCount     int                `json:"list_count"`
	TableCount    int                `json:"table_count"`
	UniqueTitles  []string           `json:"unique_titles"`
	EntitySummary map[EntityType]int `json:"entity_summary"`
}

// DocumentSummary is the fold of all per-page results. It is derived data,
// recomputed fresh from its inputs on every call rather than maintained
// incrementally. Entities maps each entity type to its deduplicated list
// of matched texts (order not guaranteed after dedup).
type DocumentSummary struct {
	Totals   SummaryTotals           `json:"document_summary"`
	Overview ContentOverview         `json:"content_overview"`
	Entities map[EntityType][]string `json:"extracted_entities"`
}

// IsEmpty reports whether the summary was produced from zero pages.
func (s DocumentSummary) IsEmpty() bool {
	return s.Totals.TotalPages == 0
}
