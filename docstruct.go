// Package docstruct turns raw OCR output into structured Korean document
// data: cleaned text, language labels, titles, lists, tables, entities and
// counting statistics.
//
// Basic usage:
//
//	p := docstruct.New()
//	page := p.ProcessPage("연락처: 02-1234-5678", 1)
//	fmt.Println(page.CorrectedText, page.LanguageInfo.PrimaryLanguage)
//
// Multi-page documents fold into a summary:
//
//	pages := p.ProcessPages(texts)
//	summary := p.Summarize(pages)
//
// The lower-level packages (normalize, textclean, language, structure,
// entity, stats, document) are also available for callers that want one
// stage of the pipeline rather than the whole thing.
package docstruct

import (
	"time"

	"github.com/kyungmin-lee/docstruct/document"
	"github.com/kyungmin-lee/docstruct/entity"
	"github.com/kyungmin-lee/docstruct/language"
	"github.com/kyungmin-lee/docstruct/model"
	"github.com/kyungmin-lee/docstruct/stats"
	"github.com/kyungmin-lee/docstruct/structure"
	"github.com/kyungmin-lee/docstruct/textclean"
)

// Version identifies the processing pipeline revision recorded in each
// page's metadata.
const Version = "1.0.0"

// Processor runs the full per-page pipeline: clean, correct, detect
// language, detect structure, extract entities, compute statistics.
// Construct once and reuse; safe for concurrent use.
type Processor struct {
	options    Options
	cleaner    *textclean.Cleaner
	languages  *language.Detector
	structures *structure.Detector
	entities   *entity.Extractor
}

// New creates a Processor with default options.
func New() *Processor {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Processor with custom options.
func NewWithOptions(options Options) *Processor {
	return &Processor{
		options:    options,
		cleaner:    textclean.NewCleaner(),
		languages:  language.New(),
		structures: structure.New(),
		entities:   entity.New(),
	}
}

// ProcessPage runs the pipeline on one page of text. pageNumber is
// 1-based and is stamped onto the result and its entities. Cleaning runs
// before correction; language, structure, entities and statistics are all
// computed from the corrected text. When postprocessing is disabled, the
// cleaned and corrected fields carry the raw text unchanged. Empty input
// still produces a result, with "unknown" language and zero statistics.
func (p *Processor) ProcessPage(text string, pageNumber int) model.PageResult {
	cleaned, corrected := text, text
	if !p.options.DisablePostprocessing {
		cleaned = p.cleaner.CleanText(text)
		corrected = p.cleaner.CorrectCommonErrors(cleaned)
	}

	result := model.PageResult{
		PageNumber:    pageNumber,
		OriginalText:  text,
		CleanedText:   cleaned,
		CorrectedText: corrected,
		LanguageInfo:  p.languages.Detect(corrected),
		Structure:     p.structures.Detect(corrected),
		Statistics:    stats.Calculate(corrected),
		Metadata: model.ProcessingMetadata{
			ProcessedAt:      time.Now(),
			ProcessorVersion: Version,
		},
	}
	result.Structure.Entities = p.entities.Extract(corrected, pageNumber)

	return result
}

// ProcessPages runs ProcessPage over each text in order, numbering pages
// from 1.
func (p *Processor) ProcessPages(texts []string) []model.PageResult {
	if len(texts) == 0 {
		return nil
	}
	pages := make([]model.PageResult, len(texts))
	for i, text := range texts {
		pages[i] = p.ProcessPage(text, i+1)
	}
	return pages
}

// Summarize folds page results into a document-level summary.
func (p *Processor) Summarize(pages []model.PageResult) model.DocumentSummary {
	return document.Summarize(pages)
}

// MergeRegionTexts collapses near-duplicate region texts using the
// processor's merge threshold. Useful before ProcessPage when several OCR
// regions cover overlapping areas of the same page.
func (p *Processor) MergeRegionTexts(texts []string) []string {
	return stats.MergeRegions(texts, p.options.MergeThreshold)
}
