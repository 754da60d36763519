// Package document folds per-page pipeline results into a whole-document
// summary.
package document

import (
	"math"
	"time"

	"github.com/kyungmin-lee/docstruct/language"
	"github.com/kyungmin-lee/docstruct/model"
)

// Summarize aggregates pages into a DocumentSummary. The summary is
// recomputed from scratch on every call; zero pages yield the zero value.
func Summarize(pages []model.PageResult) model.DocumentSummary {
	if len(pages) == 0 {
		return model.DocumentSummary{}
	}

	summary := model.DocumentSummary{
		Entities: make(map[model.EntityType][]string),
	}
	summary.Overview.EntitySummary = make(map[model.EntityType]int)

	labels := make([]string, 0, len(pages))
	titleSeen := make(map[string]bool)
	entitySeen := make(map[model.EntityType]map[string]bool)

	for _, page := range pages {
		summary.Totals.TotalCharacters += page.Statistics.CharacterCount
		summary.Totals.TotalWords += page.Statistics.WordCount
		summary.Totals.TotalSentences += page.Statistics.SentenceCount
		summary.Totals.TotalParagraphs += page.Statistics.ParagraphCount
		labels = append(labels, page.LanguageInfo.PrimaryLanguage)

		summary.Overview.TitleCount += len(page.Structure.Titles)
		summary.Overview.ListCount += len(page.Structure.Lists)
		summary.Overview.TableCount += len(page.Structure.Tables)

		for _, title := range page.Structure.Titles {
			if !titleSeen[title] {
				titleSeen[title] = true
				summary.Overview.UniqueTitles = append(summary.Overview.UniqueTitles, title)
			}
		}

		for _, ent := range page.Structure.Entities {
			seen := entitySeen[ent.Type]
			if seen == nil {
				seen = make(map[string]bool)
				entitySeen[ent.Type] = seen
			}
			if !seen[ent.Text] {
				seen[ent.Text] = true
				summary.Entities[ent.Type] = append(summary.Entities[ent.Type], ent.Text)
			}
		}
	}

	summary.Totals.TotalPages = len(pages)
	summary.Totals.AverageCharsPerPage = round2(float64(summary.Totals.TotalCharacters) / float64(len(pages)))
	summary.Totals.AverageWordsPerPage = round2(float64(summary.Totals.TotalWords) / float64(len(pages)))
	summary.Totals.LanguageDistribution = language.Distribution(labels)
	summary.Totals.GeneratedAt = time.Now()

	for entityType, texts := range summary.Entities {
		summary.Overview.EntitySummary[entityType] = len(texts)
	}

	return summary
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
