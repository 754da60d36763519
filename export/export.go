// Package export writes processed document results in several output
// formats: json, csv, txt, xlsx and html.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kyungmin-lee/docstruct/model"
)

// ErrUnsupportedFormat is returned for format names outside Formats().
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Document bundles everything an exporter needs.
type Document struct {
	Name    string                `json:"document"`
	Pages   []model.PageResult    `json:"pages"`
	Summary model.DocumentSummary `json:"summary"`
}

// Formats lists the supported format names in presentation order.
func Formats() []string {
	return []string{"json", "csv", "txt", "xlsx", "html"}
}

// Export writes doc to w in the named format.
func Export(w io.Writer, format string, doc Document) error {
	switch strings.ToLower(format) {
	case "json":
		return exportJSON(w, doc)
	case "csv":
		return exportCSV(w, doc)
	case "txt":
		return exportTXT(w, doc)
	case "xlsx":
		return exportXLSX(w, doc)
	case "html":
		return exportHTML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func exportJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// csvHeader is the per-page column layout shared by csv and xlsx output.
var csvHeader = []string{
	"page", "language", "characters", "words", "sentences",
	"titles", "lists", "table_rows", "entities", "preview",
}

// previewRunes caps the text preview column length.
const previewRunes = 50

func pageRow(p model.PageResult) []string {
	return []string{
		strconv.Itoa(p.PageNumber),
		p.LanguageInfo.PrimaryLanguage,
		strconv.Itoa(p.Statistics.CharacterCount),
		strconv.Itoa(p.Statistics.WordCount),
		strconv.Itoa(p.Statistics.SentenceCount),
		strconv.Itoa(len(p.Structure.Titles)),
		strconv.Itoa(len(p.Structure.Lists)),
		strconv.Itoa(len(p.Structure.Tables)),
		strconv.Itoa(len(p.Structure.Entities)),
		preview(p.CorrectedText),
	}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}

func exportCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range doc.Pages {
		if err := cw.Write(pageRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportTXT(w io.Writer, doc Document) error {
	for i, p := range doc.Pages {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "=== page %d ===\n%s\n", p.PageNumber, p.CorrectedText); err != nil {
			return err
		}
	}
	return nil
}

func exportXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	const pagesSheet = "Pages"
	f.SetSheetName("Sheet1", pagesSheet)

	if err := f.SetSheetRow(pagesSheet, "A1", &csvHeader); err != nil {
		return err
	}
	for i, p := range doc.Pages {
		row := pageRow(p)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(pagesSheet, cell, &row); err != nil {
			return err
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	summaryRows := [][]string{
		{"total_pages", strconv.Itoa(doc.Summary.Totals.TotalPages)},
		{"total_characters", strconv.Itoa(doc.Summary.Totals.TotalCharacters)},
		{"total_words", strconv.Itoa(doc.Summary.Totals.TotalWords)},
		{"total_sentences", strconv.Itoa(doc.Summary.Totals.TotalSentences)},
		{"total_paragraphs", strconv.Itoa(doc.Summary.Totals.TotalParagraphs)},
		{"title_count", strconv.Itoa(doc.Summary.Overview.TitleCount)},
		{"list_count", strconv.Itoa(doc.Summary.Overview.ListCount)},
		{"table_count", strconv.Itoa(doc.Summary.Overview.TableCount)},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	const entitySheet = "Entities"
	if _, err := f.NewSheet(entitySheet); err != nil {
		return err
	}
	header := []string{"type", "text"}
	if err := f.SetSheetRow(entitySheet, "A1", &header); err != nil {
		return err
	}
	rowIdx := 2
	for _, entityType := range model.EntityTypes() {
		for _, text := range doc.Summary.Entities[entityType] {
			row := []string{string(entityType), text}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(entitySheet, cell, &row); err != nil {
				return err
			}
			rowIdx++
		}
	}

	_, err := f.WriteTo(w)
	return err
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
</head>
<body>
<h1>{{.Name}}</h1>
<p>pages: {{.Summary.Totals.TotalPages}}, characters: {{.Summary.Totals.TotalCharacters}}</p>
{{range .Pages}}
<section id="page-{{.PageNumber}}">
<h2>Page {{.PageNumber}} ({{.LanguageInfo.PrimaryLanguage}})</h2>
{{range .Structure.Titles}}<h3>{{.}}</h3>
{{end}}{{range .Structure.Paragraphs}}<p>{{.}}</p>
{{end}}{{if .Structure.Lists}}<ul>
{{range .Structure.Lists}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{range .Structure.Tables}}<table><tr>{{range .}}<td>{{.}}</td>{{end}}</tr></table>
{{end}}</section>
{{end}}
</body>
</html>
`))

func exportHTML(w io.Writer, doc Document) error {
	return htmlTemplate.Execute(w, doc)
}
