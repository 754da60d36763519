package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/net/html"

	"github.com/kyungmin-lee/docstruct/model"
)

func sampleDocument() Document {
	return Document{
		Name: "소개서",
		Pages: []model.PageResult{
			{
				PageNumber:    1,
				CorrectedText: "회사 소개 첫 페이지",
				LanguageInfo:  model.LanguageInfo{PrimaryLanguage: model.LangKorean},
				Structure: model.TextStructure{
					Titles:     []string{"회사 소개"},
					Paragraphs: []string{"첫 페이지 본문입니다"},
					Lists:      []string{"- 항목 하나"},
					Tables:     [][]string{{"이름", "값"}},
				},
				Statistics: model.TextStatistics{CharacterCount: 10, WordCount: 4, SentenceCount: 1},
			},
			{
				PageNumber:    2,
				CorrectedText: "둘째 페이지",
				LanguageInfo:  model.LanguageInfo{PrimaryLanguage: model.LangKorean},
			},
		},
		Summary: model.DocumentSummary{
			Totals: model.SummaryTotals{TotalPages: 2, TotalCharacters: 15},
			Entities: map[model.EntityType][]string{
				model.EntityPhone: {"02-1234-5678"},
				model.EntityEmail: {"a@b.co", "c@d.org"},
			},
		},
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	err := Export(&bytes.Buffer{}, "pdf", sampleDocument())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormats_AllSupported(t *testing.T) {
	for _, format := range Formats() {
		if err := Export(&bytes.Buffer{}, format, sampleDocument()); err != nil {
			t.Errorf("Export(%q) failed: %v", format, err)
		}
	}
}

func TestExportJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, "json", sampleDocument()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "소개서" || len(got.Pages) != 2 {
		t.Errorf("decoded = %+v", got)
	}
	if got.Summary.Totals.TotalPages != 2 {
		t.Errorf("TotalPages = %d", got.Summary.Totals.TotalPages)
	}
}

func TestExportCSV_OneRowPerPage(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, "csv", sampleDocument()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 pages", len(records))
	}
	if records[0][0] != "page" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "1" || records[1][1] != model.LangKorean {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[1][2] != "10" {
		t.Errorf("characters column = %q, want 10", records[1][2])
	}
	if records[1][9] != "회사 소개 첫 페이지" {
		t.Errorf("preview column = %q", records[1][9])
	}
}

func TestExportTXT_PageSeparators(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, "txt", sampleDocument()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "=== page 1 ===") || !strings.Contains(out, "=== page 2 ===") {
		t.Errorf("missing page separators:\n%s", out)
	}
	if !strings.Contains(out, "회사 소개 첫 페이지") {
		t.Errorf("missing corrected text:\n%s", out)
	}
}

func TestExportXLSX_ReadBack(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, "xlsx", sampleDocument()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Pages")
	if err != nil {
		t.Fatalf("GetRows(Pages): %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Pages rows = %d, want header + 2", len(rows))
	}
	if rows[1][0] != "1" {
		t.Errorf("first page row = %v", rows[1])
	}

	summaryRows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("GetRows(Summary): %v", err)
	}
	if len(summaryRows) == 0 || summaryRows[0][0] != "total_pages" || summaryRows[0][1] != "2" {
		t.Errorf("summary rows = %v", summaryRows)
	}

	entityRows, err := f.GetRows("Entities")
	if err != nil {
		t.Fatalf("GetRows(Entities): %v", err)
	}
	// Header plus one phone and two emails.
	if len(entityRows) != 4 {
		t.Errorf("Entities rows = %v", entityRows)
	}
}

func TestExportHTML_ParsesAndContainsStructure(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, "html", sampleDocument()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	root, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	counts := map[string]int{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if counts["section"] != 2 {
		t.Errorf("sections = %d, want one per page", counts["section"])
	}
	if counts["h3"] != 1 {
		t.Errorf("h3 = %d, want one title", counts["h3"])
	}
	if counts["li"] != 1 {
		t.Errorf("li = %d, want one list item", counts["li"])
	}
	if counts["table"] != 1 {
		t.Errorf("table = %d, want one row table", counts["table"])
	}
}
