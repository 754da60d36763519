package structure

import (
	"reflect"
	"testing"
)

func TestDetect_Empty(t *testing.T) {
	d := New()

	s := d.Detect("")
	if s.ElementCount() != 0 {
		t.Errorf("Detect(\"\") produced %d elements, want 0", s.ElementCount())
	}
}

func TestDetect_Titles(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		line string
	}{
		{"all uppercase", "COMPANY OVERVIEW"},
		{"article numbering", "제1장 총칙"},
		{"pure korean", "회사 소개서"},
		{"numbered korean heading", "1. 소프트웨어 개발"},
		{"numbered latin heading", "2. Data Analysis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := d.Detect(tt.line)
			if len(s.Titles) != 1 || s.Titles[0] != tt.line {
				t.Errorf("Detect(%q).Titles = %v, want [%q]", tt.line, s.Titles, tt.line)
			}
			if len(s.Lists) != 0 {
				t.Errorf("Detect(%q).Lists = %v, want empty (titles are checked first)", tt.line, s.Lists)
			}
		})
	}
}

func TestDetect_TitleBeatsListForNumberedKorean(t *testing.T) {
	// "1. 소프트웨어 개발" matches both the digit-dot title pattern and
	// the numbered-list pattern; title patterns run first.
	d := New()

	s := d.Detect("1. 소프트웨어 개발")
	if len(s.Titles) != 1 {
		t.Fatalf("Titles = %v, want 1 title", s.Titles)
	}
	if len(s.Lists) != 0 {
		t.Errorf("Lists = %v, want empty", s.Lists)
	}
}

func TestDetect_Lists(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		line string
	}{
		{"dash bullet", "- 전화번호 기재"},
		{"asterisk bullet", "* note the asterisk entry here"},
		{"numbered with parenthesis", "3) 항목입니다만 스물자넘게 길어진 줄"},
		{"korean ordinal", "가. 첫 번째 항목으로 길게 작성된 줄"},
		{"parenthesized korean ordinal", "(나) 두 번째 항목으로 길게 작성된 줄"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := d.Detect(tt.line)
			if len(s.Lists) != 1 || s.Lists[0] != tt.line {
				t.Errorf("Detect(%q).Lists = %v, want [%q]", tt.line, s.Lists, tt.line)
			}
		})
	}
}

func TestDetect_Tables(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		line string
		want []string
	}{
		// A pure-Korean tab row would match the Korean title pattern
		// first (\s covers tabs), so table rows need a digit or Latin
		// column to reach the heuristic.
		{"tab separated", "항목\t2024\t비고 1", []string{"항목", "2024", "비고 1"}},
		{"wide spaces", "department x   budget 2024   usage rate", []string{"department x", "budget 2024", "usage rate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := d.Detect(tt.line)
			if len(s.Tables) != 1 {
				t.Fatalf("Detect(%q).Tables = %v, want 1 row", tt.line, s.Tables)
			}
			if !reflect.DeepEqual(s.Tables[0], tt.want) {
				t.Errorf("row = %v, want %v", s.Tables[0], tt.want)
			}
		})
	}
}

func TestDetect_SingleColumnFallsToParagraph(t *testing.T) {
	// Wide spacing that yields only one non-empty column is not a table.
	d := New()

	line := "the quick brown fox jumped across the line   "
	s := d.Detect(line + "\t")
	if len(s.Tables) != 0 {
		t.Errorf("Tables = %v, want empty", s.Tables)
	}
	if len(s.Paragraphs) != 1 {
		t.Errorf("Paragraphs = %v, want the line as a paragraph", s.Paragraphs)
	}
}

func TestDetect_ParagraphAccumulation(t *testing.T) {
	d := New()

	text := "the first sentence of paragraph one continues here\n" +
		"and wraps onto a second physical line without a break\n" +
		"\n" +
		"paragraph two starts after the blank line and also runs long\n"

	s := d.Detect(text)
	if len(s.Paragraphs) != 2 {
		t.Fatalf("Paragraphs = %v, want 2", s.Paragraphs)
	}
	want := "the first sentence of paragraph one continues here and wraps onto a second physical line without a break"
	if s.Paragraphs[0] != want {
		t.Errorf("paragraph 0 = %q, want %q", s.Paragraphs[0], want)
	}
}

func TestDetect_TrailingParagraphFlushed(t *testing.T) {
	d := New()

	s := d.Detect("an unterminated paragraph that never sees a blank line afterwards")
	if len(s.Paragraphs) != 1 {
		t.Errorf("Paragraphs = %v, want trailing buffer flushed", s.Paragraphs)
	}
}

func TestDetect_EveryLineClassifiedOnce(t *testing.T) {
	d := New()

	text := "회사 소개서\n" +
		"\n" +
		"ABC entities incorporated was established in 2020 right here\n" +
		"- 전화번호는 별도 안내\n" +
		"항목\t2024\n" +
		"\n" +
		"closing remarks paragraph goes here at considerable length\n"

	s := d.Detect(text)
	if len(s.Titles) != 1 {
		t.Errorf("Titles = %v", s.Titles)
	}
	if len(s.Lists) != 1 {
		t.Errorf("Lists = %v", s.Lists)
	}
	if len(s.Tables) != 1 {
		t.Errorf("Tables = %v", s.Tables)
	}
	if len(s.Paragraphs) != 2 {
		t.Errorf("Paragraphs = %v", s.Paragraphs)
	}

	nonBlank := 5
	if got := s.ElementCount(); got != nonBlank {
		t.Errorf("ElementCount() = %d, want %d (every non-blank line in exactly one bucket)", got, nonBlank)
	}
}

func TestDetect_BlankOnlyInput(t *testing.T) {
	d := New()

	s := d.Detect("\n\n   \n")
	if s.ElementCount() != 0 {
		t.Errorf("blank-only input produced %+v", s)
	}
}
