package textclean

import (
	"strings"
	"testing"
)

func TestCleanText_Empty(t *testing.T) {
	c := NewCleaner()
	if got := c.CleanText(""); got != "" {
		t.Errorf("CleanText(\"\") = %q, want \"\"", got)
	}
}

func TestCleanText_WhitespaceCollapse(t *testing.T) {
	c := NewCleaner()

	got := c.CleanText("안녕하세요   \t  반갑습니다\n\n오늘")
	want := "안녕하세요 반갑습니다 오늘"
	if got != want {
		t.Errorf("CleanText() = %q, want %q", got, want)
	}
}

func TestCleanText_NoiseRemoval(t *testing.T) {
	c := NewCleaner()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"special chars stripped", "회사© 소개®", "회사 소개"},
		{"basic punctuation kept", "끝! 진짜? (아마)", "끝! 진짜? (아마)"},
		{"repeat run of 5 collapsed", "좋아아아아아", "좋아"},
		{"repeat run of 4 kept", "음....", "음...."},
		{"stray jamo removed", "회사ㅋ 소개ㅎ", "회사 소개"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanText_CharSubstitutions(t *testing.T) {
	c := NewCleaner()

	// Latin letters confused for digits.
	got := c.CleanText("전화 O2-l234")
	want := "전화 02-1234"
	if got != want {
		t.Errorf("CleanText() = %q, want %q", got, want)
	}
}

func TestCleanText_WordSubstitutions(t *testing.T) {
	c := NewCleaner()

	tests := []struct {
		input string
		want  string
	}{
		{"핸드폰 번호", "휴대전화 번호"},
		{"휴대폰 번호", "휴대전화 번호"},
	}

	for _, tt := range tests {
		if got := c.CleanText(tt.input); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCorrectCommonErrors_Empty(t *testing.T) {
	c := NewCleaner()
	if got := c.CorrectCommonErrors(""); got != "" {
		t.Errorf("CorrectCommonErrors(\"\") = %q, want \"\"", got)
	}
}

func TestCorrectCommonErrors_RepeatRuns(t *testing.T) {
	c := NewCleaner()

	// The correction threshold (4) is tighter than cleaning's (5).
	tests := []struct {
		input string
		want  string
	}{
		{"좋아아아아", "좋아"},
		{"좋아아아", "좋아아아"},
		{"hmmmm", "hm"},
	}

	for _, tt := range tests {
		if got := c.CorrectCommonErrors(tt.input); got != tt.want {
			t.Errorf("CorrectCommonErrors(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCorrectCommonErrors_PunctuationSpacing(t *testing.T) {
	c := NewCleaner()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"space before punct removed", "안녕하세요 .", "안녕하세요."},
		{"space after punct added", "안녕.반갑습니다", "안녕. 반갑습니다"},
		{"both", "첫째 ,둘째", "첫째, 둘째"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CorrectCommonErrors(tt.input); got != tt.want {
				t.Errorf("CorrectCommonErrors(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCorrectCommonErrors_NumberUnits(t *testing.T) {
	c := NewCleaner()

	tests := []struct {
		input string
		want  string
	}{
		{"10000 원", "10000원"},
		{"5 달러", "5달러"},
		{"3 킬로", "3킬로"},
		{"10 배", "10 배"}, // not in the unit list
	}

	for _, tt := range tests {
		if got := c.CorrectCommonErrors(tt.input); got != tt.want {
			t.Errorf("CorrectCommonErrors(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCorrectCommonErrors_JamoStripped(t *testing.T) {
	c := NewCleaner()

	got := c.CorrectCommonErrors("결과ㅏㅏ 확인")
	if strings.ContainsAny(got, "ㅏ") {
		t.Errorf("CorrectCommonErrors() = %q, jamo should be stripped", got)
	}
}

func TestCleanerIsReusable(t *testing.T) {
	// Pattern tables are built once and read-only; repeated calls must not
	// interfere with each other.
	c := NewCleaner()
	first := c.CleanText("핸드폰  연락처!!")
	second := c.CleanText("핸드폰  연락처!!")
	if first != second {
		t.Errorf("repeated CleanText calls differ: %q vs %q", first, second)
	}
}

func TestCollapseRuns(t *testing.T) {
	tests := []struct {
		input  string
		minRun int
		want   string
	}{
		{"", 4, ""},
		{"abc", 4, "abc"},
		{"aaaa", 4, "a"},
		{"aaa", 4, "aaa"},
		{"baaaab", 4, "bab"},
		{"가가가가가나", 5, "가나"},
		{"\n\n\n\n", 4, "\n\n\n\n"}, // newlines exempt
	}

	for _, tt := range tests {
		if got := collapseRuns(tt.input, tt.minRun); got != tt.want {
			t.Errorf("collapseRuns(%q, %d) = %q, want %q", tt.input, tt.minRun, got, tt.want)
		}
	}
}
