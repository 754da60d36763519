package language

import (
	"math"
	"testing"

	"github.com/kyungmin-lee/docstruct/model"
)

func TestDetect_Empty(t *testing.T) {
	d := New()

	for _, input := range []string{"", "   ", "\n\t "} {
		info := d.Detect(input)
		if info.PrimaryLanguage != model.LangUnknown {
			t.Errorf("Detect(%q).PrimaryLanguage = %q, want unknown", input, info.PrimaryLanguage)
		}
		if info.Confidence != 0 {
			t.Errorf("Detect(%q).Confidence = %f, want 0", input, info.Confidence)
		}
		if info.HasRatios {
			t.Errorf("Detect(%q).HasRatios = true, want false", input)
		}
	}
}

func TestDetect_Korean(t *testing.T) {
	d := New()

	info := d.Detect("안녕하세요 반갑습니다")
	if info.PrimaryLanguage != model.LangKorean {
		t.Errorf("PrimaryLanguage = %q, want korean", info.PrimaryLanguage)
	}
	if info.KoreanRatio != 1.0 {
		t.Errorf("KoreanRatio = %f, want 1.0", info.KoreanRatio)
	}
	if info.Confidence != info.KoreanRatio {
		t.Errorf("Confidence = %f, want KoreanRatio %f", info.Confidence, info.KoreanRatio)
	}
}

func TestDetect_English(t *testing.T) {
	d := New()

	info := d.Detect("hello world this is english")
	if info.PrimaryLanguage != model.LangEnglish {
		t.Errorf("PrimaryLanguage = %q, want english", info.PrimaryLanguage)
	}
	if info.Confidence <= 0.3 {
		t.Errorf("Confidence = %f, want > 0.3", info.Confidence)
	}
}

func TestDetect_Mixed(t *testing.T) {
	d := New()

	// Mostly digits and punctuation: neither script crosses 0.3.
	info := d.Detect("2024-01-15 10:30 #1234567890")
	if info.PrimaryLanguage != model.LangMixed {
		t.Errorf("PrimaryLanguage = %q, want mixed", info.PrimaryLanguage)
	}
	wantConf := math.Max(info.KoreanRatio, info.EnglishRatio)
	if info.Confidence != wantConf {
		t.Errorf("Confidence = %f, want max(ratios) = %f", info.Confidence, wantConf)
	}
}

func TestDetect_KoreanPriority(t *testing.T) {
	// Both above threshold: Korean wins because it is checked first.
	d := New()

	info := d.Detect("안녕하세요 hello 반갑습니다 world")
	if info.KoreanRatio <= 0.3 || info.EnglishRatio <= 0.3 {
		t.Fatalf("test input should put both scripts above threshold: ko=%f en=%f",
			info.KoreanRatio, info.EnglishRatio)
	}
	if info.PrimaryLanguage != model.LangKorean {
		t.Errorf("PrimaryLanguage = %q, want korean", info.PrimaryLanguage)
	}
}

func TestDetect_RatioSanity(t *testing.T) {
	d := New()

	for _, input := range []string{
		"안녕 hello 123",
		"!!! ??? ...",
		"가나다 abc",
		"한국어와 English가 섞인 mixed 문장 42",
	} {
		info := d.Detect(input)
		if sum := info.KoreanRatio + info.EnglishRatio; sum > 1.0 {
			t.Errorf("Detect(%q): korean+english ratio = %f, want <= 1.0", input, sum)
		}
		if info.KoreanRatio < 0 || info.EnglishRatio < 0 || info.NumberRatio < 0 {
			t.Errorf("Detect(%q): negative ratio in %+v", input, info)
		}
	}
}

func TestDetect_JamoNotCounted(t *testing.T) {
	// Free-standing jamo are OCR noise, not Korean prose.
	d := New()

	info := d.Detect("ㅋㅋㅋㅋ")
	if info.KoreanRatio != 0 {
		t.Errorf("KoreanRatio = %f, want 0 for bare jamo", info.KoreanRatio)
	}
}

func TestCountClasses(t *testing.T) {
	korean, english, number := CountClasses("안녕 ab 12")
	if korean != 2 || english != 2 || number != 2 {
		t.Errorf("CountClasses() = (%d, %d, %d), want (2, 2, 2)", korean, english, number)
	}
}

func TestNonWhitespaceLength(t *testing.T) {
	if got := NonWhitespaceLength("안녕 하세요\n"); got != 5 {
		t.Errorf("NonWhitespaceLength() = %d, want 5", got)
	}
}

func TestDistribution(t *testing.T) {
	dist := Distribution([]string{"korean", "korean", "english", ""})
	if dist["korean"] != 2 || dist["english"] != 1 {
		t.Errorf("Distribution() = %v", dist)
	}
	if _, present := dist[""]; present {
		t.Error("blank labels should be skipped")
	}
}
