//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a blank white PNG to a temp file. Tesseract should
// find no text in it.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 200, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	path := filepath.Join(t.TempDir(), "blank.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestRecognizeImage_BlankPage(t *testing.T) {
	client, err := New("eng")
	if err != nil {
		t.Skipf("tesseract unavailable: %v", err)
	}
	defer client.Close()

	text, err := client.RecognizeImage(writeTestPNG(t))
	if err != nil {
		t.Fatalf("RecognizeImage: %v", err)
	}
	if text != "" {
		t.Errorf("blank page produced text %q", text)
	}
}

func TestRecognizeRegions_BlankPage(t *testing.T) {
	client, err := New("eng")
	if err != nil {
		t.Skipf("tesseract unavailable: %v", err)
	}
	defer client.Close()

	regions, err := client.RecognizeRegions(writeTestPNG(t))
	if err != nil {
		t.Fatalf("RecognizeRegions: %v", err)
	}
	for _, r := range regions {
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("confidence %f outside [0, 1]", r.Confidence)
		}
	}
}
