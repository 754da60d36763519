package ocr

import "github.com/kyungmin-lee/docstruct/model"

// Recognizer is the read side of an OCR client. Both the gosseract-backed
// client and the disabled stub satisfy it, so pipelines and tests can be
// written against the interface without Tesseract installed.
type Recognizer interface {
	RecognizeImage(path string) (string, error)
	RecognizeRegions(path string) ([]model.TextRegion, error)
	Close() error
}

var _ Recognizer = (*Client)(nil)
