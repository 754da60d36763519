//go:build !ocr

// Package ocr wraps the Tesseract engine via gosseract to read text
// regions out of rendered page images.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All operations return ErrOCRNotEnabled. To enable OCR, rebuild
// with the tag and Tesseract installed:
//
//	go build -tags ocr
package ocr

import (
	"errors"

	"github.com/kyungmin-lee/docstruct/model"
)

// DefaultLanguages is the Tesseract language string used when none is
// given: Korean with English fallback.
const DefaultLanguages = "kor+eng"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode mirrors the Tesseract page segmentation modes of the
// OCR-enabled implementation.
type PageSegMode int

// Client is a stub OCR client; every operation fails with
// ErrOCRNotEnabled.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New(languages string) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op, safe on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrOCRNotEnabled.
func (c *Client) RecognizeImage(path string) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeRegions returns ErrOCRNotEnabled.
func (c *Client) RecognizeRegions(path string) ([]model.TextRegion, error) {
	return nil, ErrOCRNotEnabled
}

// SetPageSegMode returns ErrOCRNotEnabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
