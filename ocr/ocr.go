//go:build ocr

// Package ocr wraps the Tesseract engine via gosseract to read text
// regions out of rendered page images. Tesseract and the kor/eng trained
// data must be installed on the system. On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-kor
//
// On macOS:
//
//	brew install tesseract tesseract-lang
package ocr

import (
	"fmt"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/kyungmin-lee/docstruct/model"
)

// DefaultLanguages is the Tesseract language string used when none is
// given: Korean with English fallback.
const DefaultLanguages = "kor+eng"

// Client wraps a Tesseract session. Not safe for concurrent use; create
// one Client per worker and Close it when done.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client recognizing the given "+"-separated Tesseract
// languages. An empty string selects DefaultLanguages.
func New(languages string) (*Client, error) {
	if languages == "" {
		languages = DefaultLanguages
	}
	client := gosseract.NewClient()
	if err := client.SetLanguage(strings.Split(languages, "+")...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set ocr languages %q: %w", languages, err)
	}
	return &Client{client: client}, nil
}

// Close releases the Tesseract session. Safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage runs OCR over the whole image file and returns the
// recognized text, trimmed.
func (c *Client) RecognizeImage(path string) (string, error) {
	if err := c.client.SetImage(path); err != nil {
		return "", fmt.Errorf("set image %s: %w", path, err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize %s: %w", path, err)
	}
	return strings.TrimSpace(text), nil
}

// RecognizeRegions runs OCR over the image file and returns one region
// per recognized word, with its bounding box and the engine's confidence
// rescaled from Tesseract's 0-100 range to [0, 1].
func (c *Client) RecognizeRegions(path string) ([]model.TextRegion, error) {
	if err := c.client.SetImage(path); err != nil {
		return nil, fmt.Errorf("set image %s: %w", path, err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("bounding boxes for %s: %w", path, err)
	}

	regions := make([]model.TextRegion, 0, len(boxes))
	for i, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		regions = append(regions, model.TextRegion{
			ID:         i,
			Text:       text,
			Confidence: box.Confidence / 100,
			BBox: model.BBox{
				float64(box.Box.Min.X),
				float64(box.Box.Min.Y),
				float64(box.Box.Max.X),
				float64(box.Box.Max.Y),
			},
			SourceImage: path,
			ExtractedAt: time.Now(),
		})
	}
	return regions, nil
}

// SetPageSegMode sets the Tesseract page segmentation mode.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
