package model

import (
	"strings"
	"time"
)

// BBox is a four-number bounding box [minX, minY, maxX, maxY].
// A zero box means the source provided no usable position information;
// consumers must tolerate zero boxes.
type BBox [4]float64

// BBoxFromPoints builds a box from a set of (x, y) points.
// Returns the zero box when no points are given.
func BBoxFromPoints(xs, ys []float64) BBox {
	if len(xs) == 0 || len(ys) == 0 {
		return BBox{}
	}
	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return BBox{minX, minY, maxX, maxY}
}

// IsZero reports whether the box carries no position information.
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Width returns maxX - minX.
func (b BBox) Width() float64 { return b[2] - b[0] }

// Height returns maxY - minY.
func (b BBox) Height() float64 { return b[3] - b[1] }

// TextRegion is one OCR-detected text fragment after normalization.
//
// ID is unique within a page and follows extraction order; it exists for
// traceability only and carries no semantic meaning. Text is always
// non-empty after trimming: regions that normalize to blank text are
// discarded rather than emitted.
type TextRegion struct {
	ID          int       `json:"id"`
	Text        string    `json:"text"`
	Confidence  float64   `json:"confidence"`
	BBox        BBox      `json:"bbox"`
	SourceImage string    `json:"source_image"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// CombinedText joins the text of all regions with newlines, preserving
// extraction order. Blank regions are skipped (normalization should have
// dropped them already).
func CombinedText(regions []TextRegion) string {
	var b strings.Builder
	for _, r := range regions {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// AverageConfidence returns the mean confidence across regions,
// or 0 when there are none.
func AverageConfidence(regions []TextRegion) float64 {
	if len(regions) == 0 {
		return 0
	}
	var sum float64
	for _, r := range regions {
		sum += r.Confidence
	}
	return sum / float64(len(regions))
}

// HighConfidenceText returns the text of regions whose confidence is at
// least threshold, in extraction order.
func HighConfidenceText(regions []TextRegion, threshold float64) []string {
	var out []string
	for _, r := range regions {
		if r.Confidence >= threshold && strings.TrimSpace(r.Text) != "" {
			out = append(out, r.Text)
		}
	}
	return out
}
