// Package normalize converts heterogeneous raw OCR output into a canonical
// ordered sequence of text regions.
//
// OCR backends disagree wildly about result shape: some return a plain
// string, some a list of dicts with varying key names, some a list of
// (bbox, text, confidence) tuples, and some a dict of parallel arrays.
// Normalize recognizes a closed set of shapes and reduces all of them to
// []model.TextRegion, falling back to string coercion for anything it does
// not recognize. No other package needs to reason about shape variance.
//
// Normalization is never fatal: malformed items are logged and skipped, and
// Normalize always returns a (possibly empty) slice, never an error.
package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/kyungmin-lee/docstruct/model"
)

// Confidence defaults per source shape. Shapes that carry no confidence of
// their own get a synthetic value: detailed dict results are trusted fully,
// tuple results slightly less, and last-resort string coercions least.
const (
	defaultConfidence  = 1.0
	tupleConfidence    = 0.95
	parallelConfidence = 0.95
	coercedConfidence  = 0.5
)

// sentinels are stringified values that indicate "no result" rather than
// recognized text; the coercion fallback refuses to emit them as regions.
var sentinels = map[string]bool{
	"None": true,
	"null": true,
	"[]":   true,
	"{}":   true,
}

// ParseJSON decodes a raw JSON OCR dump into the dynamic shape Normalize
// consumes. Useful when raw results arrive as files rather than in-process
// values.
func ParseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode raw OCR result: %w", err)
	}
	return v, nil
}

// Normalize converts a raw OCR result of any recognized shape into an
// ordered sequence of text regions for sourceImage. A region is emitted
// only if its trimmed text is non-empty; structurally present but blank
// items are dropped silently. Unrecognized top-level shapes degrade to a
// single low-confidence string coercion, or to nothing at all.
func Normalize(raw any, sourceImage string) []model.TextRegion {
	if raw == nil {
		return nil
	}

	now := time.Now().UTC()

	switch v := raw.(type) {
	case string:
		if r, ok := newRegion(0, v, defaultConfidence, model.BBox{}, sourceImage, now); ok {
			return []model.TextRegion{r}
		}
		return nil

	case map[string]any:
		return fromMap(v, sourceImage, now)

	case []any:
		return fromList(v, sourceImage, now)

	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return fromList(items, sourceImage, now)

	default:
		return coerce(raw, sourceImage, now)
	}
}

// fromMap handles dict-shaped results: the parallel-array form
// {"description": [...], "bounding_poly": [...]} produced by detail mode,
// or a single dict item keyed like a list element.
func fromMap(m map[string]any, sourceImage string, now time.Time) []model.TextRegion {
	descs, hasDesc := m["description"].([]any)
	polys, hasPoly := m["bounding_poly"].([]any)
	if hasDesc && hasPoly {
		var regions []model.TextRegion
		for i, d := range descs {
			text, _ := d.(string)
			bbox := model.BBox{}
			if i < len(polys) {
				if poly, ok := polys[i].(map[string]any); ok {
					bbox = bboxFromVertices(poly["vertices"])
				}
			}
			if r, ok := newRegion(i, text, parallelConfidence, bbox, sourceImage, now); ok {
				regions = append(regions, r)
			}
		}
		return regions
	}

	if r, ok := regionFromDict(0, m, sourceImage, now); ok {
		return []model.TextRegion{r}
	}
	return nil
}

// fromList handles ordered sequences whose items may be dicts, strings, or
// (bbox, text, confidence) tuples. Item kinds can be mixed; each item is
// handled independently and a failing item never aborts the rest.
func fromList(items []any, sourceImage string, now time.Time) []model.TextRegion {
	var regions []model.TextRegion
	for i, item := range items {
		r, ok := normalizeItem(i, item, sourceImage, now)
		if ok {
			regions = append(regions, r)
		}
	}
	return regions
}

// normalizeItem reduces one list element to a region. Panics from
// structurally hostile items are recovered here so a single bad element is
// skipped rather than poisoning the whole page.
func normalizeItem(i int, item any, sourceImage string, now time.Time) (region model.TextRegion, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("skipping malformed OCR result item",
				"index", i, "source_image", sourceImage, "cause", r)
			ok = false
		}
	}()

	switch v := item.(type) {
	case map[string]any:
		return regionFromDict(i, v, sourceImage, now)

	case string:
		return newRegion(i, v, defaultConfidence, model.BBox{}, sourceImage, now)

	case []any:
		return regionFromTuple(i, v, sourceImage, now)

	default:
		slog.Debug("unrecognized OCR item kind", "index", i, "kind", fmt.Sprintf("%T", item))
		return model.TextRegion{}, false
	}
}

// regionFromDict reads one dict item. Text keys are tried in priority
// order (text, description, word); the first present non-empty key wins.
// Confidence falls back from "confidence" to "score" to the default, and
// the bounding box from "bbox" to "bounding_box" to Vision-style
// "boundingPoly" vertices.
func regionFromDict(i int, item map[string]any, sourceImage string, now time.Time) (model.TextRegion, bool) {
	var text string
	for _, key := range []string{"text", "description", "word"} {
		if v, present := item[key]; present && v != nil {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				text = s
				break
			}
		}
	}

	confidence := defaultConfidence
	for _, key := range []string{"confidence", "score"} {
		if v, present := item[key]; present {
			if f, numOK := toFloat(v); numOK {
				confidence = f
				break
			}
		}
	}

	bbox := model.BBox{}
	if v, present := item["bbox"]; present {
		bbox = bboxFromFlat(v)
	} else if v, present := item["bounding_box"]; present {
		bbox = bboxFromFlat(v)
	} else if poly, polyOK := item["boundingPoly"].(map[string]any); polyOK {
		bbox = bboxFromVertices(poly["vertices"])
	}

	return newRegion(i, text, confidence, bbox, sourceImage, now)
}

// regionFromTuple reads a 2-or-3-element (bbox_info, text, confidence)
// item. Any bbox parse failure falls back to the zero box silently.
func regionFromTuple(i int, item []any, sourceImage string, now time.Time) (model.TextRegion, bool) {
	if len(item) < 2 {
		return model.TextRegion{}, false
	}

	text, _ := item[1].(string)

	confidence := tupleConfidence
	if len(item) > 2 {
		if f, ok := toFloat(item[2]); ok && f != 0 {
			confidence = f
		}
	}

	bbox := model.BBox{}
	if info, ok := item[0].([]any); ok && len(info) > 0 {
		if _, nested := info[0].([]any); nested {
			bbox = bboxFromPointPairs(info)
		} else {
			bbox = bboxFromFlat(info)
		}
	}

	return newRegion(i, text, confidence, bbox, sourceImage, now)
}

// coerce is the last-resort branch for unrecognized top-level shapes:
// stringify, and emit a single low-confidence region unless the result is
// empty or a known "no result" sentinel.
func coerce(raw any, sourceImage string, now time.Time) []model.TextRegion {
	s := strings.TrimSpace(fmt.Sprint(raw))
	if s == "" || sentinels[s] {
		return nil
	}
	if r, ok := newRegion(0, s, coercedConfidence, model.BBox{}, sourceImage, now); ok {
		return []model.TextRegion{r}
	}
	return nil
}

// newRegion applies the emission invariant: NFC-normalize, trim, and drop
// the region entirely when the remaining text is blank.
func newRegion(id int, text string, confidence float64, bbox model.BBox, sourceImage string, now time.Time) (model.TextRegion, bool) {
	trimmed := strings.TrimSpace(norm.NFC.String(text))
	if trimmed == "" {
		return model.TextRegion{}, false
	}
	return model.TextRegion{
		ID:          id,
		Text:        trimmed,
		Confidence:  confidence,
		BBox:        bbox,
		SourceImage: sourceImage,
		ExtractedAt: now,
	}, true
}

// bboxFromFlat reduces a flat [minX, minY, maxX, maxY] value.
func bboxFromFlat(v any) model.BBox {
	nums, ok := v.([]any)
	if !ok || len(nums) < 4 {
		return model.BBox{}
	}
	var box model.BBox
	for i := 0; i < 4; i++ {
		f, ok := toFloat(nums[i])
		if !ok {
			return model.BBox{}
		}
		box[i] = f
	}
	return box
}

// bboxFromPointPairs reduces [[x1,y1], [x2,y2], ...] to a bounding box.
func bboxFromPointPairs(points []any) model.BBox {
	var xs, ys []float64
	for _, p := range points {
		pair, ok := p.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		x, xok := toFloat(pair[0])
		y, yok := toFloat(pair[1])
		if xok && yok {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return model.BBoxFromPoints(xs, ys)
}

// bboxFromVertices reduces Vision-style [{"x": n, "y": n}, ...] vertices.
// Fewer than two vertices cannot describe a box and yield the zero box.
func bboxFromVertices(v any) model.BBox {
	vertices, ok := v.([]any)
	if !ok || len(vertices) < 2 {
		return model.BBox{}
	}
	var xs, ys []float64
	for _, vertex := range vertices {
		m, ok := vertex.(map[string]any)
		if !ok {
			continue
		}
		x, _ := toFloat(m["x"])
		y, _ := toFloat(m["y"])
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return model.BBoxFromPoints(xs, ys)
}

// toFloat accepts the numeric kinds that dynamic decoding produces.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
