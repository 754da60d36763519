// Package model defines the layered document model produced by OCR
// postprocessing: text regions normalized from raw OCR output, per-page
// results (cleaned text, language, structure, statistics), and the
// document-level summary folded from all pages.
//
// All types are plain data structures with JSON tags. They are created once
// by the processing pipeline and never mutated afterward, so values can be
// shared freely across goroutines.
package model
