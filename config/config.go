// Package config loads pipeline configuration from YAML or JSON files,
// applies environment overrides and validates the result.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the processing pipeline.
type Config struct {
	// OCRLanguages is the "+"-separated Tesseract language string.
	OCRLanguages string `yaml:"ocr_languages" json:"ocr_languages"`

	// DPI is the PDF render resolution.
	DPI int `yaml:"dpi" json:"dpi"`

	// MergeThreshold is the region-merge similarity cutoff, in [0, 1].
	MergeThreshold float64 `yaml:"merge_threshold" json:"merge_threshold"`

	// EnablePostprocessing toggles the text cleaning and correction
	// passes. On by default.
	EnablePostprocessing bool `yaml:"enable_postprocessing" json:"enable_postprocessing"`

	// Workers is the batch worker pool size.
	Workers int `yaml:"workers" json:"workers"`

	// OutputDir receives exported results.
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// ExportFormats lists the formats written per document.
	ExportFormats []string `yaml:"export_formats" json:"export_formats"`

	Preprocess PreprocessConfig `yaml:"preprocess" json:"preprocess"`
}

// PreprocessConfig mirrors the image preprocessing knobs.
type PreprocessConfig struct {
	ScaleFactor    float64 `yaml:"scale_factor" json:"scale_factor"`
	Grayscale      bool    `yaml:"grayscale" json:"grayscale"`
	ContrastFactor float64 `yaml:"contrast_factor" json:"contrast_factor"`
	Threshold      int     `yaml:"threshold" json:"threshold"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		OCRLanguages:         "kor+eng",
		DPI:                  300,
		MergeThreshold:       0.8,
		EnablePostprocessing: true,
		Workers:              4,
		OutputDir:            "output",
		ExportFormats:        []string{"json"},
		Preprocess: PreprocessConfig{
			ScaleFactor:    1.0,
			Grayscale:      true,
			ContrastFactor: 1.3,
		},
	}
}

// configSchema validates JSON configuration files before decoding.
const configSchema = `{
  "type": "object",
  "properties": {
    "ocr_languages": {"type": "string"},
    "dpi": {"type": "integer", "minimum": 1},
    "merge_threshold": {"type": "number", "minimum": 0, "maximum": 1},
    "enable_postprocessing": {"type": "boolean"},
    "workers": {"type": "integer", "minimum": 1},
    "output_dir": {"type": "string"},
    "export_formats": {"type": "array", "items": {"type": "string"}},
    "preprocess": {
      "type": "object",
      "properties": {
        "scale_factor": {"type": "number", "minimum": 0},
        "grayscale": {"type": "boolean"},
        "contrast_factor": {"type": "number", "minimum": 0},
        "threshold": {"type": "integer", "minimum": 0, "maximum": 255}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

var compiledSchema = jsonschema.MustCompileString("config.schema.json", configSchema)

// Load reads a YAML config file, fills unset fields from defaults,
// applies DOCSTRUCT_* environment overrides and validates.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadJSON decodes a JSON config document after checking it against the
// schema, then applies environment overrides and validates.
func LoadJSON(data []byte) (Config, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse json config: %w", err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return Config{}, fmt.Errorf("config schema: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode json config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from DOCSTRUCT_* environment variables.
// Unparsable numeric values are ignored rather than fatal.
func (c *Config) applyEnv() {
	if v := os.Getenv("DOCSTRUCT_OCR_LANGUAGES"); v != "" {
		c.OCRLanguages = v
	}
	if v := os.Getenv("DOCSTRUCT_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("DOCSTRUCT_DPI"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DPI = n
		}
	}
	if v := os.Getenv("DOCSTRUCT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv("DOCSTRUCT_MERGE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MergeThreshold = f
		}
	}
}

// Validate checks range constraints the schema cannot express for YAML
// input.
func (c Config) Validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MergeThreshold < 0 || c.MergeThreshold > 1 {
		return fmt.Errorf("merge_threshold must be in [0, 1], got %g", c.MergeThreshold)
	}
	if c.Preprocess.Threshold < 0 || c.Preprocess.Threshold > 255 {
		return fmt.Errorf("preprocess threshold must be in [0, 255], got %d", c.Preprocess.Threshold)
	}
	return nil
}
