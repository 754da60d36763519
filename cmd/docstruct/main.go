// Command docstruct turns PDF or OCR text documents into structured
// results: cleaned text, language labels, document structure, entities
// and statistics.
//
// Usage:
//
//	docstruct single [-config config.yaml] [-out dir] [-formats json,csv] document.pdf
//	docstruct batch  [-config config.yaml] [-workers n] [-out dir] inputdir
//	docstruct formats
//
// PDF input needs the binary built with -tags ocr and Tesseract plus
// poppler-utils installed; plain .txt input (pages separated by form
// feed) works in any build.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kyungmin-lee/docstruct"
	"github.com/kyungmin-lee/docstruct/batch"
	"github.com/kyungmin-lee/docstruct/config"
	"github.com/kyungmin-lee/docstruct/export"
	"github.com/kyungmin-lee/docstruct/model"
	"github.com/kyungmin-lee/docstruct/normalize"
	"github.com/kyungmin-lee/docstruct/ocr"
	"github.com/kyungmin-lee/docstruct/pdf"
	"github.com/kyungmin-lee/docstruct/preprocess"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "single":
		err = runSingle(ctx, os.Args[2:], logger)
	case "batch":
		err = runBatch(ctx, os.Args[2:], logger)
	case "formats":
		fmt.Println(strings.Join(export.Formats(), "\n"))
	case "-h", "--help", "help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  docstruct single [-config file] [-out dir] [-formats list] <document>
  docstruct batch  [-config file] [-workers n] [-out dir] <dir>
  docstruct formats
`)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	return config.Load(path)
}

func runSingle(ctx context.Context, args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("single", flag.ExitOnError)
	configPath := fs.String("config", "", "config file (yaml)")
	outDir := fs.String("out", "", "output directory (default from config)")
	formats := fs.String("formats", "", "comma-separated export formats (default from config)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("single: expected one document argument")
	}
	input := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *formats != "" {
		cfg.ExportFormats = strings.Split(*formats, ",")
	}

	processor := docstruct.NewWithOptions(docstruct.Options{
		MergeThreshold:        cfg.MergeThreshold,
		DisablePostprocessing: !cfg.EnablePostprocessing,
	})

	var texts []string
	if strings.EqualFold(filepath.Ext(input), ".pdf") {
		texts, err = recognizePDF(ctx, input, cfg, logger)
	} else {
		texts, err = readTextDocument(input)
	}
	if err != nil {
		return err
	}

	pages := processor.ProcessPages(texts)
	doc := export.Document{
		Name:    docName(input),
		Pages:   pages,
		Summary: processor.Summarize(pages),
	}
	logger.Info("document processed", "document", doc.Name, "pages", len(pages))

	return exportAll(doc, cfg)
}

func runBatch(ctx context.Context, args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	configPath := fs.String("config", "", "config file (yaml)")
	workers := fs.Int("workers", 0, "worker pool size (default from config)")
	outDir := fs.String("out", "", "output directory (default from config)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("batch: expected one input directory argument")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	processor := docstruct.NewWithOptions(docstruct.Options{
		MergeThreshold:        cfg.MergeThreshold,
		DisablePostprocessing: !cfg.EnablePostprocessing,
	})
	runner := batch.New(processor, cfg.Workers, logger)

	report, err := runner.ProcessDir(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	reportPath := filepath.Join(cfg.OutputDir, "batch_report.json")
	f, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("batch report written",
		"path", reportPath,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
	)
	return nil
}

// recognizePDF renders, preprocesses and OCRs each page, returning one
// text per page. Region texts are normalized and high-confidence regions
// joined in reading order.
func recognizePDF(ctx context.Context, path string, cfg config.Config, logger *slog.Logger) ([]string, error) {
	client, err := ocr.New(cfg.OCRLanguages)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	workDir, err := os.MkdirTemp("", "docstruct-pages-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(workDir)

	renderer := pdf.Renderer{DPI: cfg.DPI}
	images, err := renderer.RenderPages(ctx, path, workDir)
	if err != nil {
		return nil, err
	}

	preConfig := preprocess.Config{
		ScaleFactor:    cfg.Preprocess.ScaleFactor,
		Grayscale:      cfg.Preprocess.Grayscale,
		ContrastFactor: cfg.Preprocess.ContrastFactor,
		Threshold:      uint8(cfg.Preprocess.Threshold),
	}

	texts := make([]string, 0, len(images))
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := preprocess.ProcessFile(img, img, preConfig); err != nil {
			return nil, fmt.Errorf("preprocess page %d: %w", i+1, err)
		}

		regions, err := client.RecognizeRegions(img)
		if err != nil {
			return nil, fmt.Errorf("ocr page %d: %w", i+1, err)
		}
		normalized := normalize.Normalize(regionTexts(regions), img)
		texts = append(texts, model.CombinedText(normalized))
		logger.Info("page recognized", "page", i+1, "regions", len(regions))
	}
	return texts, nil
}

func regionTexts(regions []model.TextRegion) []string {
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		out = append(out, r.Text)
	}
	return out
}

// readTextDocument loads a plain-text OCR dump, one page per form feed.
func readTextDocument(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pages []string
	for _, p := range strings.Split(string(data), "\f") {
		if strings.TrimSpace(p) != "" {
			pages = append(pages, p)
		}
	}
	if len(pages) == 0 {
		pages = []string{""}
	}
	return pages, nil
}

func docName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func exportAll(doc export.Document, cfg config.Config) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, format := range cfg.ExportFormats {
		path := filepath.Join(cfg.OutputDir, doc.Name+"."+strings.ToLower(format))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := export.Export(f, format, doc); err != nil {
			f.Close()
			return fmt.Errorf("export %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("exported", "path", path, "format", format)
	}
	return nil
}
