// Package batch runs the processing pipeline over many documents
// concurrently with a fixed worker pool.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kyungmin-lee/docstruct"
	"github.com/kyungmin-lee/docstruct/model"
)

// Result is the outcome of one document within a batch.
type Result struct {
	JobID   string                `json:"job_id"`
	Path    string                `json:"path"`
	Pages   []model.PageResult    `json:"pages,omitempty"`
	Summary model.DocumentSummary `json:"summary,omitempty"`
	Err     string                `json:"error,omitempty"`
}

// Report summarizes a whole batch run. Results are ordered by input path.
type Report struct {
	BatchID   string        `json:"batch_id"`
	Started   time.Time     `json:"started"`
	Finished  time.Time     `json:"finished"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Results   []Result      `json:"results"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Runner fans document files out to a pool of workers, each running the
// full pipeline.
type Runner struct {
	processor *docstruct.Processor
	workers   int
	logger    *slog.Logger
}

// New creates a Runner with the given pool size. Workers below 1 are
// clamped to 1; a nil logger falls back to slog.Default.
func New(processor *docstruct.Processor, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{processor: processor, workers: workers, logger: logger}
}

// ProcessDir processes every .txt file under dir (one document per file,
// pages separated by form feed) and returns the batch report. File-level
// failures are recorded in the report, not returned as an error; the
// returned error covers setup problems only. Cancelling the context stops
// the dispatch of further files.
func (r *Runner) ProcessDir(ctx context.Context, dir string) (Report, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return Report{}, fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return Report{}, fmt.Errorf("no .txt documents under %s", dir)
	}
	sort.Strings(paths)
	return r.ProcessFiles(ctx, paths), nil
}

// ProcessFiles processes the given document files with the worker pool
// and returns the batch report, results ordered by path.
func (r *Runner) ProcessFiles(ctx context.Context, paths []string) Report {
	report := Report{
		BatchID: uuid.NewString(),
		Started: time.Now(),
	}
	r.logger.Info("batch started",
		"batch_id", report.BatchID,
		"documents", len(paths),
		"workers", r.workers,
	)

	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- r.processFile(path)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.Err == "" {
			report.Succeeded++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Path < report.Results[j].Path
	})

	report.Finished = time.Now()
	report.Elapsed = report.Finished.Sub(report.Started)
	r.logger.Info("batch finished",
		"batch_id", report.BatchID,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"elapsed", report.Elapsed,
	)
	return report
}

func (r *Runner) processFile(path string) Result {
	result := Result{JobID: uuid.NewString(), Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err.Error()
		r.logger.Error("document failed", "job_id", result.JobID, "path", path, "error", err)
		return result
	}

	result.Pages = r.processor.ProcessPages(splitPages(string(data)))
	result.Summary = r.processor.Summarize(result.Pages)
	r.logger.Info("document processed",
		"job_id", result.JobID,
		"path", path,
		"pages", len(result.Pages),
	)
	return result
}

// splitPages splits a document on form feeds, the page delimiter used by
// pdftotext-style dumps. A document without form feeds is one page.
func splitPages(text string) []string {
	pages := strings.Split(text, "\f")
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
