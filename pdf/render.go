// Package pdf renders PDF pages to images and reads basic document
// metadata by shelling out to the poppler-utils tools (pdftoppm and
// pdfinfo), which must be installed on the system.
package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultDPI is the render resolution used when none is configured.
// 300 DPI is the usual floor for reliable Korean OCR.
const DefaultDPI = 300

// Renderer rasterizes PDF pages via pdftoppm.
type Renderer struct {
	// DPI is the render resolution. Zero means DefaultDPI.
	DPI int
}

// RenderPages rasterizes every page of the PDF at pdfPath into PNG files
// under outDir, creating the directory if needed. It returns the page
// image paths in page order. The context cancels the external process.
func (r *Renderer) RenderPages(ctx context.Context, pdfPath, outDir string) ([]string, error) {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	prefix := filepath.Join(outDir, pagePrefix(pdfPath))
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-r", strconv.Itoa(dpi),
		"-png",
		pdfPath,
		prefix,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm %s: %w: %s", pdfPath, err, strings.TrimSpace(string(out)))
	}

	// pdftoppm names output <prefix>-1.png, <prefix>-01.png or similar
	// depending on page count; glob and sort to recover page order.
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("glob rendered pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", pdfPath)
	}
	sort.Strings(pages)
	return pages, nil
}

// pagePrefix derives the output filename prefix from the PDF basename.
func pagePrefix(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageCount reads the page count from pdfinfo output.
func PageCount(ctx context.Context, pdfPath string) (int, error) {
	out, err := exec.CommandContext(ctx, "pdfinfo", pdfPath).Output()
	if err != nil {
		return 0, fmt.Errorf("pdfinfo %s: %w", pdfPath, err)
	}

	for _, line := range strings.Split(string(out), "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
		if err != nil {
			return 0, fmt.Errorf("parse page count %q: %w", line, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("no Pages line in pdfinfo output for %s", pdfPath)
}
