// Package preprocess prepares rendered page images for OCR: grayscale
// conversion, contrast stretch, optional binarization and scaling.
package preprocess

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Config controls the preprocessing steps. Steps run in a fixed order:
// scale, grayscale, contrast, threshold.
type Config struct {
	// ScaleFactor resizes the image before recognition. 1.0 (or 0) keeps
	// the original size.
	ScaleFactor float64

	// Grayscale converts to 8-bit grayscale. Contrast and threshold
	// require it and force it on.
	Grayscale bool

	// ContrastFactor stretches pixel values around the midpoint.
	// 1.0 (or 0) leaves contrast unchanged.
	ContrastFactor float64

	// Threshold binarizes the grayscale image: pixels at or above the
	// value become white, the rest black. 0 disables binarization.
	Threshold uint8
}

// DefaultConfig returns the preprocessing used for typical scanned
// Korean documents: grayscale with a mild contrast stretch, no
// binarization and no scaling.
func DefaultConfig() Config {
	return Config{
		ScaleFactor:    1.0,
		Grayscale:      true,
		ContrastFactor: 1.3,
	}
}

// Apply runs the configured steps and returns the processed image. The
// input image is never modified.
func Apply(img image.Image, config Config) image.Image {
	if config.ScaleFactor > 0 && config.ScaleFactor != 1.0 {
		img = scale(img, config.ScaleFactor)
	}

	needGray := config.Grayscale || config.ContrastFactor > 0 && config.ContrastFactor != 1.0 || config.Threshold > 0
	if !needGray {
		return img
	}

	gray := toGray(img)
	if config.ContrastFactor > 0 && config.ContrastFactor != 1.0 {
		adjustContrast(gray, config.ContrastFactor)
	}
	if config.Threshold > 0 {
		binarize(gray, config.Threshold)
	}
	return gray
}

// ProcessFile reads an image file (PNG, JPEG, TIFF or BMP), applies the
// configured steps and writes the result to outPath as PNG.
func ProcessFile(inPath, outPath string, config Config) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, Apply(img, config)); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return out.Close()
}

func scale(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		out := image.NewGray(g.Bounds())
		copy(out.Pix, g.Pix)
		return out
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	xdraw.Draw(gray, b, img, b.Min, xdraw.Src)
	return gray
}

// adjustContrast stretches gray values around the 128 midpoint in place.
func adjustContrast(gray *image.Gray, factor float64) {
	for i, p := range gray.Pix {
		v := (float64(p)-128)*factor + 128
		gray.Pix[i] = uint8(math.Round(math.Min(255, math.Max(0, v))))
	}
}

func binarize(gray *image.Gray, threshold uint8) {
	for i, p := range gray.Pix {
		if p >= threshold {
			gray.Pix[i] = 255
		} else {
			gray.Pix[i] = 0
		}
	}
}

// Luminance returns the mean gray value of the image, a cheap
// blank-page indicator.
func Luminance(img image.Image) float64 {
	gray := toGray(img)
	if len(gray.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, p := range gray.Pix {
		sum += uint64(p)
	}
	return float64(sum) / float64(len(gray.Pix))
}
