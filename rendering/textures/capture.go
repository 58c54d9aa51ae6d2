package textures

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// EncodeCapture writes a bottom-up RGBA framebuffer (as returned by
// glReadPixels) to w as lossless WebP
func EncodeCapture(w io.Writer, rgba []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("capture: invalid size %dx%d", width, height)
	}
	if len(rgba) < width*height*4 {
		return fmt.Errorf("capture: have %d bytes, need %d", len(rgba), width*height*4)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, rgba[:width*height*4])
	FlipRows(img.Pix, img.Stride, height)

	// The framebuffer alpha is not meaningful for a screenshot.
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("capture: encode: %w", err)
	}
	return nil
}

// CaptureName returns the file name for a screenshot taken at t
func CaptureName(dir string, t time.Time) string {
	return filepath.Join(dir, "solar-"+t.Format("20060102-150405")+".webp")
}

// SaveCapture encodes the framebuffer into dir and returns the file path
func SaveCapture(dir string, rgba []byte, width, height int, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	path := CaptureName(dir, t)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	if err := EncodeCapture(f, rgba, width, height); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	return path, nil
}
