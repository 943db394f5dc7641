// Package main - capture.go
//
// This file implements frame acquisition for the perception pipeline.
// It captures a configurable rectangle of the screen (or the full primary
// display) and hands frames to the vision layer as BGR Mats.
//
// Capture Flow:
//   1. screenshot.CaptureRect grabs the region as RGBA
//   2. The image is converted to a gocv Mat and reordered to BGR, the
//      channel order every downstream color heuristic assumes
//
// Failure Behavior:
// Capture errors are returned to the caller; the bot loop treats a failed
// capture as an Unknown frame and skips the iteration.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kbinani/screenshot"
	"gocv.io/x/gocv"
)

// ScreenCapture grabs frames from a fixed screen region.
type ScreenCapture struct {
	bounds image.Rectangle
}

// NewScreenCapture creates a capturer for the configured region. A zero
// width or height selects the full primary display.
func NewScreenCapture(cfg ScreenConfig) (*ScreenCapture, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("no active displays found")
	}
	bounds := screenshot.GetDisplayBounds(0)
	if cfg.Width > 0 && cfg.Height > 0 {
		bounds = image.Rect(cfg.X, cfg.Y, cfg.X+cfg.Width, cfg.Y+cfg.Height)
	}
	LogInfo("Screen capture region: %v", bounds)
	return &ScreenCapture{bounds: bounds}, nil
}

// Capture grabs one frame as an RGBA image.
func (sc *ScreenCapture) Capture() (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(sc.bounds)
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}

// CaptureMat grabs one frame and converts it to a BGR Mat for the vision
// layer. The caller owns the returned Mat.
func (sc *ScreenCapture) CaptureMat() (gocv.Mat, error) {
	img, err := sc.Capture()
	if err != nil {
		return gocv.NewMat(), err
	}
	return rgbaToBGR(img)
}

// rgbaToBGR converts an RGBA image to the BGR Mat layout the vision
// layer expects. The caller owns the returned Mat.
func rgbaToBGR(img *image.RGBA) (gocv.Mat, error) {
	rgba, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert frame: %w", err)
	}
	defer rgba.Close()

	bgr := gocv.NewMat()
	gocv.CvtColor(rgba, &bgr, gocv.ColorRGBAToBGR)
	return bgr, nil
}

// SaveScreenshot captures a frame and writes it as a PNG.
func (sc *ScreenCapture) SaveScreenshot(path string) error {
	img, err := sc.Capture()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create screenshot directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode screenshot: %w", err)
	}
	LogDebug("Screenshot saved: %s", path)
	return nil
}

// Size returns the capture region dimensions.
func (sc *ScreenCapture) Size() (int, int) {
	return sc.bounds.Dx(), sc.bounds.Dy()
}
