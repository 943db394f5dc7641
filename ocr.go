// Package main - ocr.go
//
// This file implements text recognition over Tesseract (gosseract).
// Two backends are available behind the same interface:
//   - "classic": the default Tesseract engine mode
//   - "neural": LSTM-only engine mode, slower but better on the game's
//     anti-aliased UI font
//
// The OCREngine wrapper converts crops to PNG bytes for the client and
// layers the game-specific extraction helpers on top: free text, digit
// runs, and "current/max" HP fractions.
//
// Failure Behavior:
// A recognition error is logged and surfaces as empty text. Perception
// callers treat empty text as "nothing readable here", never as fatal.
package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// WordBox is a single recognized word with its bounding box.
type WordBox struct {
	Text       string
	Confidence float64
	Region     Region
}

// TextRecognizer abstracts the OCR backend.
type TextRecognizer interface {
	// Text recognizes a block of text in the crop.
	Text(img gocv.Mat) (string, error)
	// TextLine recognizes the crop as a single line.
	TextLine(img gocv.Mat) (string, error)
	// Words returns word-level boxes for the crop.
	Words(img gocv.Mat) ([]WordBox, error)
	Close() error
}

type tesseractRecognizer struct {
	client *gosseract.Client
}

// NewTextRecognizer builds the configured OCR backend.
func NewTextRecognizer(cfg OCRConfig) (TextRecognizer, error) {
	client := gosseract.NewClient()

	lang := cfg.Language
	if lang == "" {
		lang = "eng"
	}
	if err := client.SetLanguage(lang); err != nil {
		client.Close()
		return nil, fmt.Errorf("set ocr language: %w", err)
	}
	if cfg.TesseractPath != "" {
		if err := client.SetTessdataPrefix(cfg.TesseractPath); err != nil {
			client.Close()
			return nil, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("set page seg mode: %w", err)
	}
	if cfg.Backend == "neural" {
		// LSTM-only engine mode.
		if err := client.SetVariable(gosseract.SettableVariable("tessedit_ocr_engine_mode"), "1"); err != nil {
			client.Close()
			return nil, fmt.Errorf("set lstm engine mode: %w", err)
		}
		LogInfo("OCR backend: neural (LSTM-only)")
	} else {
		LogInfo("OCR backend: classic")
	}
	return &tesseractRecognizer{client: client}, nil
}

func (t *tesseractRecognizer) setImage(img gocv.Mat) error {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, img)
	if err != nil {
		return fmt.Errorf("encode ocr crop: %w", err)
	}
	defer buf.Close()
	return t.client.SetImageFromBytes(buf.GetBytes())
}

func (t *tesseractRecognizer) Text(img gocv.Mat) (string, error) {
	if img.Empty() {
		return "", nil
	}
	if err := t.client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", err
	}
	if err := t.setImage(img); err != nil {
		return "", err
	}
	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (t *tesseractRecognizer) TextLine(img gocv.Mat) (string, error) {
	if img.Empty() {
		return "", nil
	}
	if err := t.client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return "", err
	}
	if err := t.setImage(img); err != nil {
		return "", err
	}
	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr line: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (t *tesseractRecognizer) Words(img gocv.Mat) ([]WordBox, error) {
	if img.Empty() {
		return nil, nil
	}
	if err := t.client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return nil, err
	}
	if err := t.setImage(img); err != nil {
		return nil, err
	}
	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("ocr word boxes: %w", err)
	}
	words := make([]WordBox, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		words = append(words, WordBox{
			Text:       text,
			Confidence: b.Confidence,
			Region:     NewRegion(b.Box.Min.X, b.Box.Min.Y, b.Box.Dx(), b.Box.Dy()),
		})
	}
	return words, nil
}

func (t *tesseractRecognizer) Close() error {
	return t.client.Close()
}

var hpPattern = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)

// OCREngine layers game-specific extraction on a TextRecognizer.
type OCREngine struct {
	rec TextRecognizer
}

// NewOCREngine wraps a recognizer.
func NewOCREngine(rec TextRecognizer) *OCREngine {
	return &OCREngine{rec: rec}
}

// Close releases the backend.
func (e *OCREngine) Close() error {
	if e.rec == nil {
		return nil
	}
	return e.rec.Close()
}

// ExtractText recognizes the text in a region of the frame. A zero region
// reads the whole frame.
func (e *OCREngine) ExtractText(frame gocv.Mat, region Region) string {
	if e.rec == nil || frame.Empty() {
		return ""
	}
	crop := frame
	if !region.Empty() {
		roi := ExtractRegion(frame, region)
		defer roi.Close()
		if roi.Empty() {
			return ""
		}
		return e.textOf(roi)
	}
	return e.textOf(crop)
}

func (e *OCREngine) textOf(img gocv.Mat) string {
	text, err := e.rec.Text(img)
	if err != nil {
		LogDebug("OCR failed: %v", err)
		return ""
	}
	return text
}

// ExtractLine recognizes a crop as a single line of text.
func (e *OCREngine) ExtractLine(img gocv.Mat) string {
	if e.rec == nil || img.Empty() {
		return ""
	}
	text, err := e.rec.TextLine(img)
	if err != nil {
		LogDebug("OCR line failed: %v", err)
		return ""
	}
	return text
}

// ExtractWords returns word boxes for a crop.
func (e *OCREngine) ExtractWords(img gocv.Mat) []WordBox {
	if e.rec == nil || img.Empty() {
		return nil
	}
	words, err := e.rec.Words(img)
	if err != nil {
		LogDebug("OCR words failed: %v", err)
		return nil
	}
	return words
}

// ExtractNumbers recognizes a region and returns the digits found in it.
// ok is false when the text contained no digits.
func (e *OCREngine) ExtractNumbers(frame gocv.Mat, region Region) (int, bool) {
	return parseDigits(e.ExtractText(frame, region))
}

// ExtractHPInfo reads an HP bar region and parses the current/max pair.
func (e *OCREngine) ExtractHPInfo(frame gocv.Mat, region Region) HPReading {
	return parseHPText(e.ExtractText(frame, region))
}

// parseDigits strips non-digit characters and parses what remains.
func parseDigits(text string) (int, bool) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseHPText finds a "current/max" fraction in OCR text.
func parseHPText(text string) HPReading {
	m := hpPattern.FindStringSubmatch(text)
	if m == nil {
		return HPReading{}
	}
	current, err1 := strconv.Atoi(m[1])
	max, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return HPReading{}
	}
	return HPReading{Current: current, Max: max, Found: true}
}
