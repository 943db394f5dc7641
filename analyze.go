// Package main - analyze.go
//
// This file implements offline frame analysis for tuning the detector.
// Given a saved screenshot (for example one written by the debug battle
// capture), it runs every perception probe against the frame, logs the
// raw numbers next to their thresholds, and writes an annotated copy
// with the probe regions outlined.
//
// Usage:
//   pokeone-bot --analyze logs/screenshots/battle_1724500000.png
//
// Region Colors:
//   red     fight button probe
//   magenta battle button strip
//   green   my HP region
//   blue    enemy HP region
//   yellow  quest tracker panel
//   cyan    dialog strip (bottom 30%)
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
)

// AnalyzeFrame runs the detector probes over a saved screenshot and
// writes an annotated copy next to it.
func AnalyzeFrame(path string, cfg *Config) error {
	img, err := loadPNG(path)
	if err != nil {
		return fmt.Errorf("load frame: %w", err)
	}
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	LogInfo("Analyzing %s (%dx%d)", path, width, height)

	frame, err := rgbaToBGR(img)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	defer frame.Close()

	recognizer, err := NewTextRecognizer(cfg.OCR)
	if err != nil {
		return fmt.Errorf("ocr engine: %w", err)
	}
	ocr := NewOCREngine(recognizer)
	defer ocr.Close()

	tuning := DefaultDetectorTuning()
	detector := NewGameStateDetector(ocr, tuning)

	hsv := ToHSV(frame)
	defer hsv.Close()

	fightRegion := FracRegion(width, height, 0.4, 0.75, 0.2, 0.15)
	fightCrop := ExtractRegion(hsv, fightRegion)
	fightMass := redMass(fightCrop, 100, 100)
	fightCrop.Close()
	LogInfo("Fight button red mass: %.0f (threshold %.0f)", fightMass, tuning.FightButtonRedMass)

	stripRegion := FracRegion(width, height, 0.35, 0.82, 0.3, 0.13)
	stripCrop := ExtractRegion(hsv, stripRegion)
	for _, band := range []struct {
		name string
		mass float64
	}{
		{"red", redMass(stripCrop, 120, 80)},
		{"blue", colorMass(stripCrop, hsvBlue)},
		{"yellow", colorMass(stripCrop, hsvYellow)},
		{"green", colorMass(stripCrop, hsvGreen)},
	} {
		LogInfo("Button strip %s mass: %.0f (threshold %.0f)", band.name, band.mass, tuning.ButtonStripMass)
	}
	stripCrop.Close()

	bottom := FracRegion(width, height, 0.0, 0.7, 1.0, 0.3)
	bottomCrop := ExtractRegion(frame, bottom)
	density := EdgeDensity(bottomCrop)
	bottomCrop.Close()
	LogInfo("Dialog edge density: %.3f (threshold %.3f)", density, tuning.DialogEdgeDensity)

	state := detector.DetectState(frame)
	// Run twice so temporal confirmation can settle on a battle frame.
	state = detector.DetectState(frame)
	LogInfo("Detected state: %s", state)

	info := detector.GetStateInfo(frame)
	if info.Battle != nil {
		LogInfo("Battle info: my %s vs %s %s",
			info.Battle.MyHP.String(), info.Battle.EnemyPokemon, info.Battle.EnemyHP.String())
	}
	if info.Encounter != nil {
		LogInfo("Encounter info: %s Lv %d", info.Encounter.PokemonName, info.Encounter.Level)
	}

	annotated := annotateRegions(img, map[string]Region{
		"fight":  fightRegion,
		"strip":  stripRegion,
		"my_hp":  FracRegion(width, height, 0.1, 0.7, 0.3, 0.1),
		"foe_hp": FracRegion(width, height, 0.6, 0.1, 0.3, 0.1),
		"quest":  FracRegion(width, height, 0.7, 0.05, 0.28, 0.25),
		"dialog": bottom,
	})

	outPath := strings.TrimSuffix(path, ".png") + "_annotated.png"
	if err := savePNG(outPath, annotated); err != nil {
		return fmt.Errorf("save annotated frame: %w", err)
	}
	LogInfo("Annotated frame written to %s", outPath)
	return nil
}

// regionColors maps probe names to their outline colors.
var regionColors = map[string]color.RGBA{
	"fight":  {255, 0, 0, 255},
	"strip":  {255, 0, 255, 255},
	"my_hp":  {0, 255, 0, 255},
	"foe_hp": {0, 0, 255, 255},
	"quest":  {255, 255, 0, 255},
	"dialog": {0, 255, 255, 255},
}

// annotateRegions outlines each named probe region on a copy of the
// frame.
func annotateRegions(img *image.RGBA, regions map[string]Region) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)

	width := out.Bounds().Dx()
	height := out.Bounds().Dy()
	for name, region := range regions {
		col, ok := regionColors[name]
		if !ok {
			col = color.RGBA{255, 255, 255, 255}
		}
		drawRect(out, region.ClampTo(width, height), col, 2)
	}
	return out
}

// drawRect outlines a region with the given thickness.
func drawRect(img *image.RGBA, r Region, col color.RGBA, thickness int) {
	if r.Empty() {
		return
	}
	for t := 0; t < thickness; t++ {
		for x := r.X; x < r.X+r.W; x++ {
			img.SetRGBA(x, r.Y+t, col)
			img.SetRGBA(x, r.Y+r.H-1-t, col)
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			img.SetRGBA(r.X+t, y, col)
			img.SetRGBA(r.X+r.W-1-t, y, col)
		}
	}
}

// loadPNG reads a PNG file into an RGBA image.
func loadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	if rgba, ok := decoded.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(decoded.Bounds())
	draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	return rgba, nil
}

// savePNG writes an image as PNG.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
