// Package main - quest.go
//
// This file implements the quest panel reader. The quest tracker sits in
// the top-right corner of the frame; the detector probes it with OCR,
// parses the text into title/objective, and locates the Goto button by
// color when one is advertised.
//
// Parsing Rules:
//   - The first cleaned line longer than 3 characters becomes the title
//   - A line containing an objective keyword becomes the objective
//   - "goto"/"go to" anywhere in the text flags the Goto button
//   - With no keyword match, the second line is used as the objective
//
// Goto Button Location:
//   1. Blue/green/orange masks over the panel, closed and filtered by
//      area and aspect; the largest candidate wins
//   2. Fallback: pale button colors over the bottom 40% of the panel
package main

import (
	"strings"

	"gocv.io/x/gocv"
)

var questObjectiveKeywords = []string{
	"challenge", "defeat", "go to", "find", "collect", "talk to", "visit",
}

// QuestDetector reads the quest tracker panel.
type QuestDetector struct {
	ocr *OCREngine
}

// NewQuestDetector creates a quest detector.
func NewQuestDetector(ocr *OCREngine) *QuestDetector {
	return &QuestDetector{ocr: ocr}
}

// panelRegion returns the quest tracker region for a frame size.
func (q *QuestDetector) panelRegion(width, height int) Region {
	return FracRegion(width, height, 0.7, 0.05, 0.28, 0.25)
}

// DetectQuestUI reports whether the quest tracker is visible.
func (q *QuestDetector) DetectQuestUI(frame gocv.Mat) bool {
	if frame.Empty() {
		return false
	}
	region := q.panelRegion(frame.Cols(), frame.Rows())
	text := q.ocr.ExtractText(frame, region)
	return strings.Contains(strings.ToLower(text), "quest")
}

// ExtractActiveQuest reads and parses the quest panel. Returns nil when
// the panel is not visible or nothing parseable was read.
func (q *QuestDetector) ExtractActiveQuest(frame gocv.Mat) *QuestInfo {
	if !q.DetectQuestUI(frame) {
		return nil
	}
	region := q.panelRegion(frame.Cols(), frame.Rows())
	panel := ExtractRegion(frame, region)
	defer panel.Close()
	if panel.Empty() {
		return nil
	}

	enhanced := EnhanceText(panel)
	defer enhanced.Close()
	text := q.ocr.ExtractText(enhanced, Region{})

	info := parseQuestText(text)
	if info != nil {
		LogInfo("Quest detected: %s", info.Title)
		LogDebug("Quest objective: %s", info.Objective)
	}
	return info
}

// parseQuestText turns raw panel OCR text into a QuestInfo.
func parseQuestText(text string) *QuestInfo {
	if len(strings.TrimSpace(text)) < 5 {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	info := QuestInfo{}

	for _, line := range lines {
		if len(line) <= 3 || isAllDigits(line) {
			continue
		}
		clean := strings.TrimSpace(strings.NewReplacer("|", "", "_", "").Replace(line))
		if len(clean) > 3 {
			info.Title = clean
			break
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range questObjectiveKeywords {
			if strings.Contains(lower, kw) {
				info.Objective = line
				break
			}
		}
		if info.Objective != "" {
			break
		}
	}

	lowerAll := strings.ToLower(text)
	if strings.Contains(lowerAll, "goto") || strings.Contains(lowerAll, "go to") {
		info.HasGotoButton = true
	}

	if info.Objective == "" && len(lines) > 1 && len(lines[1]) > 5 {
		info.Objective = lines[1]
	}

	if info.Title == "" && info.Objective == "" {
		return nil
	}
	return &info
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FindGotoButton locates the Goto button inside the quest panel and
// returns its center in frame coordinates.
func (q *QuestDetector) FindGotoButton(frame gocv.Mat) (Point, bool) {
	if frame.Empty() {
		return Point{}, false
	}
	region := q.panelRegion(frame.Cols(), frame.Rows())
	panel := ExtractRegion(frame, region)
	defer panel.Close()
	if panel.Empty() {
		return Point{}, false
	}

	enhanced := EnhanceText(panel)
	text := q.ocr.ExtractText(enhanced, Region{})
	enhanced.Close()

	if strings.Contains(strings.ToLower(text), "goto") {
		if p, ok := q.coloredButton(panel); ok {
			return Point{X: region.X + p.X, Y: region.Y + p.Y}, true
		}
	}

	if p, ok := q.paleButton(panel); ok {
		return Point{X: region.X + p.X, Y: region.Y + p.Y}, true
	}
	return Point{}, false
}

// coloredButton finds the largest blue/green/orange button-shaped contour
// in the panel.
func (q *QuestDetector) coloredButton(panel gocv.Mat) (Point, bool) {
	hsv := ToHSV(panel)
	defer hsv.Close()

	blue := ColorMask(hsv, hsvButtonBlue)
	defer blue.Close()
	green := ColorMask(hsv, hsvButtonGreen)
	defer green.Close()
	orange := ColorMask(hsv, hsvButtonOrange)
	defer orange.Close()

	combined := gocv.NewMat()
	defer combined.Close()
	gocv.BitwiseOr(blue, green, &combined)
	gocv.BitwiseOr(combined, orange, &combined)

	closed := MorphClose(combined, gocv.MorphRect, 3, 3, 1)
	defer closed.Close()

	boxes := FindBoxes(closed, 200, 10000, 1.2, 6.0)
	if len(boxes) == 0 {
		return Point{}, false
	}
	best := boxes[0]
	for _, b := range boxes[1:] {
		if b.Area > best.Area {
			best = b
		}
	}
	center := best.Region.Center()
	LogDebug("Goto button found at (%d, %d)", center.X, center.Y)
	return center, true
}

// paleButton probes the bottom 40% of the panel for a light button face.
func (q *QuestDetector) paleButton(panel gocv.Mat) (Point, bool) {
	bottomY := int(float64(panel.Rows()) * 0.6)
	bottom := ExtractRegion(panel, NewRegion(0, bottomY, panel.Cols(), panel.Rows()-bottomY))
	defer bottom.Close()
	if bottom.Empty() {
		return Point{}, false
	}

	hsv := ToHSV(bottom)
	defer hsv.Close()
	mask := ColorMask(hsv, hsvPale)
	defer mask.Close()

	boxes := FindBoxes(mask, 300, 8000, 0, 0)
	if len(boxes) == 0 {
		return Point{}, false
	}
	center := boxes[0].Region.Center()
	return Point{X: center.X, Y: bottomY + center.Y}, true
}
