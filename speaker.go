// Package main - speaker.go
//
// This file implements speaker attribution: given a frame, decide which
// on-screen text is player chat, which is NPC dialog, and which words are
// character nameplates.
//
// Pipeline:
//   1. Word-level OCR over two contrast variants of the frame (plain and
//      CLAHE+Otsu inverted), deduplicated by text and position
//   2. Dialog bubbles found by blur -> inverted adaptive threshold ->
//      ellipse close -> contour size filter
//   3. Character positions approximated by the round ground shadows under
//      sprites (Otsu invert, ellipse close, blob size band)
//   4. Each word attributed in priority order: inside a bubble -> dialog;
//      bottom-left quadrant -> player chat; near a character -> nameplate;
//      short mid-screen token -> nameplate
//   5. Chat tokens regrouped into lines by 15px row buckets; dialog
//      tokens joined; nameplates deduplicated
//
// When no nameplate is found the detector falls back to morphology-based
// plate boxes and then to zoomed OCR above each character shadow.
package main

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"gocv.io/x/gocv"
)

// SpeakerRole identifies who a piece of text belongs to.
type SpeakerRole string

const (
	RolePlayer  SpeakerRole = "player"
	RoleNPC     SpeakerRole = "npc"
	RoleUnknown SpeakerRole = "unknown"
)

// SpeakerText is one attributed piece of text.
type SpeakerText struct {
	Text       string
	Confidence float64
	Region     Region
	HasRegion  bool
}

// Nameplate is a detected character name with its classified role.
type Nameplate struct {
	Name   string
	Region Region
	Role   SpeakerRole
}

// SpeakerReport is the full attribution result for one frame.
type SpeakerReport struct {
	PlayerChat []SpeakerText
	NPCDialog  []SpeakerText
	Nameplates []SpeakerText
}

// SpeakerDetector attributes on-screen text to speakers.
type SpeakerDetector struct {
	ocr *OCREngine
}

// NewSpeakerDetector creates a speaker detector.
func NewSpeakerDetector(ocr *OCREngine) *SpeakerDetector {
	return &SpeakerDetector{ocr: ocr}
}

// ocrWordVariants runs word OCR on contrast variants and dedupes.
func (s *SpeakerDetector) ocrWordVariants(frame gocv.Mat) []WordBox {
	var words []WordBox
	seen := map[string]bool{}

	collect := func(img gocv.Mat) {
		for _, w := range s.ocr.ExtractWords(img) {
			key := fmt.Sprintf("%s|%d,%d", w.Text, w.Region.X, w.Region.Y)
			if seen[key] {
				continue
			}
			seen[key] = true
			words = append(words, w)
		}
	}

	collect(frame)

	inv := ContrastInvert(frame)
	defer inv.Close()
	if !inv.Empty() {
		bgr := gocv.NewMat()
		gocv.CvtColor(inv, &bgr, gocv.ColorGrayToBGR)
		collect(bgr)
		bgr.Close()
	}
	return words
}

// findDialogBubbles returns bubble-like regions sorted top-to-bottom.
func (s *SpeakerDetector) findDialogBubbles(frame gocv.Mat) []Region {
	if frame.Empty() {
		return nil
	}
	width, height := frame.Cols(), frame.Rows()

	gray := ToGray(frame)
	defer gray.Close()
	gocv.GaussianBlur(gray, &gray, image.Pt(5, 5), 0, 0, gocv.BorderDefault)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.AdaptiveThreshold(gray, &thresh, 255, gocv.AdaptiveThresholdGaussian, gocv.ThresholdBinaryInv, 11, 2)

	closed := MorphClose(thresh, gocv.MorphEllipse, 15, 7, 2)
	defer closed.Close()

	frameArea := float64(width * height)
	var bubbles []Region
	for _, b := range FindBoxes(closed, 0, 0, 0, 0) {
		area := float64(b.Region.Area())
		if area < frameArea*0.0008 || area > frameArea*0.5 {
			continue
		}
		if b.Region.H < 18 || b.Region.W < 40 {
			continue
		}
		bubbles = append(bubbles, b.Region)
	}
	sort.Slice(bubbles, func(i, j int) bool {
		if bubbles[i].Y != bubbles[j].Y {
			return bubbles[i].Y < bubbles[j].Y
		}
		return bubbles[i].X < bubbles[j].X
	})
	return bubbles
}

// findCharacterShadows approximates character positions by the round
// ground shadows under sprites.
func (s *SpeakerDetector) findCharacterShadows(frame gocv.Mat) []Point {
	if frame.Empty() {
		return nil
	}
	width, height := frame.Cols(), frame.Rows()

	binary := OtsuBinary(frame, 7)
	defer binary.Close()
	inv := gocv.NewMat()
	defer inv.Close()
	gocv.BitwiseNot(binary, &inv)

	closed := MorphClose(inv, gocv.MorphEllipse, 9, 9, 1)
	defer closed.Close()

	frameArea := float64(width * height)
	var centers []Point
	for _, b := range FindBoxes(closed, 0, 0, 0, 0) {
		area := float64(b.Region.Area())
		if area < frameArea*0.0004 || area > frameArea*0.02 {
			continue
		}
		centers = append(centers, b.Region.Center())
	}
	return centers
}

// Detect runs the full attribution pipeline on one frame.
func (s *SpeakerDetector) Detect(frame gocv.Mat) SpeakerReport {
	report := SpeakerReport{}
	if frame.Empty() {
		return report
	}
	width, height := frame.Cols(), frame.Rows()
	diag := Point{}.Distance(Point{X: width, Y: height})

	words := s.ocrWordVariants(frame)
	bubbles := s.findDialogBubbles(frame)
	shadows := s.findCharacterShadows(frame)

	var chatTokens, dialogTokens, plateTokens []WordBox

	for _, w := range words {
		center := w.Region.Center()

		attributed := false
		for _, b := range bubbles {
			if b.Contains(center) {
				dialogTokens = append(dialogTokens, w)
				attributed = true
				break
			}
		}
		if attributed {
			continue
		}

		if float64(center.X) < float64(width)*0.33 && float64(center.Y) > float64(height)*0.6 {
			chatTokens = append(chatTokens, w)
			continue
		}

		near := false
		for _, sh := range shadows {
			if center.Distance(sh) < diag*0.08 {
				near = true
				break
			}
		}
		if near {
			plateTokens = append(plateTokens, w)
			continue
		}

		if len(w.Text) > 1 && len(w.Text) <= 24 &&
			float64(center.Y) > float64(height)*0.05 && float64(center.Y) < float64(height)*0.75 {
			plateTokens = append(plateTokens, w)
		}
	}

	report.PlayerChat = groupChatLines(chatTokens)
	report.NPCDialog = joinDialog(dialogTokens)
	report.Nameplates = dedupePlates(plateTokens)

	if len(report.Nameplates) == 0 {
		report.Nameplates = s.nameplatesByMorphology(frame)
	}
	if len(report.Nameplates) == 0 {
		report.Nameplates = s.nameplatesByShadows(frame, shadows)
	}
	return report
}

// groupChatLines buckets chat tokens into 15px rows and joins each row
// left to right.
func groupChatLines(tokens []WordBox) []SpeakerText {
	if len(tokens) == 0 {
		return nil
	}
	rows := map[int][]WordBox{}
	for _, t := range tokens {
		key := t.Region.Center().Y / 15
		rows[key] = append(rows[key], t)
	}
	keys := make([]int, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var lines []SpeakerText
	for _, k := range keys {
		row := rows[k]
		sort.Slice(row, func(i, j int) bool { return row[i].Region.X < row[j].Region.X })
		parts := make([]string, len(row))
		conf := row[0].Confidence
		for i, t := range row {
			parts[i] = t.Text
			if t.Confidence > conf {
				conf = t.Confidence
			}
		}
		lines = append(lines, SpeakerText{Text: strings.Join(parts, " "), Confidence: conf})
	}
	return lines
}

// joinDialog orders dialog tokens in reading order and joins them.
func joinDialog(tokens []WordBox) []SpeakerText {
	if len(tokens) == 0 {
		return nil
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Region.Y != tokens[j].Region.Y {
			return tokens[i].Region.Y < tokens[j].Region.Y
		}
		return tokens[i].Region.X < tokens[j].Region.X
	})
	parts := make([]string, len(tokens))
	conf := tokens[0].Confidence
	for i, t := range tokens {
		parts[i] = t.Text
		if t.Confidence > conf {
			conf = t.Confidence
		}
	}
	return []SpeakerText{{Text: strings.Join(parts, " "), Confidence: conf}}
}

// dedupePlates keeps the first occurrence of each nameplate text.
func dedupePlates(tokens []WordBox) []SpeakerText {
	var plates []SpeakerText
	seen := map[string]bool{}
	for _, t := range tokens {
		if seen[t.Text] {
			continue
		}
		seen[t.Text] = true
		plates = append(plates, SpeakerText{Text: t.Text, Confidence: t.Confidence, Region: t.Region, HasRegion: true})
	}
	return plates
}

// nameplatesByMorphology finds wide plate-shaped boxes with a gradient
// and close, then reads each with upscaled single-line OCR. Candidates in
// the bottom 15% of the frame are skipped, that strip is the chat area.
func (s *SpeakerDetector) nameplatesByMorphology(frame gocv.Mat) []SpeakerText {
	if frame.Empty() {
		return nil
	}
	width, height := frame.Cols(), frame.Rows()

	gray := ToGray(frame)
	defer gray.Close()
	gocv.GaussianBlur(gray, &gray, image.Pt(3, 3), 0, 0, gocv.BorderDefault)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(25, 7))
	grad := gocv.NewMat()
	gocv.MorphologyEx(gray, &grad, gocv.MorphGradient, kernel)
	kernel.Close()
	defer grad.Close()

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(grad, &thresh, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)

	closed := MorphClose(thresh, gocv.MorphRect, 9, 3, 2)
	defer closed.Close()

	frameArea := float64(width * height)
	var plates []SpeakerText
	seen := map[string]bool{}
	for _, b := range FindBoxes(closed, 0, 0, 0, 0) {
		area := float64(b.Region.Area())
		if area < frameArea*0.0002 || area > frameArea*0.02 {
			continue
		}
		if b.Region.H == 0 || float64(b.Region.W)/float64(b.Region.H) < 2.0 {
			continue
		}
		if float64(b.Region.Y) > float64(height)*0.85 {
			continue
		}
		text := s.readPlate(frame, b.Region)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		plates = append(plates, SpeakerText{Text: text, Confidence: 80, Region: b.Region, HasRegion: true})
	}
	return plates
}

// nameplatesByShadows reads the strip just above each character shadow.
func (s *SpeakerDetector) nameplatesByShadows(frame gocv.Mat, shadows []Point) []SpeakerText {
	if frame.Empty() {
		return nil
	}
	width, height := frame.Cols(), frame.Rows()

	var plates []SpeakerText
	seen := map[string]bool{}
	for _, sh := range shadows {
		rw := int(float64(width) * 0.12)
		rh := int(float64(height) * 0.06)
		rx := sh.X - rw/2
		ry := sh.Y - int(float64(height)*0.06) - rh
		region := NewRegion(rx, ry, rw, rh).ClampTo(width, height)
		if region.Empty() {
			continue
		}
		text := s.readPlate(frame, region)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		plates = append(plates, SpeakerText{Text: text, Confidence: 80, Region: region, HasRegion: true})
	}
	return plates
}

// readPlate crops, upscales and single-line OCRs a plate candidate.
func (s *SpeakerDetector) readPlate(frame gocv.Mat, region Region) string {
	crop := ExtractRegion(frame, region)
	defer crop.Close()
	if crop.Empty() {
		return ""
	}
	big := UpscaleCubic(crop, 3)
	defer big.Close()
	binary := OtsuBinary(big, 0)
	defer binary.Close()

	text := strings.TrimSpace(s.ocr.ExtractLine(binary))
	text = strings.ReplaceAll(text, "\n", " ")
	if text == "" || len(text) > 24 {
		return ""
	}
	return text
}

// ClassifyNameplates assigns a role to each nameplate: player when the
// name shows up as a prefix of a chat line, npc when the plate sits near
// the dialog bubble, unknown otherwise.
func (s *SpeakerDetector) ClassifyNameplates(report SpeakerReport, frame gocv.Mat) []Nameplate {
	var bubbleCenter Point
	haveBubble := false
	if len(report.NPCDialog) > 0 {
		bubbles := s.findDialogBubbles(frame)
		if len(bubbles) > 0 {
			sort.Slice(bubbles, func(i, j int) bool { return bubbles[i].Area() > bubbles[j].Area() })
			bubbleCenter = bubbles[0].Center()
			haveBubble = true
		}
	}

	diag := 0.0
	if !frame.Empty() {
		diag = Point{}.Distance(Point{X: frame.Cols(), Y: frame.Rows()})
	}

	chatLines := make([]string, len(report.PlayerChat))
	for i, chat := range report.PlayerChat {
		chatLines[i] = chat.Text
	}

	var classified []Nameplate
	for _, plate := range report.Nameplates {
		role := classifyPlateRole(plate.Text, chatLines, plate.Region.Center(), bubbleCenter, haveBubble && plate.HasRegion, diag)
		classified = append(classified, Nameplate{Name: plate.Text, Region: plate.Region, Role: role})
	}
	return classified
}

// classifyPlateRole is the pure attribution rule behind
// ClassifyNameplates, split out for direct use.
func classifyPlateRole(name string, chatLines []string, plateCenter Point, bubbleCenter Point, haveBubble bool, diag float64) SpeakerRole {
	lower := strings.ToLower(name)
	for _, line := range chatLines {
		if strings.Contains(strings.ToLower(line), lower) {
			return RolePlayer
		}
	}
	if haveBubble && plateCenter.Distance(bubbleCenter) < diag*0.12 {
		return RoleNPC
	}
	return RoleUnknown
}
