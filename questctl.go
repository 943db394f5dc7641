// Package main - questctl.go
//
// This file keeps the active quest current and optionally follows it.
// Quest OCR is expensive, so updates are rate limited. Following a quest
// means clicking its goto button when one is visible, otherwise walking
// toward a location named in the objective text.
package main

import (
	"strings"
	"time"

	"gocv.io/x/gocv"
)

// questLocations are objective keywords we know how to head toward.
// Longer names are listed first so "pewter city gym" beats "gym".
var questLocations = []string{
	"pewter city gym",
	"pewter city",
	"viridian city",
	"cerulean city",
	"pallet town",
	"pokemon center",
	"gym",
}

// QuestController tracks and follows the active quest.
type QuestController struct {
	detector   *QuestDetector
	input      *InputSimulator
	nav        *NavigationController
	maps       *MapData
	autoFollow bool

	checkInterval time.Duration
	lastCheck     time.Time
	activeQuest   *QuestInfo
	following     bool
}

// NewQuestController wires quest tracking.
func NewQuestController(detector *QuestDetector, input *InputSimulator, nav *NavigationController, maps *MapData, cfg QuestConfig) *QuestController {
	interval := time.Duration(cfg.CheckInterval * float64(time.Second))
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &QuestController{
		detector:      detector,
		input:         input,
		nav:           nav,
		maps:          maps,
		autoFollow:    cfg.AutoFollow,
		checkInterval: interval,
	}
}

// UpdateQuest refreshes the active quest from the frame, at most once
// per check interval.
func (qc *QuestController) UpdateQuest(frame gocv.Mat) {
	if time.Since(qc.lastCheck) < qc.checkInterval {
		return
	}
	qc.lastCheck = time.Now()

	quest := qc.detector.ExtractActiveQuest(frame)
	if quest == nil {
		return
	}
	if qc.activeQuest == nil || qc.activeQuest.Title != quest.Title {
		LogInfo("Active quest: %s (%s)", quest.Title, quest.Objective)
	}
	qc.activeQuest = quest

	if qc.autoFollow {
		qc.FollowQuestObjective(frame)
	}
}

// ActiveQuest returns the last quest seen, or nil.
func (qc *QuestController) ActiveQuest() *QuestInfo {
	return qc.activeQuest
}

// IsFollowingQuest reports whether the controller is steering toward a
// quest objective.
func (qc *QuestController) IsFollowingQuest() bool {
	return qc.following
}

// FollowQuestObjective steers toward the active quest: click the goto
// button when present, otherwise walk toward a recognized location name.
func (qc *QuestController) FollowQuestObjective(frame gocv.Mat) {
	if qc.activeQuest == nil {
		qc.following = false
		return
	}

	if qc.activeQuest.HasGotoButton {
		if pt, ok := qc.detector.FindGotoButton(frame); ok {
			LogInfo("Clicking quest goto button at (%d, %d)", pt.X, pt.Y)
			qc.input.Click(pt.X, pt.Y, "left")
			qc.following = true
			time.Sleep(time.Second)
			return
		}
	}

	if loc := extractQuestLocation(qc.activeQuest.Objective); loc != "" {
		LogDebug("Heading toward quest location: %s", loc)
		if qc.maps != nil {
			qc.maps.SetCurrentMap(locationMapKey(loc))
		}
		qc.nav.Explore()
		qc.following = true
		return
	}
	qc.following = false
}

// locationMapKey turns a spoken location name into its map data key.
func locationMapKey(location string) string {
	return strings.ReplaceAll(strings.ToLower(location), " ", "_")
}

// extractQuestLocation returns the first known location named in the
// objective text, or "".
func extractQuestLocation(objective string) string {
	text := strings.ToLower(objective)
	for _, loc := range questLocations {
		if strings.Contains(text, loc) {
			return loc
		}
	}
	return ""
}
