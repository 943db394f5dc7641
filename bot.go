// Package main - bot.go
//
// This file assembles the whole bot: capture, detection, the state
// machine, and the per-state controllers, then runs the main loop.
//
// Main Loop (per frame):
//   1. Grab a screenshot of the game window
//   2. Classify the game state and extract state details
//   3. Refresh the tracked quest (rate limited internally)
//   4. Feed the state machine, which dispatches to the matching handler
//   5. Sleep whatever remains of the frame budget
//
// The loop runs in its own goroutine; Start and Stop are safe to call
// from the tray menu or a signal handler.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// screenshotDir receives debug battle frames.
const screenshotDir = "logs/screenshots"

// BotController owns every component and runs the perception loop.
type BotController struct {
	cfg      *Config
	capture  *ScreenCapture
	ocr      *OCREngine
	detector *GameStateDetector
	sm       *StateMachine
	input    *InputSimulator
	stats    *Statistics

	pokedex *Pokedex
	team    *TeamManager
	maps    *MapData

	battle  *BattleController
	catcher *CaptureController
	nav     *NavigationController
	quests  *QuestController
	speaker *SpeakerDetector

	lastGameState GameState

	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
}

// NewBotController builds the full component graph from the config.
func NewBotController(cfg *Config) (*BotController, error) {
	capture, err := NewScreenCapture(cfg.Screen)
	if err != nil {
		return nil, fmt.Errorf("screen capture: %w", err)
	}

	recognizer, err := NewTextRecognizer(cfg.OCR)
	if err != nil {
		return nil, fmt.Errorf("ocr engine: %w", err)
	}
	ocr := NewOCREngine(recognizer)

	tuning := DefaultDetectorTuning()
	if cfg.Detector.BattleConfirmationFrames > 0 {
		tuning.ConfirmationFrames = cfg.Detector.BattleConfirmationFrames
	}
	detector := NewGameStateDetector(ocr, tuning)

	input := NewInputSimulator(cfg.Security)
	stats := NewStatistics()
	pokedex := NewPokedex("data/pokedex.json", NewPokeAPIFetcher())
	team := NewTeamManager("data/known_moves.json")
	maps := NewMapData("data/maps.json")
	strategy := NewBattleStrategy(cfg.Battle, pokedex)
	nav := NewNavigationController(input)
	questDet := NewQuestDetector(ocr)

	bot := &BotController{
		cfg:      cfg,
		capture:  capture,
		ocr:      ocr,
		detector: detector,
		sm:       NewStateMachine(),
		input:    input,
		stats:    stats,
		pokedex:  pokedex,
		team:     team,
		maps:     maps,
		battle:   NewBattleController(capture, detector, input, strategy, team, stats, cfg.Battle),
		catcher:  NewCaptureController(input, stats, cfg.Capture),
		nav:      nav,
		quests:   NewQuestController(questDet, input, nav, maps, cfg.Quests),
		speaker:  NewSpeakerDetector(ocr),
	}
	bot.registerHandlers()
	return bot, nil
}

func (b *BotController) registerHandlers() {
	b.sm.RegisterHandler(BotStateExploring, b.handleExploring)
	b.sm.RegisterHandler(BotStateBattling, b.handleBattling)
	b.sm.RegisterHandler(BotStateCapturing, b.handleCapturing)
	b.sm.RegisterHandler(BotStateWaiting, b.handleWaiting)
	b.sm.RegisterHandler(BotStateIdle, b.handleIdle)
	b.sm.RegisterHandler(BotStateError, b.handleError)
}

// Start launches the main loop. A second Start while running is a no-op.
func (b *BotController) Start() {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.stopCh = make(chan struct{})
	b.doneCh = make(chan struct{})
	b.mu.Unlock()

	LogInfo("Bot started (strategy %s, %d fps)", b.cfg.GetStrategy(), b.cfg.Screen.FPS)
	go b.loop()
}

// Stop halts the main loop and waits for it to drain.
func (b *BotController) Stop() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.running = false
	close(b.stopCh)
	done := b.doneCh
	b.mu.Unlock()

	<-done
	battles, captures, bph, uptime := b.stats.GetStats()
	LogInfo("Bot stopped: %d battles, %d capture attempts, %.1f battles/h, uptime %s",
		battles, captures, bph, uptime)
}

// IsRunning reports whether the loop is active.
func (b *BotController) IsRunning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Close releases OCR and other held resources. Call after Stop.
func (b *BotController) Close() {
	if err := b.ocr.Close(); err != nil {
		LogWarn("OCR close: %v", err)
	}
}

// SetStrategy rebuilds the battle strategy by name at runtime.
func (b *BotController) SetStrategy(name string) {
	b.cfg.SetStrategy(name)
	b.battle.SetStrategy(NewBattleStrategy(b.cfg.Battle, b.pokedex))
}

// Stats exposes the session counters for the tray UI.
func (b *BotController) Stats() *Statistics {
	return b.stats
}

func (b *BotController) loop() {
	defer close(b.doneCh)

	fps := b.cfg.Screen.FPS
	if fps <= 0 {
		fps = 10
	}
	frameTime := time.Second / time.Duration(fps)

	for {
		select {
		case <-b.stopCh:
			return
		default:
		}

		start := time.Now()
		b.tick()

		if remaining := frameTime - time.Since(start); remaining > 0 {
			select {
			case <-b.stopCh:
				return
			case <-time.After(remaining):
			}
		}
	}
}

// tick runs one perception-decision-action cycle.
func (b *BotController) tick() {
	frame, err := b.capture.CaptureMat()
	if err != nil {
		LogError("Frame capture failed: %v", err)
		time.Sleep(time.Second)
		return
	}
	defer frame.Close()

	info := b.detector.GetStateInfo(frame)
	state := info.State

	if b.lastGameState == GameStateInBattle && state != GameStateInBattle {
		b.battle.BattleEnded(state != GameStateUnknown)
	}
	b.lastGameState = state

	b.quests.UpdateQuest(frame)

	if b.cfg.Debug.CaptureOnBattle && state == GameStateInBattle {
		b.saveBattleFrame(frame)
	}

	if state == GameStateDialog {
		b.logDialogSpeakers(frame)
	}

	b.sm.Update(state, info)
}

// logDialogSpeakers attributes visible dialog text to its speakers so
// the log shows who is talking.
func (b *BotController) logDialogSpeakers(frame gocv.Mat) {
	report := b.speaker.Detect(frame)
	for _, line := range report.NPCDialog {
		LogDebug("NPC dialog: %s", line.Text)
	}
	for _, plate := range b.speaker.ClassifyNameplates(report, frame) {
		if plate.Role != RoleUnknown {
			LogDebug("Nameplate %s classified as %s", plate.Name, plate.Role)
		}
	}
}

// saveBattleFrame writes the current frame for offline inspection.
func (b *BotController) saveBattleFrame(frame gocv.Mat) {
	if err := os.MkdirAll(screenshotDir, 0o755); err != nil {
		LogWarn("Create screenshot directory: %v", err)
		return
	}
	path := filepath.Join(screenshotDir, fmt.Sprintf("battle_%d.png", time.Now().Unix()))
	if ok := gocv.IMWrite(path, frame); !ok {
		LogWarn("Write battle frame failed: %s", path)
	}
}

// handleExploring walks around looking for encounters.
func (b *BotController) handleExploring(info StateInfo) error {
	b.nav.Explore()
	return nil
}

// handleBattling runs one battle turn when auto battle is on.
func (b *BotController) handleBattling(info StateInfo) error {
	if !b.cfg.Battle.AutoBattle {
		return nil
	}
	return b.battle.HandleBattle(info)
}

// handleCapturing throws a ball or flees depending on the encounter.
func (b *BotController) handleCapturing(info StateInfo) error {
	if !b.cfg.Capture.AutoCapture {
		return nil
	}
	return b.catcher.HandleEncounter(info)
}

// handleWaiting advances dialogs and menus by pressing space.
func (b *BotController) handleWaiting(info StateInfo) error {
	b.input.PressKey("space", 0)
	time.Sleep(500 * time.Millisecond)
	return nil
}

// handleIdle sits out until the screen becomes recognizable again.
func (b *BotController) handleIdle(info StateInfo) error {
	time.Sleep(100 * time.Millisecond)
	return nil
}

// handleError recovers by resetting the state machine toward idle.
func (b *BotController) handleError(info StateInfo) error {
	LogWarn("Recovering from error state")
	b.sm.TransitionTo(BotStateIdle)
	time.Sleep(time.Second)
	return nil
}
