// Package main - tray.go
//
// This file implements the system tray UI using getlantern/systray.
//
// Menu Structure:
//   PokeOne Bot
//   ├─ Status: state | battles | battles/h | uptime (read-only)
//   ├─ Bot
//   │  ├─ Start
//   │  └─ Stop
//   ├─ Strategy
//   │  ├─ Aggressive
//   │  ├─ Defensive
//   │  ├─ Balanced
//   │  └─ Type Matchup (default)
//   └─ Quit (graceful shutdown)
//
// Each clickable item gets its own goroutine blocked on its ClickedCh,
// matching how systray delivers events. The status line is refreshed on
// a one second ticker.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/getlantern/systray"
)

// strategyNames are the selectable strategies, in menu order.
var strategyNames = []string{"aggressive", "defensive", "balanced", "type_matchup"}

// strategyLabels are the human readable menu titles for strategyNames.
var strategyLabels = []string{"Aggressive", "Defensive", "Balanced", "Type Matchup"}

// TrayApp manages the system tray menu and relays user actions to the
// bot controller.
type TrayApp struct {
	bot *BotController

	statusItem    *systray.MenuItem
	startItem     *systray.MenuItem
	stopItem      *systray.MenuItem
	strategyItems [4]*systray.MenuItem
}

// NewTrayApp creates a new tray application.
func NewTrayApp(bot *BotController) *TrayApp {
	return &TrayApp{bot: bot}
}

// Run starts the tray event loop. Blocks until Quit.
func (t *TrayApp) Run() {
	LogInfo("Starting system tray application")
	systray.Run(t.onReady, func() {
		if t.bot != nil {
			t.bot.Stop()
			t.bot.Close()
		}
		LogInfo("System tray exit complete")
	})
}

// onReady builds the menu once the tray is available.
func (t *TrayApp) onReady() {
	systray.SetTitle("PokeOne Bot")
	systray.SetTooltip("PokeOne automation bot")

	t.statusItem = systray.AddMenuItem("Status: Starting...", "Current bot status")
	t.statusItem.Disable()

	systray.AddSeparator()

	botMenu := systray.AddMenuItem("Bot", "Start or stop the bot")
	t.startItem = botMenu.AddSubMenuItem("Start", "Start the main loop")
	t.stopItem = botMenu.AddSubMenuItem("Stop", "Stop the main loop")

	systray.AddSeparator()

	strategyMenu := systray.AddMenuItem("Strategy", "Select battle strategy")
	for i, label := range strategyLabels {
		t.strategyItems[i] = strategyMenu.AddSubMenuItemCheckbox(label, "", false)
	}
	t.updateStrategyCheckmarks()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Quit the application")

	go t.handleEvents(quitItem)
	go t.statusLoop()

	LogInfo("System tray initialized")

	// Start the bot once the menu exists so status has something to show.
	go t.bot.Start()
}

// handleEvents listens for menu clicks.
func (t *TrayApp) handleEvents(quitItem *systray.MenuItem) {
	for i, name := range strategyNames {
		go t.handleStrategyClick(name, t.strategyItems[i])
	}

	for {
		select {
		case <-t.startItem.ClickedCh:
			LogInfo("Start requested from tray")
			t.bot.Start()
		case <-t.stopItem.ClickedCh:
			LogInfo("Stop requested from tray")
			t.bot.Stop()
		case <-quitItem.ClickedCh:
			LogInfo("Quit requested by user")
			t.bot.Stop()
			t.bot.Close()
			CloseLogger()
			systray.Quit()
			os.Exit(0)
		}
	}
}

// handleStrategyClick applies a strategy selection.
func (t *TrayApp) handleStrategyClick(name string, item *systray.MenuItem) {
	for {
		<-item.ClickedCh
		t.bot.SetStrategy(name)
		t.updateStrategyCheckmarks()
	}
}

// updateStrategyCheckmarks checks the active strategy, unchecks the rest.
func (t *TrayApp) updateStrategyCheckmarks() {
	active := t.bot.cfg.GetStrategy()
	for i, name := range strategyNames {
		if name == active {
			t.strategyItems[i].Check()
		} else {
			t.strategyItems[i].Uncheck()
		}
	}
}

// statusLoop refreshes the status line once a second.
func (t *TrayApp) statusLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		t.statusItem.SetTitle(t.statusText())
	}
}

// statusText renders the current status line.
func (t *TrayApp) statusText() string {
	if !t.bot.IsRunning() {
		return "Status: Stopped"
	}
	battles, _, bph, uptime := t.bot.Stats().GetStats()
	return fmt.Sprintf("Status: %s | %d battles | %.1f/h | %s",
		t.bot.sm.CurrentState().String(), battles, bph, uptime)
}
