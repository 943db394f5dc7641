// Package main implements an automated bot for the PokeOne MMO client.
//
// Architecture Overview:
// The bot watches the game purely through the screen and acts purely
// through synthetic input. Three concurrent pieces cooperate:
//
//   1. Main Loop Goroutine: captures the screen at a configurable frame
//      rate, classifies the game state (exploring, battle, encounter,
//      dialog, menu), and dispatches to the matching handler through a
//      validated state machine.
//
//   2. System Tray Goroutines: start/stop control, battle strategy
//      selection, and a live status line (state, battles, battles/h,
//      uptime).
//
//   3. Background I/O: the Pokedex fetches unknown species from PokeAPI
//      with a short timeout, and debug battle frames are written under
//      logs/screenshots when enabled.
//
// Shutdown:
// SIGINT/SIGTERM and the tray Quit item both run the same sequence:
// stop the loop, release the OCR client, close the log file, exit 0.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// CLI holds the command line flags.
type CLI struct {
	Config   string `short:"c" default:"config.yaml" help:"Path to the YAML configuration file."`
	LogLevel string `short:"l" default:"" help:"Override the configured log level (debug, info, warn, error)."`
	Strategy string `short:"s" default:"" help:"Override the configured battle strategy."`
	NoTray   bool   `help:"Run headless without the system tray."`
	Analyze  string `help:"Analyze a saved screenshot and exit." type:"existingfile"`
}

func main() {
	// Recover from panics so the log file records them.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			LogError("PANIC in main: %v", r)
			CloseLogger()
			os.Exit(2)
		}
	}()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("pokeone-bot"),
		kong.Description("Screen-reading automation bot for PokeOne."),
	)

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		LogWarn("Config load failed (%v), using defaults", err)
		cfg = NewConfig()
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.Strategy != "" {
		cfg.SetStrategy(cli.Strategy)
	}

	if err := InitLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		LogInfo("=== PokeOne Bot Shutdown ===")
		CloseLogger()
	}()

	LogInfo("=== PokeOne Bot Started ===")

	if cli.Analyze != "" {
		if err := AnalyzeFrame(cli.Analyze, cfg); err != nil {
			LogError("Frame analysis failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if !cfg.Enabled {
		LogWarn("Bot is disabled in configuration, exiting")
		return
	}

	bot, err := NewBotController(cfg)
	if err != nil {
		LogError("Bot initialization failed: %v", err)
		os.Exit(1)
	}

	// Graceful shutdown on Ctrl+C or kill.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		LogInfo("Signal received: %v, shutting down gracefully...", sig)
		bot.Stop()
		bot.Close()
		CloseLogger()
		os.Exit(0)
	}()

	if cli.NoTray {
		bot.Start()
		select {} // run until a signal arrives
	}

	// Tray blocks until Quit; it starts the bot once the menu is ready.
	tray := NewTrayApp(bot)
	tray.Run()
}
