package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordchips/audio"
	"github.com/lixenwraith/wordchips/config"
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/logging"
	"github.com/lixenwraith/wordchips/puzzle"
)

var (
	configFlag = flag.String("config", "", "TOML config file (default $WORDCHIPS_CONFIG)")
	deckFlag   = flag.String("decks", "", "Deck directory (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *deckFlag != "" {
		cfg.DeckDir = *deckFlag
	}

	logger, logCloser, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	decks := loadDecks(cfg.DeckDir, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Screen teardown goes through the restore hook only: on panic Restore runs
	// first and HandleCrash finds nothing left to restore
	core.SetRestore(screen.Fini)
	defer func() { core.HandleCrash(recover()) }()
	defer core.Restore()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.Clear()

	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = cfg.Audio.Enabled && !*muteFlag
	audioCfg.MasterVolume = cfg.Audio.MasterVolume
	player := audio.NewPlayer(audioCfg, nil, logger)
	player.Start()
	defer player.Stop()

	app := NewApp(screen, cfg, decks, player, logger)
	defer app.Close()

	logger.Info("wordchips started", "puzzles", len(app.entries), "deck_dir", cfg.DeckDir)
	app.Run()
}

// loadDecks reads the deck directory, falling back to the built-in demos
func loadDecks(dir string, logger *slog.Logger) []puzzle.Deck {
	m := puzzle.NewManager(dir, logger)
	if err := m.Discover(); err != nil {
		logger.Warn("deck discovery failed", "error", err)
	}
	decks := m.LoadAll()
	if len(puzzle.Flatten(decks)) == 0 {
		logger.Info("no decks found, using built-in demos", "dir", dir)
		return puzzle.Builtin()
	}
	return decks
}
