package main

import (
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"lifefutures/pkg/config"
	"lifefutures/pkg/game/gameplay"
	"lifefutures/pkg/game/highscore"
	"lifefutures/pkg/game/menu"
	"lifefutures/pkg/game/renderer"
	"lifefutures/pkg/game/renderer/tui"
	"lifefutures/pkg/game/state"
)

func initGettext(cfg *config.Config) {
	if cfg.LocaleDir == "" {
		return
	}
	gotext.Configure(cfg.LocaleDir, cfg.Lang, "default")
}

// initLogging sends diagnostic logs to the configured file, or nowhere, so
// they never interleave with the terminal UI.
func initLogging(cfg *config.Config) io.Closer {
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	log.SetOutput(f)
	return f
}

func buildStore(cfg *config.Config) highscore.Store {
	if cfg.Ephemeral {
		log.Println("highscore kept in memory only")
		return highscore.NewMemoryStore()
	}
	store := highscore.NewFileStore(cfg.HighscoreFile)
	log.Printf("highscore file %s", store.Path())
	return store
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if closer := initLogging(cfg); closer != nil {
		defer closer.Close()
	}
	initGettext(cfg)

	renderer.SetRenderer(tui.New())
	renderer.Init()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting, seed=%d", seed)

	ctrl := gameplay.NewController(rand.New(rand.NewSource(seed)), buildStore(cfg))

	for mainLoop(ctrl) {
	}

	renderer.Clear()
	log.Println("exiting")
}

// mainLoop handles one screen of the current phase and reports whether to keep going
func mainLoop(ctrl *gameplay.Controller) bool {
	snap := ctrl.Snapshot()

	switch snap.Phase {
	case state.PhaseStart:
		if menu.RunMainMenu(snap, nil) != menu.ChoicePlay {
			return false
		}
		ctrl.StartSession()
	case state.PhasePlaying:
		renderer.Clear()
		renderer.RenderFrame(snap)
		if gameplay.ProcessIntent(ctrl, renderer.GetInput()) {
			return false
		}
	case state.PhaseEnded:
		if menu.RunEndMenu(snap, nil) != menu.ChoicePlay {
			return false
		}
		ctrl.StartSession()
	}

	return true
}
