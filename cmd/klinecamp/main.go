package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/config"
	"github.com/zappabad/klinecamp/internal/game"
	"github.com/zappabad/klinecamp/internal/logger"
	"github.com/zappabad/klinecamp/tui"
)

func main() {
	configPath := flag.String("config", "klinecamp.yaml", "path to the YAML config file")
	envFile := flag.String("env", ".env", "path to an optional .env file")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Create game
	gcfg := game.DefaultConfig()
	gcfg.Config = *cfg
	gcfg.Seed = *seed

	g, err := game.NewGame(gcfg, log)
	if err != nil {
		log.Error("failed to start game", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	// Create and run TUI
	model := tui.NewModel(g, log.Named("tui"))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
