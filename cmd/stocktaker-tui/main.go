package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/config"
	"github.com/dialastocktaker/stocktaker-tui/internal/logging"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	skipSplash := flag.Bool("skip-splash", false, "start at the login screen")
	debug := flag.Bool("debug", false, "enable the debug panel (ctrl+g) and debug logging")
	role := flag.String("role", "", "open a role dashboard directly, bypassing login")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *skipSplash {
		cfg.SkipSplash = true
	}
	if *debug {
		cfg.Debug = true
	}

	logger, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	catalog, err := mockdata.Load()
	if err != nil {
		return err
	}

	m := tui.NewRootModel(cfg, catalog, logger)
	if *role != "" {
		m = m.WithRole(*role)
	}

	logger.Info("starting", "splash_seconds", cfg.SplashSeconds, "skip_splash", cfg.SkipSplash, "role", *role)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
