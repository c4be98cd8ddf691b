package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/folio/config"
	"github.com/qyinm/folio/ui"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalogPath := flag.String("catalog", cfg.CatalogPath, "Path to a YAML catalog (default: built-in)")
	catalogURL := flag.String("url", cfg.CatalogURL, "URL of a YAML catalog or HTML gallery page")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("folio version %s\n", version)
		os.Exit(0)
	}

	cfg.CatalogPath = *catalogPath
	cfg.CatalogURL = *catalogURL

	logger := slog.New(slog.DiscardHandler)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "folio")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	source := cfg.Source()
	logger.Info("starting", "version", version, "source", fmt.Sprintf("%T", source))

	p := tea.NewProgram(ui.NewModel(source, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
