package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"flipview/internal/config"
	"flipview/internal/infra/logx"
	"flipview/internal/transcript"
	"flipview/internal/ui"
)

const syntheticSeed = 42

func main() {
	if err := run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath     = flag.String("config", config.DefaultPath(), "path to the TOML config file")
		transcriptPath = flag.String("transcript", "", "JSON Lines transcript to view (overrides config)")
		synthetic      = flag.Int("synthetic", -1, "view N generated messages instead of a transcript")
		logFile        = flag.String("log-file", "", "append JSON logs to this file")
		logLevel       = flag.String("log-level", "", "debug, info, warn or error")
		theme          = flag.String("theme", "", "glamour style for markdown bodies (dark, light, notty, ...)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *transcriptPath != "" {
		cfg.Transcript = *transcriptPath
	}
	if *synthetic >= 0 {
		cfg.Transcript = ""
		cfg.SyntheticCount = *synthetic
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	// Enable debug logging when FLIPVIEW_DEBUG is set
	if len(os.Getenv("FLIPVIEW_DEBUG")) > 0 {
		cfg.LogLevel = "debug"
		if cfg.LogFile == "" {
			cfg.LogFile = "debug.log"
		}
	}

	logx.SetMinLevel(logx.ParseLevel(cfg.LogLevel))
	if cfg.LogFile != "" {
		f, err := logx.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		defer logx.Sync()
		// bubbletea and anything else on the standard logger end up in the same file
		log.SetFlags(0)
		log.SetOutput(logx.StdlogWriter(logx.LevelInfo, f))
	}

	msgs, source, err := loadMessages(cfg)
	if err != nil {
		return err
	}
	logx.With(logx.LevelInfo, "starting viewer",
		zap.String("source", source),
		zap.Int("messages", len(msgs)),
		zap.Int("page_size", cfg.PageSize),
	)

	final, err := tea.NewProgram(
		ui.New(cfg, transcript.NewFeed(msgs)),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ui.Model); ok {
		snap := m.Metrics()
		logx.With(logx.LevelInfo, "viewer closed",
			zap.Int64("layouts", snap.Layouts),
			zap.Int64("items_measured", snap.ItemsMeasured),
			zap.Int64("items_rendered", snap.ItemsRendered),
			zap.Int64("contract_errors", snap.ContractErrors),
			zap.Int("max_rendered", snap.MaxRendered),
		)
	}
	return nil
}

func loadMessages(cfg config.Config) ([]transcript.Message, string, error) {
	if cfg.Transcript == "" {
		return transcript.Synthetic(cfg.SyntheticCount, syntheticSeed), "synthetic", nil
	}
	msgs, err := transcript.LoadFile(cfg.Transcript)
	if err != nil {
		return nil, cfg.Transcript, err
	}
	return msgs, cfg.Transcript, nil
}
