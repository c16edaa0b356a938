package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"docpane/internal/config"
	"docpane/internal/docs"
	"docpane/internal/eventbus"
	"docpane/internal/logging"
	"docpane/internal/theme"
	"docpane/internal/ui"
)

func main() {
	// Parse command line arguments
	var docsDir string
	var themePref string
	var logLevel string
	flag.StringVar(&docsDir, "dir", "", "Directory to scan for documents")
	flag.StringVar(&docsDir, "d", "", "Directory to scan for documents (shorthand)")
	flag.StringVar(&themePref, "theme", "", "Color theme: auto, light or dark")
	flag.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	// If no directory specified, check for remaining args
	if docsDir == "" && flag.NArg() > 0 {
		docsDir = flag.Arg(0)
	}

	// Set up logging
	logFile, err := logging.OpenLogFile("docpane.log")
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if logLevel == "" {
		logLevel = os.Getenv("DOCPANE_LOG")
	}
	// When stdout is piped the TUI never owns the terminal, so logs
	// can go to stderr in human-readable form instead of the file
	logWriter := io.Writer(logFile)
	console := false
	if !isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stderr.Fd()) {
		logWriter = os.Stderr
		console = true
	}
	log, err := logging.New(logging.Options{
		Level:   logLevel,
		Console: console,
		Writer:  logWriter,
	})
	if err != nil {
		fmt.Printf("Error configuring logging: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("docpane starting")

	// Create event bus
	bus := eventbus.New(log)

	// Load or create configuration, consulting a .docpane.toml in the
	// docs dir when no user-level config exists
	configSvc := config.NewConfigServiceWithBus(bus)
	if docsDir != "" {
		configSvc.SetFallbackDir(docsDir)
	}
	cfg := loadOrCreateConfig(configSvc, docsDir, log)
	if themePref != "" {
		cfg.Theme = themePref
	}

	absDir, err := filepath.Abs(cfg.DocsDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}
	cfg.DocsDir = absDir
	log.Info().Str("dir", absDir).Str("theme", cfg.Theme).Msg("configuration ready")

	// Build the style resolver and pick the initial mode
	resolver, err := theme.NewResolver()
	if err != nil {
		fmt.Printf("Error building theme tables: %v\n", err)
		os.Exit(1)
	}
	mode := theme.ModeFromPreference(cfg.Theme)

	// Create the document loader
	loader := docs.NewLoaderService(bus, log)

	// Create the UI model
	model := ui.NewModel(cfg, bus, resolver, mode, log)

	// Create the program
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward domain events into the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn().Str("type", string(e.Type())).Msg("UI event channel full, dropping")
		}
	}
	uiEvents := []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventDocsLoaded,
		eventbus.EventDocSelected,
		eventbus.EventThemeChanged,
		eventbus.EventPanicRaised,
		eventbus.EventPanicCleared,
		eventbus.EventConfigChanged,
		eventbus.EventError,
	}
	for _, et := range uiEvents {
		defer bus.Subscribe(et, forward)()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case e := <-eventChan:
				// Saves work off the event's own snapshot; the UI
				// goroutine owns the live settings
				if ev, ok := e.(eventbus.ConfigChangedEvent); ok {
					if err := configSvc.Save(configFromEvent(ev)); err != nil {
						log.Error().Err(err).Msg("failed to save config")
					}
					continue
				}
				p.Send(ui.EventMsg{Event: e})
			}
		}
	}()

	// Handle interrupts
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		p.Quit()
	}()

	// Kick off the initial load
	if err := loader.StartLoad(ctx, cfg.DocsDir); err != nil {
		log.Error().Err(err).Msg("initial load failed to start")
	}

	finalModel, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Run returns the final model, so the snapshot reads settled state
	if m, ok := finalModel.(*ui.Model); ok {
		snapshot := m.ConfigSnapshot()
		if snapshot.UISettings.RememberLast {
			if err := configSvc.Save(snapshot); err != nil {
				log.Error().Err(err).Msg("failed to save config on exit")
			}
		}
	}
	log.Info().Msg("docpane exiting")
}

// configFromEvent rebuilds a savable config from a settings snapshot
func configFromEvent(e eventbus.ConfigChangedEvent) *config.Config {
	return &config.Config{
		Version: 1,
		DocsDir: e.DocsDir,
		Theme:   e.Theme,
		UISettings: config.UISettings{
			ShowNumbers:  e.ShowNumbers,
			RememberLast: e.RememberLast,
			LastIndex:    e.LastIndex,
		},
	}
}

// loadOrCreateConfig loads the user config, falling back to defaults
// when none exists yet. A -dir flag overrides the configured docs dir.
func loadOrCreateConfig(configSvc config.ConfigService, dirFlag string, log zerolog.Logger) *config.Config {
	cfg, err := configSvc.Load()
	if err != nil {
		log.Warn().Err(err).Msg("no config found, using defaults")
		cfg = config.DefaultConfig()
	}
	if dirFlag != "" {
		cfg.DocsDir = dirFlag
	}
	return cfg
}
