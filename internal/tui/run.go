package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/alertbar/internal/config"
)

// RunOptions configures the demo.
type RunOptions struct {
	Config     *config.Config
	ConfigPath string // Path to watch for changes (empty = no watching)
	Screens    int
	Background colorful.Color
	Logger     *slog.Logger
}

// Run starts the demo with the given options.
func Run(opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Start config watcher if a path was provided
	var events chan tea.Msg
	var watcher *config.Watcher
	if opts.ConfigPath != "" {
		events = make(chan tea.Msg, 4)
		send := func(msg tea.Msg) {
			select {
			case events <- msg:
			default:
				logger.Warn("dropping config event, demo is busy")
			}
		}

		var err error
		watcher, err = config.NewWatcher(opts.ConfigPath,
			func(cfg *config.Config) { send(ConfigReloadedMsg{Config: cfg}) },
			func(err error) { send(ConfigErrorMsg{Err: err}) },
			logger,
		)
		if err != nil {
			logger.Warn("failed to create config watcher", "error", err)
		} else if err := watcher.Start(); err != nil {
			logger.Warn("failed to start config watcher", "error", err)
		}
	}

	m := New(Options{
		Config:     opts.Config,
		Screens:    opts.Screens,
		Background: opts.Background,
		Events:     events,
		Logger:     logger,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.cfg.TUI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, programOpts...)

	_, err := p.Run()

	// Stop watcher on exit
	if watcher != nil {
		if err := watcher.Stop(); err != nil {
			logger.Warn("failed to stop config watcher", "error", err)
		}
	}

	return err
}
