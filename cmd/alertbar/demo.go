package main

import (
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/alertbar/internal/tui"
)

var demoOpts struct {
	screens int
	watch   bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive alert bar demo",
	Long: `Launch a terminal screen that shows alert bars on demand.

Bars stack below the screen title and dismiss themselves after the
configured delay. Tapping a bar (enter, space or a mouse click) dismisses
it early.

Key bindings:
  i/w/e/s     Show an info, warning, error or success bar
  b           Show a burst of three bars
  p           Show a bar that stays until tapped
  enter       Tap the top bar
  x           Dismiss every bar on the screen
  tab         Next screen
  n/c         Open or close a screen
  ?           Show help
  q           Quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().IntVar(&demoOpts.screens, "screens", 1,
		"Number of screens to open")
	demoCmd.Flags().BoolVar(&demoOpts.watch, "watch", false,
		"Reload bar options when the config file changes")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoOpts.screens < 1 {
		return fmt.Errorf("--screens must be at least 1, got %d", demoOpts.screens)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The demo owns the terminal; stderr logging would tear the screen.
	demoLogger := logger
	if globalOpts.logFile == "" {
		demoLogger = slog.New(slog.DiscardHandler)
	}

	watchPath := ""
	if demoOpts.watch {
		watchPath = configPath()
	}

	return tui.Run(tui.RunOptions{
		Config:     cfg,
		ConfigPath: watchPath,
		Screens:    demoOpts.screens,
		Background: terminalBackground(cfg.TUI.Background),
		Logger:     demoLogger,
	})
}

// terminalBackground resolves the color faded bars blend into.
func terminalBackground(configured string) colorful.Color {
	if configured != "" {
		if c, err := colorful.Hex(configured); err == nil {
			return c
		}
	}
	return termenv.ConvertToRGB(termenv.BackgroundColor())
}
