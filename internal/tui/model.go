// Package tui provides the BubbleTea-based terminal host for alert bars and
// the interactive demo built on it.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/alertbar/internal/alertbar"
	"github.com/jmylchreest/alertbar/internal/config"
	"github.com/jmylchreest/alertbar/internal/icon"
)

var screenTitles = []string{"Inbox", "Drafts", "Archive", "Settings"}

// preset is a canned bar the demo can show.
type preset struct {
	title      string
	body       string
	image      string
	persistent bool
}

var (
	presetInfo       = preset{title: "Sync finished", body: "12 items updated in the background", image: icon.NameInfo}
	presetWarning    = preset{title: "Storage almost full", body: "92% of your quota is in use", image: icon.NameCaution}
	presetError      = preset{title: "Upload failed", body: "Connection reset by peer", image: icon.NameExclamation}
	presetSuccess    = preset{title: "Saved", image: icon.NameCheck}
	presetPersistent = preset{title: "Tap to dismiss", body: "This one stays until you tap it", image: icon.NameInfo, persistent: true}
	presetWelcome    = preset{title: "Welcome", body: "Press ? to see what you can do", image: icon.NameInfo}
)

// ConfigReloadedMsg delivers a config file that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a config file that changed but could not be used.
type ConfigErrorMsg struct {
	Err error
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type clockMsg struct{}

// stats is shared with bar callbacks, which outlive any one copy of Model.
type stats struct {
	shown         int
	taps          int
	dismissed     int
	lastDismissed time.Time
	lastTitle     string
	lastByUser    bool
}

// Model is the demo application.
type Model struct {
	cfg      *config.Config
	grid     Grid
	host     *Host
	manager  *alertbar.Manager
	renderer *Renderer
	logger   *slog.Logger
	clock    func() time.Time

	screens    []*Screen
	active     int
	nextScreen int

	keys KeyMap
	help help.Model

	width  int
	height int
	ready  bool

	stats     *stats
	statusMsg string
	statusErr bool

	// Config reloads arrive here from the watcher goroutine.
	events <-chan tea.Msg
}

// Options configures a Model.
type Options struct {
	Config     *config.Config
	Screens    int
	Background colorful.Color
	Events     <-chan tea.Msg
	Clock      func() time.Time // Defaults to time.Now
	Logger     *slog.Logger
}

// New creates a new demo model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Screens < 1 {
		opts.Screens = 1
	}

	grid := Grid{
		CellWidth:  float64(cfg.TUI.CellWidth),
		CellHeight: float64(cfg.TUI.CellHeight),
	}
	host := NewHost(HostOptions{
		Grid:          grid,
		StatusBarRows: cfg.TUI.StatusBarRows,
		FPS:           cfg.TUI.FPS,
		Clock:         opts.Clock,
		Logger:        opts.Logger,
	})

	m := Model{
		cfg:      cfg,
		grid:     grid,
		host:     host,
		manager:  alertbar.NewManager(host, opts.Logger),
		renderer: NewRenderer(grid, opts.Background),
		logger:   opts.Logger,
		clock:    opts.Clock,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		stats:    &stats{},
		events:   opts.Events,
	}
	for i := 0; i < opts.Screens; i++ {
		m.screens = append(m.screens, m.newScreen())
	}

	return m
}

// Init initializes the demo.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickClock(),
		m.waitForEvent(),
	)
}

// waitForEvent waits for the next message from the config watcher.
func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.host.Handle(msg) {
		return m, m.host.Cmd()
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, s := range m.screens {
			s.Resize(msg.Width, msg.Height)
		}
		if !m.ready {
			m.ready = true
			cmd = m.show(presetWelcome)
		}

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case ConfigReloadedMsg:
		m.cfg.Bar = msg.Config.Bar
		m.cfg.TUI.FPS = msg.Config.TUI.FPS
		m.host.SetFPS(msg.Config.TUI.FPS)
		if bg := msg.Config.TUI.Background; bg != "" {
			if c, err := colorful.Hex(bg); err == nil {
				m.cfg.TUI.Background = bg
				m.renderer.SetBackground(c)
			}
		}
		m.logger.Info("applied reloaded config")
		cmd = tea.Batch(m.setStatus("Config reloaded", false), m.waitForEvent())

	case ConfigErrorMsg:
		cmd = tea.Batch(m.setStatus("Config error: "+msg.Err.Error(), true), m.waitForEvent())

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		cmd = tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false

	case clockMsg:
		cmd = tickClock()
	}

	return m, tea.Batch(cmd, m.host.Cmd())
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Info):
		return m, m.show(presetInfo)
	case key.Matches(msg, m.keys.Warning):
		return m, m.show(presetWarning)
	case key.Matches(msg, m.keys.Error):
		return m, m.show(presetError)
	case key.Matches(msg, m.keys.Success):
		return m, m.show(presetSuccess)
	case key.Matches(msg, m.keys.Persistent):
		return m, m.show(presetPersistent)
	case key.Matches(msg, m.keys.Burst):
		for i, p := range []preset{presetInfo, presetWarning, presetError} {
			p.title = fmt.Sprintf("%s (%d/3)", p.title, i+1)
			if cmd := m.show(p); cmd != nil {
				return m, cmd
			}
		}
	case key.Matches(msg, m.keys.Tap):
		m.host.TapTop(m.screen().ID())
	case key.Matches(msg, m.keys.DetachAll):
		if err := m.manager.DetachAll(m.screen()); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
	case key.Matches(msg, m.keys.NextScreen):
		m.active = (m.active + 1) % len(m.screens)
	case key.Matches(msg, m.keys.NewScreen):
		s := m.newScreen()
		s.Resize(m.width, m.height)
		m.screens = append(m.screens, s)
		m.active = len(m.screens) - 1
	case key.Matches(msg, m.keys.CloseScreen):
		return m.closeScreen()
	}
	return m, nil
}

// handleMouse taps the bar under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if !m.cfg.TUI.Mouse {
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	m.host.TapAt(m.screen().ID(), m.grid.Center(msg.X, msg.Y))
}

// show attaches a preset bar to the active screen. It returns a status
// command when the attach fails.
func (m Model) show(p preset) tea.Cmd {
	opts := m.cfg.Bar.Clone()
	opts.Image = p.image
	if p.persistent {
		opts.DismissAfter = 0
		opts.TapToDismiss = true
	}

	st := m.stats
	clock := m.clock
	opts.Callbacks.OnTap = func(*alertbar.Bar) {
		st.taps++
	}
	opts.Callbacks.OnDismissed = func(bar *alertbar.Bar, userInitiated bool) {
		st.dismissed++
		st.lastDismissed = clock()
		st.lastTitle = bar.Content().Title
		st.lastByUser = userInitiated
	}

	_, err := m.manager.Attach(m.screen(), alertbar.Content{Title: p.title, Body: p.body}, &opts)
	if err != nil {
		m.logger.Warn("failed to show bar", "title", p.title, "error", err)
		return m.setStatus("Cannot show bar: "+err.Error(), true)
	}
	st.shown++
	return nil
}

func (m Model) closeScreen() (Model, tea.Cmd) {
	if len(m.screens) == 1 {
		return m, m.setStatus("Cannot close the last screen", true)
	}

	s := m.screen()
	s.Close()
	if err := m.manager.DetachAll(s); err != nil {
		m.logger.Warn("failed to detach bars", "screen", s.ID(), "error", err)
	}

	screens := make([]*Screen, 0, len(m.screens)-1)
	for _, other := range m.screens {
		if other != s {
			screens = append(screens, other)
		}
	}
	m.screens = screens
	if m.active >= len(m.screens) {
		m.active = len(m.screens) - 1
	}
	return m, m.setStatus("Closed "+s.Title(), false)
}

func (m *Model) newScreen() *Screen {
	m.nextScreen++
	title := fmt.Sprintf("Screen %d", m.nextScreen)
	if m.nextScreen <= len(screenTitles) {
		title = screenTitles[m.nextScreen-1]
	}
	id := fmt.Sprintf("screen-%d", m.nextScreen)
	return NewScreen(id, title, m.grid, m.cfg.TUI.NavBarRows)
}

func (m Model) screen() *Screen {
	return m.screens[m.active]
}

func (m Model) setStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// View renders the demo.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	s := m.screen()
	lines := m.screenLines(s)
	lines = m.renderer.Overlay(lines, m.host.Views(s.ID()), m.host.Presentation)
	m.drawChrome(lines, s)

	return strings.Join(lines, "\n")
}

// screenLines renders the page under the bars: a list of the bars on the
// screen and their states.
func (m Model) screenLines(s *Screen) []string {
	lines := make([]string, m.height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", m.width)
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	row := m.cfg.TUI.StatusBarRows + m.cfg.TUI.NavBarRows + 4

	bars := m.manager.Bars(s)
	body := []string{fmt.Sprintf("  %d bar(s) on %s", len(bars), s.Title())}
	for _, bar := range bars {
		body = append(body, fmt.Sprintf("    %-10s %-28s %s",
			bar.State(), ansi.Truncate(bar.Content().Title, 28, "…"), bar.ID()))
	}

	for i, text := range body {
		if row+i >= len(lines)-1 {
			break
		}
		lines[row+i] = placeOverlay(0, dim.Render(ansi.Truncate(text, m.width, "…")), lines[row+i])
	}
	return lines
}

// drawChrome draws the status line, the screen title and the help line.
// Chrome is drawn last so entering bars slide out from beneath it.
func (m Model) drawChrome(lines []string, s *Screen) {
	row := 0
	for i := 0; i < m.cfg.TUI.StatusBarRows && row < len(lines); i++ {
		text := ""
		if i == 0 {
			text = m.statusLine()
		}
		lines[row] = m.fit(text, statusStyle(m.statusErr && m.statusMsg != ""))
		row++
	}

	navStyle := lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236")).Foreground(lipgloss.Color("15"))
	ruleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Background(lipgloss.Color("236"))
	for i := 0; i < m.cfg.TUI.NavBarRows && row < len(lines); i++ {
		switch {
		case i == 0:
			title := fmt.Sprintf(" ‹ %s  (%d/%d)", s.Title(), m.active+1, len(m.screens))
			lines[row] = m.fit(title, navStyle)
		case i == m.cfg.TUI.NavBarRows-1:
			lines[row] = m.fit(strings.Repeat("─", m.width), ruleStyle)
		default:
			lines[row] = m.fit("", navStyle)
		}
		row++
	}

	helpLines := strings.Split(m.help.View(m.keys), "\n")
	start := len(lines) - len(helpLines)
	for i, text := range helpLines {
		if start+i < row {
			continue
		}
		lines[start+i] = m.fit(text, lipgloss.NewStyle())
	}
}

func (m Model) statusLine() string {
	if m.statusMsg != "" {
		return " " + m.statusMsg
	}

	st := m.stats
	line := fmt.Sprintf(" alertbar  shown %d  tapped %d  dismissed %d", st.shown, st.taps, st.dismissed)
	if !st.lastDismissed.IsZero() {
		how := "timer"
		if st.lastByUser {
			how = "tap"
		}
		line += fmt.Sprintf("  last: %q by %s %s", st.lastTitle, how,
			humanize.RelTime(st.lastDismissed, m.clock(), "ago", "from now"))
	}
	return line
}

// fit pads or truncates text to the terminal width and styles it.
func (m Model) fit(text string, style lipgloss.Style) string {
	text = ansi.Truncate(text, m.width, "…")
	if w := ansi.StringWidth(text); w < m.width {
		text += strings.Repeat(" ", m.width-w)
	}
	return style.Render(text)
}

func statusStyle(isErr bool) lipgloss.Style {
	style := lipgloss.NewStyle().Reverse(true)
	if isErr {
		style = lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15"))
	}
	return style
}
