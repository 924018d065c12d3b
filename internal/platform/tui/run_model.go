package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/dash"
)

// RunModel drives one dash.RunLoop from Bubble Tea ticks.
// Keys pressed between ticks are batched into the next input frame.
type RunModel struct {
	loop       *dash.RunLoop
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	result     dash.Result
	ended      bool // loop terminated
	done       bool // hold elapsed; session may leave
	quitting   bool // the whole program should exit
}

// NewRunModel wraps a prepared run loop.
func NewRunModel(loop *dash.RunLoop, cfg core.RuntimeConfig) RunModel {
	return RunModel{
		loop:       loop,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
}

// runSeed returns the configured seed, or a time-based one.
func runSeed(cfg core.RuntimeConfig) *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Init starts the tick loop.
func (m RunModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is scaled to the screen, so a resize keeps the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		return m, nil

	case TickMsg:
		return m.handleTick()

	case holdDoneMsg:
		m.done = true
		return m, nil
	}

	return m, nil
}

func (m RunModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.ended {
		// Any key skips the end screen.
		m.done = true
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m RunModel) handleTick() (tea.Model, tea.Cmd) {
	if m.ended {
		return m, nil
	}

	res := m.loop.Step(m.inputFrame)
	m.inputFrame.Clear()

	if res.State != dash.StateTerminated {
		return m, tickCmd(m.config.TickRate)
	}

	m.ended = true
	m.result = m.loop.Result()
	if m.result.Hold > 0 && !m.quitting {
		return m, holdCmd(m.result.Hold)
	}
	m.done = true
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *RunModel) saveScreenshot() {
	m.loop.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dash_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, the run continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the run and a one-line help bar.
func (m RunModel) View() string {
	m.loop.Render(m.screen)
	status := m.help.View(m.keyMapper.Run)
	if m.ended && m.result.PersistErr != nil {
		status = errorStyle.Render("progress not saved: " + m.result.PersistErr.Error())
	}
	return RenderScreen(m.screen) + "\n" + dimStyle.Render(status)
}

// Done reports whether the run is over and its end screen has been shown.
func (m RunModel) Done() bool { return m.done }

// IsQuitting reports whether the player asked to leave the program.
func (m RunModel) IsQuitting() bool { return m.quitting }

// Result returns the run result once Done.
func (m RunModel) Result() dash.Result { return m.result }
