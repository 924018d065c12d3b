package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/dash"
	"github.com/vovakirdan/tui-dash/internal/progress"
)

type screenID int

const (
	screenMenu screenID = iota
	screenTier
	screenSkin
	screenRun
	screenScores
	screenShop
)

// SessionConfig is everything a session needs. Only Dash and Record are
// required.
type SessionConfig struct {
	Dash      config.DashConfig
	Runtime   core.RuntimeConfig
	Profile   string
	Record    *progress.Record
	Persister dash.Persister
	Frames    dash.FrameSink
	Audio     dash.AudioSink
	Logger    *log.Logger

	// Direct starts this run immediately and ends the session after it.
	Direct *dash.RunConfig
}

// SessionModel manages the full flow: menu -> tier -> skin -> run -> menu,
// plus the scoreboard and the shop. It is the top-level model for both the
// local menu and SSH sessions.
type SessionModel struct {
	cfg      SessionConfig
	catalog  *progress.Catalog
	screen   screenID
	menu     MenuModel
	tier     TierModel
	skin     SkinModel
	shop     ShopModel
	scores   ScoreboardModel
	run      *RunModel
	tierPick config.Tier
	runs     int
	status   string
	quitting bool
}

// NewSessionModel creates a session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Record == nil {
		cfg.Record = progress.New()
	}
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = cfg.Dash.World.FPS
	}

	m := SessionModel{
		cfg:     cfg,
		catalog: progress.NewCatalog(cfg.Dash.Skins),
	}
	m.menu = NewMenuModel(cfg.Record, cfg.Profile, cfg.Runtime.ScreenW, cfg.Runtime.ScreenH)
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.cfg.Direct != nil {
		return func() tea.Msg { return startDirectMsg{} }
	}
	return nil
}

type startDirectMsg struct{}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}
	if _, ok := msg.(startDirectMsg); ok {
		return m.startRun(m.cfg.Direct.Tier, m.cfg.Direct.Skin)
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
		return m.afterMenu(cmd)

	case screenTier:
		m.tier, cmd = m.tier.Update(msg)
		switch {
		case m.tier.Back():
			return m.toMenu(), nil
		case m.tier.Chosen() != "":
			m.tierPick = m.tier.Chosen()
			m.skin = NewSkinModel(m.catalog, m.cfg.Record, m.cfg.Runtime.ScreenW)
			m.screen = screenSkin
		}
		return m, cmd

	case screenSkin:
		m.skin, cmd = m.skin.Update(msg)
		switch {
		case m.skin.Back():
			m.tier = NewTierModel(m.cfg.Dash.Difficulty, m.cfg.Runtime.ScreenW)
			m.screen = screenTier
		case m.skin.Chosen() != "":
			return m.startRun(m.tierPick, m.skin.Chosen())
		}
		return m, cmd

	case screenRun:
		return m.updateRun(msg)

	case screenScores:
		m.scores, cmd = m.scores.Update(msg)
		if m.scores.Back() {
			return m.toMenu(), nil
		}
		return m, cmd

	case screenShop:
		m.shop, cmd = m.shop.Update(msg)
		if m.shop.Back() {
			return m.toMenu(), nil
		}
		return m, cmd
	}

	return m, nil
}

func (m SessionModel) afterMenu(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	w, h := m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH
	switch m.menu.Chosen() {
	case NavStartRun:
		m.status = ""
		m.tier = NewTierModel(m.cfg.Dash.Difficulty, w)
		m.screen = screenTier
	case NavShowScores:
		m.scores = NewScoreboardModel(m.cfg.Record, m.cfg.Profile, w, h)
		m.screen = screenScores
	case NavOpenShop:
		m.shop = NewShopModel(m.catalog, m.cfg.Record, m.cfg.Persister, m.cfg.Audio, m.cfg.Logger, w)
		m.screen = screenShop
	case NavQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// startRun builds a run loop and switches to the run screen.
func (m SessionModel) startRun(tier config.Tier, skin string) (tea.Model, tea.Cmd) {
	runtime := m.cfg.Runtime
	if runtime.Seed != 0 {
		// Reproducible but not identical from one run to the next.
		runtime.Seed += int64(m.runs)
	}
	m.runs++

	loop, err := dash.New(m.cfg.Dash, dash.RunConfig{Tier: tier, Skin: skin}, m.cfg.Record, dash.RunContext{
		Frames:    m.cfg.Frames,
		Audio:     m.cfg.Audio,
		Persister: m.cfg.Persister,
		Rand:      runSeed(runtime),
		Logger:    m.cfg.Logger.With("profile", m.cfg.Profile),
		TickRate:  runtime.TickRate,
	})
	if err != nil {
		m.cfg.Logger.Error("cannot start run", "tier", tier, "error", err)
		if m.cfg.Direct != nil {
			m.quitting = true
			return m, tea.Quit
		}
		m = m.toMenu()
		m.status = err.Error()
		return m, nil
	}

	rm := NewRunModel(loop, runtime)
	m.run = &rm
	m.screen = screenRun
	return m, rm.Init()
}

func (m SessionModel) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.run.Update(msg)
	if rm, ok := newModel.(RunModel); ok {
		m.run = &rm
	}

	if !m.run.Done() {
		return m, cmd
	}

	if m.run.IsQuitting() || m.cfg.Direct != nil {
		m.quitting = true
		return m, tea.Quit
	}
	return m.toMenu(), nil
}

func (m SessionModel) toMenu() SessionModel {
	m.menu = NewMenuModel(m.cfg.Record, m.cfg.Profile, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
	m.run = nil
	m.screen = screenMenu
	return m
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenTier:
		return m.tier.View()
	case screenSkin:
		return m.skin.View()
	case screenRun:
		if m.run != nil {
			return m.run.View()
		}
	case screenScores:
		return m.scores.View()
	case screenShop:
		return m.shop.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(errorStyle.Render(m.status), m.cfg.Runtime.ScreenW)
	}
	return view
}

// LastResult returns the result of the most recent run, if any finished.
func (m SessionModel) LastResult() (dash.Result, bool) {
	if m.run == nil || !m.run.Done() {
		return dash.Result{}, false
	}
	return m.run.Result(), true
}

// Record returns the session's progress record.
func (m SessionModel) Record() *progress.Record { return m.cfg.Record }

// Run starts a Bubble Tea program for the session and blocks until it ends.
func Run(cfg SessionConfig, opts ...tea.ProgramOption) (SessionModel, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewSessionModel(cfg), opts...)

	final, err := p.Run()
	if err != nil {
		return SessionModel{}, err
	}
	sm, _ := final.(SessionModel)
	return sm, nil
}
