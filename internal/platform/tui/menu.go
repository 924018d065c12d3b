package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/progress"
)

// Navigation is the main menu's decision.
type Navigation int

const (
	NavNone Navigation = iota
	NavStartRun
	NavShowScores
	NavOpenShop
	NavQuit
)

func (n Navigation) String() string {
	switch n {
	case NavStartRun:
		return "start"
	case NavShowScores:
		return "scores"
	case NavOpenShop:
		return "shop"
	case NavQuit:
		return "quit"
	default:
		return "none"
	}
}

type menuItem struct {
	title string
	nav   Navigation
}

// MenuModel is the main menu. Entries can be picked with the cursor or
// by their number.
type MenuModel struct {
	items     []menuItem
	cursor    int
	width     int
	height    int
	record    *progress.Record
	profile   string
	keyMapper *KeyMapper
	help      help.Model
	chosen    Navigation
}

// NewMenuModel creates the main menu.
func NewMenuModel(rec *progress.Record, profile string, width, height int) MenuModel {
	return MenuModel{
		items: []menuItem{
			{"Start Game", NavStartRun},
			{"View Best Scores", NavShowScores},
			{"Shop", NavOpenShop},
			{"Quit", NavQuit},
		},
		width:     width,
		height:    height,
		record:    rec,
		profile:   profile,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.items) {
			m.cursor = n - 1
			m.chosen = m.items[m.cursor].nav
			return m, nil
		}

		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.chosen = NavQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = m.items[m.cursor].nav
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G E O M E T R Y   D A S H"), m.width))
	b.WriteString("\n\n")

	wallet := fmt.Sprintf("%s  ·  best %d  ·  %s",
		coinStyle.Render(fmt.Sprintf("● %d", m.record.Coins)), m.record.Best(), m.profile)
	b.WriteString(centerText(wallet, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%d: %s", i+1, item.title)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line + " ")
		} else {
			line = "  " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keyMapper.Menu)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the selected destination, or NavNone.
func (m MenuModel) Chosen() Navigation { return m.chosen }
