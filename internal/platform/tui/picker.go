package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/progress"
)

// TierModel picks a difficulty tier.
type TierModel struct {
	tiers     []config.Tier
	speeds    config.DifficultyConfig
	cursor    int
	width     int
	keyMapper *KeyMapper
	help      help.Model
	chosen    config.Tier
	back      bool
}

// NewTierModel creates the tier selector.
func NewTierModel(difficulty config.DifficultyConfig, width int) TierModel {
	return TierModel{
		tiers:     config.Tiers(),
		speeds:    difficulty,
		width:     width,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Update handles messages.
func (m TierModel) Update(msg tea.Msg) (TierModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// 1-3 pick a tier, the next number goes back.
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.tiers)+1 {
			if n == len(m.tiers)+1 {
				m.back = true
			} else {
				m.chosen = m.tiers[n-1]
			}
			return m, nil
		}

		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionBack, MenuActionQuit:
			m.back = true
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.tiers) {
				m.cursor++
			}
		case MenuActionSelect:
			if m.cursor == len(m.tiers) {
				m.back = true
			} else {
				m.chosen = m.tiers[m.cursor]
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the selector.
func (m TierModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Select Difficulty Level"), m.width))
	b.WriteString("\n\n")

	for i := 0; i <= len(m.tiers); i++ {
		var line string
		if i == len(m.tiers) {
			line = fmt.Sprintf("%d: Back to Main Menu", i+1)
		} else {
			speed, _ := m.speeds.InitialSpeed(m.tiers[i])
			line = fmt.Sprintf("%d: %-7s %s", i+1, m.tiers[i].Title(), dimStyle.Render(fmt.Sprintf("speed %.0f", speed)))
		}
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
	return b.String()
}

// Chosen returns the selected tier, or "" while choosing.
func (m TierModel) Chosen() config.Tier { return m.chosen }

// Back reports whether the player returned to the main menu.
func (m TierModel) Back() bool { return m.back }

// SkinModel picks the skin for the next run. Priced skins are shown but
// locked until bought.
type SkinModel struct {
	catalog   *progress.Catalog
	record    *progress.Record
	cursor    int
	width     int
	keyMapper *KeyMapper
	help      help.Model
	chosen    string
	back      bool
	err       error
}

// NewSkinModel creates the skin selector, starting on the last bought skin.
func NewSkinModel(cat *progress.Catalog, rec *progress.Record, width int) SkinModel {
	return SkinModel{
		catalog:   cat,
		record:    rec,
		cursor:    cat.DefaultIndex(rec),
		width:     width,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Update handles messages. Left/Right cycle like Up/Down.
func (m SkinModel) Update(msg tea.Msg) (SkinModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := m.catalog.Len()
		switch msg.String() {
		case "left", "h":
			m.cursor = (m.cursor - 1 + n) % n
			m.err = nil
			return m, nil
		case "right", "l":
			m.cursor = (m.cursor + 1) % n
			m.err = nil
			return m, nil
		}

		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionBack, MenuActionQuit:
			m.back = true
		case MenuActionUp:
			m.cursor = (m.cursor - 1 + n) % n
			m.err = nil
		case MenuActionDown:
			m.cursor = (m.cursor + 1) % n
			m.err = nil
		case MenuActionSelect:
			skin := m.catalog.Skins()[m.cursor]
			if err := m.catalog.CheckSelectable(m.record, skin.Name); err != nil {
				m.err = err
				return m, nil
			}
			m.chosen = skin.Name
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the selector.
func (m SkinModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Select Your Skin"), m.width))
	b.WriteString("\n\n")

	skins := m.catalog.Skins()
	current := skins[m.cursor]

	preview := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 4).
		Render(colorStyles[current.Color].Render(strings.Repeat(string(current.Glyph), 3) + "\n" +
			strings.Repeat(string(current.Glyph), 3)))
	for _, line := range strings.Split(preview, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	name := current.Name
	switch {
	case current.Placeholder:
		name += "  " + errorStyle.Render("(sprite failed to load)")
	case !current.Free() && !m.record.Owns(current.Name):
		name += "  " + dimStyle.Render(fmt.Sprintf("locked · %d coins in the shop", current.Price))
	}
	b.WriteString(centerText(fmt.Sprintf("< %s >", name), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("%d / %d", m.cursor+1, len(skins))), m.width))
	b.WriteString("\n\n")

	if m.err != nil {
		msg := m.err.Error()
		if errors.Is(m.err, progress.ErrSkinLocked) {
			msg = "Buy this skin in the shop first"
		}
		b.WriteString(centerText(errorStyle.Render(msg), m.width))
		b.WriteString("\n")
	}

	b.WriteString(centerText(dimStyle.Render("Use Left/Right Arrow Keys to Choose and Enter to Confirm"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keyMapper.Menu)), m.width))
	return b.String()
}

// Chosen returns the selected skin name, or "" while choosing.
func (m SkinModel) Chosen() string { return m.chosen }

// Back reports whether the player backed out.
func (m SkinModel) Back() bool { return m.back }
