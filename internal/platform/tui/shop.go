package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/dash"
	"github.com/vovakirdan/tui-dash/internal/progress"
)

// ShopModel sells the priced skins for coins. Every successful purchase is
// persisted straight away.
type ShopModel struct {
	catalog   *progress.Catalog
	record    *progress.Record
	persister dash.Persister
	audio     dash.AudioSink
	logger    *log.Logger
	items     []progress.Skin
	cursor    int
	width     int
	keyMapper *KeyMapper
	help      help.Model
	status    string
	failed    bool
	back      bool
}

// NewShopModel creates the shop. persister, audio and logger may be nil.
func NewShopModel(cat *progress.Catalog, rec *progress.Record, persister dash.Persister, audio dash.AudioSink, logger *log.Logger, width int) ShopModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return ShopModel{
		catalog:   cat,
		record:    rec,
		persister: persister,
		audio:     audio,
		logger:    logger,
		items:     cat.ForSale(),
		width:     width,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Update handles messages. Entries can also be bought by number; the number
// after the last skin leaves the shop.
func (m ShopModel) Update(msg tea.Msg) (ShopModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.items)+1 {
			m.cursor = n - 1
			return m.activate(), nil
		}

		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionBack, MenuActionQuit:
			m.back = true
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items) {
				m.cursor++
			}
		case MenuActionSelect:
			return m.activate(), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m ShopModel) activate() ShopModel {
	if m.cursor == len(m.items) {
		m.back = true
		return m
	}
	return m.buy(m.items[m.cursor].Name)
}

func (m ShopModel) buy(name string) ShopModel {
	skin, err := progress.Purchase(m.record, m.catalog, name)
	switch {
	case errors.Is(err, progress.ErrInsufficientCoins):
		m.status, m.failed = fmt.Sprintf("Not enough coins for %s", name), true
		return m
	case errors.Is(err, progress.ErrAlreadyOwned):
		m.status, m.failed = fmt.Sprintf("You already own %s", name), true
		return m
	case err != nil:
		m.status, m.failed = err.Error(), true
		return m
	}

	m.logger.Info("skin purchased", "skin", skin.Name, "price", skin.Price, "coins", m.record.Coins)
	if m.audio != nil {
		m.audio.Emit(dash.EventPurchase)
	}
	m.status, m.failed = fmt.Sprintf("Bought %s!", skin.Name), false

	if m.persister != nil {
		if err := m.persister.Persist(m.record); err != nil {
			m.logger.Warn("could not save purchase", "error", err)
			m.status, m.failed = fmt.Sprintf("Bought %s, but progress was not saved: %v", skin.Name, err), true
		}
	}
	return m
}

// View renders the shop.
func (m ShopModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Shop"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(coinStyle.Render(fmt.Sprintf("Coins: %d", m.record.Coins)), m.width))
	b.WriteString("\n\n")

	for i := 0; i <= len(m.items); i++ {
		var line string
		if i == len(m.items) {
			line = fmt.Sprintf("%d: Exit Shop", i+1)
		} else {
			s := m.items[i]
			line = fmt.Sprintf("%d: Buy %s (%d Coins)", i+1, s.Name, s.Price)
			if m.record.Owns(s.Name) {
				line += " ✓"
			}
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
	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(centerText(style.Render(m.status), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keyMapper.Menu)), m.width))
	return b.String()
}

// Back reports whether the player left the shop.
func (m ShopModel) Back() bool { return m.back }
