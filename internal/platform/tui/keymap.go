package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// RunKeyMap holds the in-run bindings.
type RunKeyMap struct {
	Jump  key.Binding
	Fall  key.Binding
	Pause key.Binding
	Exit  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Fall, k.Pause, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k RunKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Jump, k.Fall}, {k.Pause, k.Exit, k.Quit}}
}

// DefaultRunKeyMap returns default run bindings.
func DefaultRunKeyMap() RunKeyMap {
	return RunKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "right", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Fall: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "save & menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap holds the bindings shared by every menu screen.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to run actions and menu
// actions. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Run  RunKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Run:  DefaultRunKeyMap(),
		Menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message to a run action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Run.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Run.Exit):
		return core.ActionExitToMenu
	case key.Matches(msg, km.Run.Pause):
		return core.ActionTogglePause
	case key.Matches(msg, km.Run.Jump):
		return core.ActionJump
	case key.Matches(msg, km.Run.Fall):
		return core.ActionFall
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	frame.Set(action)
	return action == core.ActionQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.Menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.Menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Menu.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
