package core

// Action is a discrete player intent for one tick.
// Mapping physical keys onto actions is the platform's job.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // Space, Up, Right
	ActionFall               // Down: drop straight to the floor
	ActionTogglePause        // P
	ActionQuit               // Ctrl+C or a termination signal
	ActionExitToMenu         // Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionFall:
		return "Fall"
	case ActionTogglePause:
		return "TogglePause"
	case ActionQuit:
		return "Quit"
	case ActionExitToMenu:
		return "ExitToMenu"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
