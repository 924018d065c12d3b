package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// defaultLeadTicks is how many ticks ahead the autopilot looks.
const defaultLeadTicks = 10

// Autopilot is a FrameSink that plays a run headlessly. After every frame it
// decides whether the next tick should jump and posts the intent on Intents
// without blocking.
type Autopilot struct {
	Intents   chan core.Action
	LeadTicks int
}

// NewAutopilot creates an autopilot with a small intent buffer.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		Intents:   make(chan core.Action, 4),
		LeadTicks: defaultLeadTicks,
	}
}

// Frame implements FrameSink.
func (a *Autopilot) Frame(s Snapshot) {
	if s.State != StateRunning.String() || !a.ShouldJump(s) {
		return
	}
	select {
	case a.Intents <- core.ActionJump:
	default:
	}
}

// ShouldJump reports whether an obstacle in the player's rows is about to
// reach the player.
func (a *Autopilot) ShouldJump(s Snapshot) bool {
	lead := s.Speed * float64(a.LeadTicks)
	front := s.Player.X + s.Player.W
	top, bottom := s.Player.Y, s.Player.Y+s.Player.H

	for _, o := range s.Obstacles {
		if o.Y >= bottom || o.Y+o.H <= top {
			continue
		}
		gap := o.X - front
		if gap >= 0 && gap <= lead {
			return true
		}
	}
	return false
}

// Frames fans a frame out to several sinks. Nil entries are skipped.
type Frames []FrameSink

// Frame implements FrameSink.
func (fs Frames) Frame(s Snapshot) {
	for _, f := range fs {
		if f != nil {
			f.Frame(s)
		}
	}
}
