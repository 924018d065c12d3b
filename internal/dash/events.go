package dash

import "github.com/vovakirdan/tui-dash/internal/progress"

// Event is a named trigger for the audio collaborator.
type Event string

const (
	EventCoinCollected Event = "coin_collected"
	EventLifeLost      Event = "life_lost"
	EventVictory       Event = "victory"
	EventPurchase      Event = "purchase" // emitted by the shop, not the run
)

// AudioSink receives sound triggers. Playback is up to the implementation.
type AudioSink interface {
	Emit(Event)
}

// AudioFunc adapts a function to AudioSink.
type AudioFunc func(Event)

// Emit calls f(e).
func (f AudioFunc) Emit(e Event) { f(e) }

// FrameSink receives a snapshot after every simulated or paused tick.
type FrameSink interface {
	Frame(Snapshot)
}

// FrameFunc adapts a function to FrameSink.
type FrameFunc func(Snapshot)

// Frame calls f(s).
func (f FrameFunc) Frame(s Snapshot) { f(s) }

// Persister writes the progress record somewhere durable.
type Persister interface {
	Persist(*progress.Record) error
}
