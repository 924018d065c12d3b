package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/dash"
)

// BellAudio rings the terminal bell for sound events. A terminal has one
// sound, so every event maps to the same bell; Muted silences it.
type BellAudio struct {
	mu     sync.Mutex
	out    io.Writer
	logger *log.Logger
	Muted  bool
}

// NewBellAudio writes bells to out. logger may be nil.
func NewBellAudio(out io.Writer, logger *log.Logger) *BellAudio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BellAudio{out: out, logger: logger}
}

// Emit implements dash.AudioSink.
func (b *BellAudio) Emit(e dash.Event) {
	b.logger.Debug("sound", "event", e)
	if b.Muted || b.out == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // A missed bell is harmless
	b.out.Write([]byte{'\a'})
}
