package input

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsnake/core"
)

// eventBufferSize bounds queued terminal events; the pump drops events when full
const eventBufferSize = 64

// Source delivers decoded player commands
type Source interface {
	// Poll returns at most one command arriving within timeout
	// It must not block past timeout or past ctx cancellation
	Poll(ctx context.Context, timeout time.Duration) (core.Command, bool)
}

// TerminalSource reads key events from a tcell screen
// The event pump starts on the first Poll, after the screen has been initialized
type TerminalSource struct {
	screen tcell.Screen
	table  *KeyTable
	events chan tcell.Event
	once   sync.Once
	closed bool
}

// NewTerminalSource creates a source decoding keys with table, nil selects DefaultKeyTable
func NewTerminalSource(screen tcell.Screen, table *KeyTable) *TerminalSource {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &TerminalSource{
		screen: screen,
		table:  table,
		events: make(chan tcell.Event, eventBufferSize),
	}
}

func (s *TerminalSource) start() {
	s.once.Do(func() {
		core.Go(s.pump)
	})
}

// pump forwards screen events until the screen is finalized
func (s *TerminalSource) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		default:
			// Channel full, drop event
		}
	}
}

// Poll waits up to timeout for a bound key, ignoring unbound keys and non-key events
func (s *TerminalSource) Poll(ctx context.Context, timeout time.Duration) (core.Command, bool) {
	if timeout <= 0 {
		return core.Command{}, false
	}
	s.start()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	events := s.events
	if s.closed {
		events = nil
	}

	for {
		select {
		case <-ctx.Done():
			return core.Command{}, false
		case <-timer.C:
			return core.Command{}, false
		case ev, ok := <-events:
			if !ok {
				// Pump ended; keep honoring the timeout without spinning
				s.closed = true
				events = nil
				continue
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			if cmd, bound := s.table.Lookup(key); bound {
				return cmd, true
			}
		}
	}
}
