package render

import (
	"errors"

	"github.com/lixenwraith/termsnake/core"
)

// ErrNotInitialized is returned when rendering before Init or after Restore
var ErrNotInitialized = errors.New("renderer not initialized")

// Frame is the game state drawn once per tick
type Frame struct {
	Food  *core.Point  // nil when no food is on the board
	Body  []core.Point // head first
	Score int
	Speed int
}

// Renderer is the presentation surface the game draws to
// Init and Restore bracket a play session; Restore must be safe to call more than once
type Renderer interface {
	Init() error
	Render(frame Frame) error
	Restore()
}
