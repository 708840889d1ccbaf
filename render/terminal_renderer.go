package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsnake/constant"
	"github.com/lixenwraith/termsnake/core"
)

// TerminalRenderer draws the arena on a tcell screen
// The arena is framed by a one-cell border, the status line sits below it
type TerminalRenderer struct {
	screen      tcell.Screen
	width       int
	height      int
	initialized bool
}

// NewTerminalRenderer creates a renderer for a width x height arena
// The screen is initialized by Init, not here
func NewTerminalRenderer(screen tcell.Screen, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		width:  width,
		height: height,
	}
}

// Init takes over the terminal and registers it for crash restore
func (r *TerminalRenderer) Init() error {
	if r.initialized {
		return nil
	}
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	core.RegisterCrashTerminal(r.screen)

	r.screen.SetStyle(styleDefault)
	r.screen.HideCursor()
	r.screen.Clear()
	r.initialized = true
	return nil
}

// Restore gives the terminal back; safe to call more than once
func (r *TerminalRenderer) Restore() {
	if !r.initialized {
		return
	}
	r.initialized = false
	core.RegisterCrashTerminal(nil)
	r.screen.Fini()
}

// Render draws one full frame
func (r *TerminalRenderer) Render(frame Frame) error {
	if !r.initialized {
		return ErrNotInitialized
	}

	r.screen.Clear()
	r.drawBorder()

	if frame.Food != nil {
		r.setArena(*frame.Food, constant.GlyphFood, styleFood)
	}

	bodyStyle := styleDefault.Foreground(SpeedColor(frame.Speed))
	// Tail first so the head wins on overlap
	for i := len(frame.Body) - 1; i > 0; i-- {
		r.setArena(frame.Body[i], constant.GlyphSnakeBody, bodyStyle)
	}
	if len(frame.Body) > 0 {
		r.setArena(frame.Body[0], constant.GlyphSnakeHead, bodyStyle.Foreground(RgbHead).Bold(true))
	}

	r.drawStatus(frame.Score, frame.Speed)
	r.screen.Show()
	return nil
}

// setArena draws a glyph at an arena coordinate, skipping cells outside the board
func (r *TerminalRenderer) setArena(p core.Point, glyph rune, style tcell.Style) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y >= r.height {
		return
	}
	r.screen.SetContent(p.X+constant.ArenaOffset, p.Y+constant.ArenaOffset, glyph, nil, style)
}

func (r *TerminalRenderer) drawBorder() {
	right := r.width + constant.ArenaOffset
	bottom := r.height + constant.ArenaOffset

	for x := 0; x <= right; x++ {
		r.screen.SetContent(x, 0, constant.GlyphBorder, nil, styleBorder)
		r.screen.SetContent(x, bottom, constant.GlyphBorder, nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, constant.GlyphBorder, nil, styleBorder)
		r.screen.SetContent(right, y, constant.GlyphBorder, nil, styleBorder)
	}
}

func (r *TerminalRenderer) drawStatus(score, speed int) {
	y := r.height + 2*constant.ArenaOffset
	text := fmt.Sprintf(" Score: %d  Speed: %d ", score, speed)
	drawText(r.screen, 0, y, text, styleStatus)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
