package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsnake/constant"
	"github.com/lixenwraith/termsnake/core"
)

func newTestRenderer(t *testing.T, w, h int) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r := NewTerminalRenderer(screen, w, h)
	if err := r.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w+30, h+10)
	t.Cleanup(r.Restore)
	return r, screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestRenderBeforeInit(t *testing.T) {
	r := NewTerminalRenderer(tcell.NewSimulationScreen("UTF-8"), 10, 10)
	if err := r.Render(Frame{}); err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestRenderDrawsBorder(t *testing.T) {
	const w, h = 8, 6
	r, screen := newTestRenderer(t, w, h)

	if err := r.Render(Frame{}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	corners := [][2]int{{0, 0}, {w + 1, 0}, {0, h + 1}, {w + 1, h + 1}}
	for _, c := range corners {
		if got := runeAt(screen, c[0], c[1]); got != constant.GlyphBorder {
			t.Errorf("Expected border at %v, got %q", c, got)
		}
	}
	if got := runeAt(screen, 3, 3); got != constant.GlyphEmpty {
		t.Errorf("Expected empty arena cell, got %q", got)
	}
}

func TestRenderDrawsFoodAndSnake(t *testing.T) {
	const w, h = 10, 10
	r, screen := newTestRenderer(t, w, h)

	food := core.Point{X: 1, Y: 1}
	frame := Frame{
		Food: &food,
		Body: []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
	}
	if err := r.Render(frame); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	off := constant.ArenaOffset
	if got := runeAt(screen, food.X+off, food.Y+off); got != constant.GlyphFood {
		t.Errorf("Expected food glyph, got %q", got)
	}
	if got := runeAt(screen, 5+off, 5+off); got != constant.GlyphSnakeHead {
		t.Errorf("Expected head glyph, got %q", got)
	}
	for _, x := range []int{4, 3} {
		if got := runeAt(screen, x+off, 5+off); got != constant.GlyphSnakeBody {
			t.Errorf("Expected body glyph at x=%d, got %q", x, got)
		}
	}
}

func TestRenderDrawsStatusLine(t *testing.T) {
	const w, h = 10, 5
	r, screen := newTestRenderer(t, w, h)

	if err := r.Render(Frame{Score: 12, Speed: 3}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := " Score: 12  Speed: 3 "
	y := h + 2*constant.ArenaOffset
	for i, ch := range want {
		if got := runeAt(screen, i, y); got != ch {
			t.Fatalf("Status line char %d: expected %q, got %q", i, ch, got)
		}
	}
}

func TestRenderSkipsOffBoardPoints(t *testing.T) {
	const w, h = 6, 6
	r, screen := newTestRenderer(t, w, h)

	if err := r.Render(Frame{Body: []core.Point{{X: -1, Y: 2}, {X: 0, Y: 2}}}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// Column 0 is the border and must not be overwritten by the off-board head
	if got := runeAt(screen, 0, 2+constant.ArenaOffset); got != constant.GlyphBorder {
		t.Errorf("Expected border to survive off-board head, got %q", got)
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	r, _ := newTestRenderer(t, 5, 5)
	r.Restore()
	r.Restore()
	if err := r.Render(Frame{}); err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized after Restore, got %v", err)
	}
}

func TestSpeedColorBands(t *testing.T) {
	if SpeedColor(0) != SpeedColor(constant.SpeedBandWidth-1) {
		t.Error("Expected speeds within the first band to share a color")
	}
	if SpeedColor(0) == SpeedColor(constant.SpeedBandWidth) {
		t.Error("Expected a new color at the next band")
	}
	if SpeedColor(1000) != speedBands[len(speedBands)-1] {
		t.Error("Expected speeds past the last band to clamp to the last color")
	}
	if SpeedColor(-3) != speedBands[0] {
		t.Error("Expected negative speed to clamp to the first color")
	}
}
