package component

import (
	"testing"

	"github.com/lixenwraith/termsnake/core"
)

// snakeFromBody builds a snake with an explicit head-first body for collision tests
func snakeFromBody(dir core.Direction, body ...core.Point) *Snake {
	return NewSnakeFromBody(body, 0, dir)
}

func TestNewSnakeTrailsBackward(t *testing.T) {
	start := core.Point{X: 5, Y: 5}
	for _, d := range core.Directions {
		s := NewSnake(start, 4, 0, d)
		body := s.Body()

		if len(body) != 4 {
			t.Fatalf("Expected 4 segments facing %s, got %d", d, len(body))
		}
		if s.Head() != start {
			t.Errorf("Expected head %v, got %v", start, s.Head())
		}
		for i := 1; i < len(body); i++ {
			want := body[i-1].Transform(d.Opposite(), 1)
			if body[i] != want {
				t.Errorf("Facing %s: segment %d expected %v, got %v", d, i, want, body[i])
			}
		}
		if s.Direction() != d {
			t.Errorf("Expected direction %s, got %s", d, s.Direction())
		}
	}
}

func TestNewSnakeRejectsEmptyBody(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero-length snake")
		}
	}()
	NewSnake(core.Point{}, 0, 0, core.DirUp)
}

func TestBodyIsSnapshot(t *testing.T) {
	s := NewSnake(core.Point{X: 3, Y: 3}, 3, 0, core.DirRight)
	body := s.Body()
	body[0] = core.Point{X: -1, Y: -1}

	if s.Head() != (core.Point{X: 3, Y: 3}) {
		t.Errorf("Mutating Body() result changed the snake head to %v", s.Head())
	}
}

func TestSlitherPreservesLength(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, 3, 0, core.DirRight)
	s.Slither()

	if s.Len() != 3 {
		t.Errorf("Expected length 3 after slither, got %d", s.Len())
	}
	want := []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	for i, p := range s.Body() {
		if p != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i, want[i], p)
		}
	}
}

func TestSlitherAfterGrow(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, 3, 0, core.DirDown)
	s.Grow()
	if !s.Digesting() {
		t.Fatal("Expected digesting after Grow")
	}

	s.Slither()
	if s.Len() != 4 {
		t.Errorf("Expected length 4 after growth slither, got %d", s.Len())
	}
	if s.Digesting() {
		t.Error("Expected digesting flag cleared after slither")
	}

	s.Slither()
	if s.Len() != 4 {
		t.Errorf("Expected length to stay 4 on the following slither, got %d", s.Len())
	}
}

func TestSlitherKeepsBodyContiguous(t *testing.T) {
	s := NewSnake(core.Point{X: 10, Y: 10}, 5, 0, core.DirUp)
	turns := []core.Direction{core.DirUp, core.DirLeft, core.DirLeft, core.DirDown, core.DirDown, core.DirLeft}
	for i, d := range turns {
		s.SetDirection(d)
		if i%2 == 0 {
			s.Grow()
		}
		s.Slither()

		body := s.Body()
		for j := 1; j < len(body); j++ {
			if !body[j-1].Adjacent(body[j]) {
				t.Fatalf("Step %d: segments %v and %v are not adjacent", i, body[j-1], body[j])
			}
		}
	}
}

func TestContains(t *testing.T) {
	s := NewSnake(core.Point{X: 2, Y: 2}, 3, 0, core.DirRight)
	for _, p := range s.Body() {
		if !s.Contains(p) {
			t.Errorf("Expected snake to contain %v", p)
		}
	}
	if s.Contains(core.Point{X: 3, Y: 2}) {
		t.Error("Snake must not contain the cell ahead of its head")
	}
}

func TestBitSelf(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Direction
		body []core.Point
		want bool
	}{
		{
			name: "straight line",
			dir:  core.DirRight,
			body: []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
			want: false,
		},
		{
			// Head at (2,1) turning down onto (2,2), a middle segment
			name: "hook into middle",
			dir:  core.DirDown,
			body: []core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
			want: true,
		},
		{
			// Next head lands on the tail, which is excluded
			name: "chasing tail",
			dir:  core.DirDown,
			body: []core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
			want: false,
		},
		{
			name: "single segment",
			dir:  core.DirLeft,
			body: []core.Point{{X: 4, Y: 4}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snakeFromBody(tt.dir, tt.body...)
			if got := s.BitSelf(); got != tt.want {
				t.Errorf("Expected BitSelf %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBitSelfIgnoresTailWhileDigesting(t *testing.T) {
	s := snakeFromBody(core.DirDown, core.Point{X: 2, Y: 1}, core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2})
	s.Grow()

	if s.BitSelf() {
		t.Error("Expected tail to stay excluded from the self-collision set while digesting")
	}
}

func TestHitWall(t *testing.T) {
	const w, h = 10, 8

	tests := []struct {
		head core.Point
		dir  core.Direction
		want bool
	}{
		{core.Point{X: 4, Y: 0}, core.DirUp, true},
		{core.Point{X: 4, Y: 0}, core.DirLeft, false},
		{core.Point{X: 4, Y: h - 1}, core.DirDown, true},
		{core.Point{X: 4, Y: h - 1}, core.DirUp, false},
		{core.Point{X: 0, Y: 3}, core.DirLeft, true},
		{core.Point{X: 0, Y: 3}, core.DirDown, false},
		{core.Point{X: w - 1, Y: 3}, core.DirRight, true},
		{core.Point{X: w - 1, Y: 3}, core.DirLeft, false},
		{core.Point{X: 4, Y: 3}, core.DirRight, false},
		{core.Point{X: 0, Y: 0}, core.DirUp, true},
		{core.Point{X: 0, Y: 0}, core.DirLeft, true},
	}

	for _, tt := range tests {
		s := NewSnake(tt.head, 1, 0, tt.dir)
		if got := s.HitWall(w, h); got != tt.want {
			t.Errorf("Head %v moving %s: expected HitWall %v, got %v", tt.head, tt.dir, tt.want, got)
		}
	}
}

func TestSlitherRightAcrossBoard(t *testing.T) {
	const w, h = 10, 10
	s := NewSnake(core.Point{X: w / 2, Y: h / 2}, 3, 0, core.DirRight)

	for i := 0; i < 4; i++ {
		if s.HitWall(w, h) {
			t.Fatalf("Unexpected wall hit at step %d, head %v", i, s.Head())
		}
		s.Slither()
	}

	if s.Head() != (core.Point{X: 9, Y: 5}) {
		t.Fatalf("Expected head at (9,5), got %v", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s.Len())
	}
	if !s.HitWall(w, h) {
		t.Error("Expected wall hit at (9,5) moving right")
	}

	// Slither itself never checks walls: six calls move the head six cells
	free := NewSnake(core.Point{X: w / 2, Y: h / 2}, 3, 0, core.DirRight)
	for i := 0; i < 6; i++ {
		free.Slither()
	}
	if free.Head() != (core.Point{X: 11, Y: 5}) || free.Len() != 3 {
		t.Errorf("Expected head (11,5) length 3, got %v length %d", free.Head(), free.Len())
	}
}

func TestSpeedAccessors(t *testing.T) {
	s := NewSnake(core.Point{}, 1, 2, core.DirUp)
	if s.Speed() != 2 {
		t.Errorf("Expected initial speed 2, got %d", s.Speed())
	}
	s.SetSpeed(7)
	if s.Speed() != 7 {
		t.Errorf("Expected speed 7, got %d", s.Speed())
	}
}

func TestNewSnakeFromBody(t *testing.T) {
	body := []core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	s := NewSnakeFromBody(body, 4, core.DirRight)
	body[0] = core.Point{X: 9, Y: 9}

	if s.Head() != (core.Point{X: 2, Y: 1}) {
		t.Errorf("Expected head (2,1), got %v", s.Head())
	}
	if s.Len() != 3 || s.Speed() != 4 || s.Direction() != core.DirRight {
		t.Errorf("Expected len 3 speed 4 heading right, got %d %d %s", s.Len(), s.Speed(), s.Direction())
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty body")
		}
	}()
	NewSnakeFromBody(nil, 0, core.DirUp)
}
