package component

import (
	"github.com/gammazero/deque"

	"github.com/lixenwraith/termsnake/core"
)

// Snake is the player entity: a head-first body of contiguous cells and its movement state
type Snake struct {
	body      deque.Deque[core.Point]
	direction core.Direction
	digesting bool
	speed     int
}

// NewSnake builds a snake of length cells with its head at start, the body trailing
// backward so the head faces direction
// Panics if length < 1
func NewSnake(start core.Point, length, speed int, direction core.Direction) *Snake {
	if length < 1 {
		panic("component: snake length must be at least 1")
	}

	s := &Snake{
		direction: direction,
		speed:     speed,
	}

	back := direction.Opposite()
	for i := 0; i < length; i++ {
		s.body.PushBack(start.Transform(back, i))
	}
	return s
}

// NewSnakeFromBody builds a snake from an explicit head-first body, which must be contiguous
// Panics if body is empty
func NewSnakeFromBody(body []core.Point, speed int, direction core.Direction) *Snake {
	if len(body) == 0 {
		panic("component: snake length must be at least 1")
	}

	s := &Snake{
		direction: direction,
		speed:     speed,
	}
	for _, p := range body {
		s.body.PushBack(p)
	}
	return s
}

// Head returns the first body cell
func (s *Snake) Head() core.Point {
	if s.body.Len() == 0 {
		panic("component: snake has empty body")
	}
	return s.body.Front()
}

// Body returns a head-to-tail snapshot of the body
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// Len returns the number of body cells
func (s *Snake) Len() int {
	return s.body.Len()
}

// Direction returns the heading applied on the next Slither
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// SetDirection overwrites the heading unconditionally
// Reversal filtering is the caller's job
func (s *Snake) SetDirection(d core.Direction) {
	s.direction = d
}

// Speed returns the display-facing speed tier
func (s *Snake) Speed() int {
	return s.speed
}

// SetSpeed sets the display-facing speed tier
func (s *Snake) SetSpeed(speed int) {
	s.speed = speed
}

// Grow marks the snake as digesting; the next Slither keeps the tail
func (s *Snake) Grow() {
	s.digesting = true
}

// Digesting reports whether the next Slither will keep the tail
func (s *Snake) Digesting() bool {
	return s.digesting
}

// Slither advances the head one cell along the current heading
// The tail is dropped unless digesting, in which case the flag is cleared and the body grows by one
func (s *Snake) Slither() {
	s.body.PushFront(s.Head().Transform(s.direction, 1))
	if s.digesting {
		s.digesting = false
		return
	}
	s.body.PopBack()
}

// Contains reports whether p is occupied by any body cell
func (s *Snake) Contains(p core.Point) bool {
	return s.body.Index(func(q core.Point) bool { return q == p }) >= 0
}

// BitSelf reports whether the next head cell lands on the body, excluding the current head
// and the current tail
// The tail is excluded even while digesting, when it does not vacate its cell
func (s *Snake) BitSelf() bool {
	next := s.Head().Transform(s.direction, 1)
	for i := 1; i < s.body.Len()-1; i++ {
		if s.body.At(i) == next {
			return true
		}
	}
	return false
}

// HitWall reports whether the head sits on the boundary it is moving toward
func (s *Snake) HitWall(width, height int) bool {
	head := s.Head()
	switch s.direction {
	case core.DirUp:
		return head.Y == 0
	case core.DirDown:
		return head.Y == height-1
	case core.DirLeft:
		return head.X == 0
	case core.DirRight:
		return head.X == width-1
	}
	return false
}
