package core

// Point is a cell coordinate on the board, origin at the top-left corner
type Point struct {
	X, Y int
}

// Transform returns the point shifted by distance cells along d
// No bounds clamping is done, callers check walls separately
func (p Point) Transform(d Direction, distance int) Point {
	switch d {
	case DirUp:
		p.Y -= distance
	case DirDown:
		p.Y += distance
	case DirRight:
		p.X += distance
	case DirLeft:
		p.X -= distance
	}
	return p
}

// Adjacent reports whether q is exactly one unit step away from p
func (p Point) Adjacent(q Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}
