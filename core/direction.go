package core

// Direction is a snake heading
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every heading in clockwise order starting from Up
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Opposite returns the reversed heading, Up<->Down and Left<->Right
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Perpendicular reports whether other is a legal turn from d
func (d Direction) Perpendicular(other Direction) bool {
	return other != d && other != d.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "unknown"
}
