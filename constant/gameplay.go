package constant

import "time"

// Pace
const (
	// MaxSpeed is the speed level at which the tick interval bottoms out
	MaxSpeed = 20

	// MinInterval is the tick duration at MaxSpeed and above
	MinInterval = 200 * time.Millisecond

	// MaxInterval is the tick duration at speed 0
	MaxInterval = 700 * time.Millisecond

	// IntervalStep is the tick duration removed per speed level
	IntervalStep = (MaxInterval - MinInterval) / MaxSpeed
)

// Snake
const (
	// InitialSnakeLength is the body length at session start
	InitialSnakeLength = 3

	// InitialSnakeSpeed is the speed tier of a new snake
	InitialSnakeSpeed = 0
)

// Board
const (
	// MinBoardSize is the smallest width/height that fits a centered initial snake in any heading
	MinBoardSize = 2*InitialSnakeLength - 1

	// DefaultBoardWidth is the arena width used when none is given
	DefaultBoardWidth = 20

	// DefaultBoardHeight is the arena height used when none is given
	DefaultBoardHeight = 20
)
