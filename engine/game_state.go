package engine

// GameState is the session state machine
// StateRunning moves to StateGameOver exactly once and never returns
type GameState uint8

const (
	StateRunning GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	if s == StateGameOver {
		return "game-over"
	}
	return "running"
}

// EndReason records why a session left StateRunning
type EndReason uint8

const (
	ReasonNone      EndReason = iota
	ReasonWall                // Head would cross the board edge
	ReasonSelf                // Head would land on the body
	ReasonQuit                // Player quit or context cancelled
	ReasonBoardFull           // Snake covers every cell, nowhere to put food
	ReasonError               // Presentation boundary failed
)

func (r EndReason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonQuit:
		return "quit"
	case ReasonBoardFull:
		return "board-full"
	case ReasonError:
		return "error"
	}
	return "none"
}

// Collision reports whether the session ended by crashing
func (r EndReason) Collision() bool {
	return r == ReasonWall || r == ReasonSelf
}

// Result summarizes a finished session
type Result struct {
	SessionID string
	Score     int
	Speed     int
	Length    int
	Ticks     int
	Reason    EndReason
}
