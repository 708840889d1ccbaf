package core

import "fmt"

// CommandKind tags a Command
type CommandKind uint8

const (
	CommandTurn CommandKind = iota
	CommandQuit
)

// Command is a decoded player intent produced by the input boundary
// Direction is meaningful only for CommandTurn
type Command struct {
	Kind      CommandKind
	Direction Direction
}

// Quit returns the session-ending command
func Quit() Command {
	return Command{Kind: CommandQuit}
}

// Turn returns a heading change request toward d
func Turn(d Direction) Command {
	return Command{Kind: CommandTurn, Direction: d}
}

func (c Command) String() string {
	if c.Kind == CommandQuit {
		return "quit"
	}
	return fmt.Sprintf("turn(%s)", c.Direction)
}
