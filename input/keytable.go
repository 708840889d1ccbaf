package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsnake/core"
)

// KeyTable maps terminal keys to game commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]core.Command

	// Printable rune bindings, matched case-sensitively
	Runes map[rune]core.Command
}

// DefaultKeyTable returns the default bindings: arrows, WASD and hjkl steer; q, Esc and Ctrl-C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]core.Command{
			tcell.KeyUp:     core.Turn(core.DirUp),
			tcell.KeyRight:  core.Turn(core.DirRight),
			tcell.KeyDown:   core.Turn(core.DirDown),
			tcell.KeyLeft:   core.Turn(core.DirLeft),
			tcell.KeyEscape: core.Quit(),
			tcell.KeyCtrlC:  core.Quit(),
		},
		Runes: map[rune]core.Command{
			'q': core.Quit(),
			'Q': core.Quit(),

			'w': core.Turn(core.DirUp),
			'W': core.Turn(core.DirUp),
			'd': core.Turn(core.DirRight),
			'D': core.Turn(core.DirRight),
			's': core.Turn(core.DirDown),
			'S': core.Turn(core.DirDown),
			'a': core.Turn(core.DirLeft),
			'A': core.Turn(core.DirLeft),

			'k': core.Turn(core.DirUp),
			'l': core.Turn(core.DirRight),
			'j': core.Turn(core.DirDown),
			'h': core.Turn(core.DirLeft),
		},
	}
}

// Lookup decodes a key event, ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (core.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		// Alt/Ctrl-modified runes are not game input
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return core.Command{}, false
		}
		cmd, ok := kt.Runes[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := kt.SpecialKeys[ev.Key()]
	return cmd, ok
}
