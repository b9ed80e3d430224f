package term

import (
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// KeyCommand translates a key press into a game command. Keys without a
// binding report false.
func KeyCommand(key tcell.Key, r rune) (types.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return types.MoveCommand(types.Up), true
	case tcell.KeyDown:
		return types.MoveCommand(types.Down), true
	case tcell.KeyLeft:
		return types.MoveCommand(types.Left), true
	case tcell.KeyRight:
		return types.MoveCommand(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.Command{Kind: types.Quit}, true
	case tcell.KeyRune:
		return runeCommand(r)
	}
	return types.Command{}, false
}

func runeCommand(r rune) (types.Command, bool) {
	switch r {
	case '1':
		return types.DifficultyCommand(types.Easy), true
	case '2':
		return types.DifficultyCommand(types.Medium), true
	case '3':
		return types.DifficultyCommand(types.Hard), true
	case ' ':
		return types.Command{Kind: types.TogglePause}, true
	case 'q', 'Q':
		return types.Command{Kind: types.Quit}, true
	}
	return types.Command{}, false
}
