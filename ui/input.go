package ui

import (
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollCommands drains the key queue for this frame, in press order. Closing
// the window yields a Quit command.
func PollCommands() []types.Command {
	var cmds []types.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd, ok := KeyCommand(key); ok {
			cmds = append(cmds, cmd)
		}
	}
	if rl.WindowShouldClose() {
		cmds = append(cmds, types.Command{Kind: types.Quit})
	}
	return cmds
}

// KeyCommand translates a raylib key code into a game command
func KeyCommand(key int32) (types.Command, bool) {
	switch key {
	case rl.KeyUp:
		return types.MoveCommand(types.Up), true
	case rl.KeyDown:
		return types.MoveCommand(types.Down), true
	case rl.KeyLeft:
		return types.MoveCommand(types.Left), true
	case rl.KeyRight:
		return types.MoveCommand(types.Right), true
	case rl.KeyOne:
		return types.DifficultyCommand(types.Easy), true
	case rl.KeyTwo:
		return types.DifficultyCommand(types.Medium), true
	case rl.KeyThree:
		return types.DifficultyCommand(types.Hard), true
	case rl.KeySpace:
		return types.Command{Kind: types.TogglePause}, true
	}
	return types.Command{}, false
}
