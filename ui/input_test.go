package ui

import (
	"testing"

	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestKeyCommand(t *testing.T) {
	cases := []struct {
		key  int32
		kind types.CommandKind
	}{
		{rl.KeyUp, types.MoveUp},
		{rl.KeyDown, types.MoveDown},
		{rl.KeyLeft, types.MoveLeft},
		{rl.KeyRight, types.MoveRight},
		{rl.KeySpace, types.TogglePause},
		{rl.KeyTwo, types.SetDifficulty},
	}
	for _, c := range cases {
		cmd, ok := KeyCommand(c.key)
		if !ok || cmd.Kind != c.kind {
			t.Errorf("key %d: expected kind %d, got %d (ok=%v)", c.key, c.kind, cmd.Kind, ok)
		}
	}

	cmd, _ := KeyCommand(rl.KeyThree)
	if cmd.Difficulty != types.Hard {
		t.Errorf("Expected hard, got %s", cmd.Difficulty)
	}
	if _, ok := KeyCommand(rl.KeyA); ok {
		t.Error("Expected unbound key to be ignored")
	}
}

func TestBrightenClamps(t *testing.T) {
	c := brighten(types.Color{R: 250, G: 100, B: 0})
	if c.R != 255 || c.G != 130 || c.B != 0 {
		t.Errorf("Expected (255,130,0), got (%d,%d,%d)", c.R, c.G, c.B)
	}
}
