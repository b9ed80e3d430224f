package main

import (
	"log"

	"classic-snake/game/types"
	"classic-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// runWindow drives one frame per tick: input, update, draw
func runWindow(app *App) error {
	cfg := app.Config
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	defer rl.CloseWindow()

	music := ui.NewMusic()
	if err := music.Load(cfg.MusicFile); err != nil {
		log.Printf("music disabled: %v", err)
	}
	defer music.Close()

	renderer := ui.NewRenderer(cfg.Palette())
	g := app.Game
	rl.SetTargetFPS(int32(g.Difficulty().TickRate()))

	for g.Status() != types.Over {
		for _, cmd := range ui.PollCommands() {
			if cmd.Kind == types.Quit {
				return nil
			}
			g.Handle(cmd)
		}

		g.Tick()
		music.Update()
		renderer.Draw(g.Snapshot())
		rl.SetTargetFPS(int32(g.Difficulty().TickRate()))
	}
	return nil
}
