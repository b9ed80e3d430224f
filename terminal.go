package main

import (
	"log"
	"time"

	"classic-snake/game/types"
	"classic-snake/term"

	"github.com/gdamore/tcell/v2"
)

func runTerminal(app *App) error {
	screen, err := term.NewScreen(app.Config.Palette())
	if err != nil {
		return err
	}
	defer screen.Close()

	sound := term.NewSound()
	if err := sound.Init(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Close()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(screen.PollEvent, events, done)

	g := app.Game
	interval := g.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	screen.Draw(g.Snapshot())
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, ok := term.KeyCommand(ev.Key(), ev.Rune())
				if !ok {
					continue
				}
				if cmd.Kind == types.Quit {
					return nil
				}
				g.Handle(cmd)
				if next := g.TickInterval(); next != interval {
					interval = next
					ticker.Reset(interval)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			screen.Draw(g.Snapshot())

		case <-ticker.C:
			out := g.Tick()
			screen.Draw(g.Snapshot())
			if out.Ate {
				sound.Play(term.EatTone)
			}
			if out.Over {
				sound.PlayAndWait(term.GameOverTone)
				return nil
			}
		}
	}
}

// forwardEvents feeds polled events into events until poll returns nil or
// done is closed
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
