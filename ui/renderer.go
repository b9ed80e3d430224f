package ui

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize    = 36
	textLeft    = 10
	textTop     = 10
	lineSpacing = 30
)

type Renderer struct {
	cellSize int32
	palette  types.Palette
}

func NewRenderer(palette types.Palette) *Renderer {
	return &Renderer{
		cellSize: types.CellSize,
		palette:  palette,
	}
}

func toColor(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// brighten scales a color for the head segment
func brighten(c types.Color) rl.Color {
	scale := func(v uint8) uint8 {
		s := float32(v) * 1.3
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return rl.NewColor(scale(c.R), scale(c.G), scale(c.B), 255)
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(r.palette.Background))

	snakeColor := toColor(r.palette.Snake)
	for j, p := range snap.Body {
		color := snakeColor
		if j == len(snap.Body)-1 { // Head
			color = brighten(r.palette.Snake)
		}
		r.drawCell(p, color)
	}

	r.drawCell(snap.Food, toColor(r.palette.Food))

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), textLeft, textTop, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Highscore: %d", snap.Highscore), textLeft, textTop+lineSpacing, fontSize, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Difficulty: %s", snap.Difficulty), textLeft, textTop+2*lineSpacing, fontSize, rl.White)

	if snap.Paused {
		r.drawBanner("Paused")
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Cell, color rl.Color) {
	rl.DrawRectangle(
		int32(p.Col)*r.cellSize,
		int32(p.Row)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawBanner(text string) {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (screenWidth-textWidth)/2, (screenHeight-fontSize)/2, fontSize, rl.White)
}
