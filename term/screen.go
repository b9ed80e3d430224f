// Package term runs the game inside a terminal using tcell for drawing and
// input and beep for sound effects.
package term

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	// cellWidth is how many terminal columns one grid cell spans
	cellWidth = 2
	boardLeft = 1
	boardTop  = 1
)

type Screen struct {
	screen  tcell.Screen
	palette types.Palette
}

func NewScreen(palette types.Palette) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Screen{screen: screen, palette: palette}, nil
}

// PollEvent blocks for the next terminal event. It returns nil once the
// screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Close() {
	s.screen.Fini()
}

func tcellColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellOrigin maps a grid cell to its top-left terminal column and row
func cellOrigin(c types.Cell) (int, int) {
	return boardLeft + c.Col*cellWidth, boardTop + c.Row
}

// textRow is the terminal row of the i-th status line under the board
func textRow(grid types.Grid, i int) int {
	return boardTop + grid.Rows + 1 + i
}

// StatusLines are the text lines shown under the board
func StatusLines(snap game.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Highscore: %d", snap.Highscore),
		fmt.Sprintf("Difficulty: %s", snap.Difficulty),
	}
	if snap.Paused {
		lines = append(lines, "Paused - press space to resume")
	}
	return lines
}

func (s *Screen) Draw(snap game.Snapshot) {
	s.screen.Clear()

	bg := tcell.StyleDefault.Background(tcellColor(s.palette.Background))
	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	s.drawBorder(snap.Grid, border)

	for row := 0; row < snap.Grid.Rows; row++ {
		for col := 0; col < snap.Grid.Columns; col++ {
			s.fillCell(types.Cell{Col: col, Row: row}, ' ', bg)
		}
	}

	food := tcell.StyleDefault.Background(tcellColor(s.palette.Food))
	s.fillCell(snap.Food, ' ', food)

	body := tcell.StyleDefault.Background(tcellColor(s.palette.Snake))
	for i, c := range snap.Body {
		if !snap.Grid.InBounds(c) {
			continue
		}
		if i == len(snap.Body)-1 {
			s.fillCell(c, '█', body.Foreground(tcell.ColorWhite))
			continue
		}
		s.fillCell(c, ' ', body)
	}

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range StatusLines(snap) {
		st := text
		if i == 1 {
			st = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		s.drawText(boardLeft, textRow(snap.Grid, i), line, st)
	}

	s.screen.Show()
}

func (s *Screen) fillCell(c types.Cell, r rune, st tcell.Style) {
	x, y := cellOrigin(c)
	for i := 0; i < cellWidth; i++ {
		s.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (s *Screen) drawBorder(grid types.Grid, st tcell.Style) {
	right := boardLeft + grid.Columns*cellWidth
	bottom := boardTop + grid.Rows
	for x := boardLeft - 1; x <= right; x++ {
		s.screen.SetContent(x, boardTop-1, '─', nil, st)
		s.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := boardTop - 1; y <= bottom; y++ {
		s.screen.SetContent(boardLeft-1, y, '│', nil, st)
		s.screen.SetContent(right, y, '│', nil, st)
	}
	s.screen.SetContent(boardLeft-1, boardTop-1, '┌', nil, st)
	s.screen.SetContent(right, boardTop-1, '┐', nil, st)
	s.screen.SetContent(boardLeft-1, bottom, '└', nil, st)
	s.screen.SetContent(right, bottom, '┘', nil, st)
}

func (s *Screen) drawText(x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, st)
	}
}
