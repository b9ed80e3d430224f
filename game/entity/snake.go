package entity

import (
	"classic-snake/game/types"
)

// MinLength is the body length of a freshly created snake
const MinLength = 3

type Snake struct {
	Body      []types.Cell // tail first, head last
	Direction types.Direction
	growing   bool
}

// NewSnake copies body and starts moving in dir
func NewSnake(body []types.Cell, dir types.Direction) *Snake {
	b := make([]types.Cell, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
	}
}

// NewSnakeAt builds the three cell starting snake ending at head, moving right
func NewSnakeAt(head types.Cell) *Snake {
	return NewSnake([]types.Cell{
		{Col: head.Col - 2, Row: head.Row},
		{Col: head.Col - 1, Row: head.Row},
		head,
	}, types.Right)
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body, tail first
func (s *Snake) Cells() []types.Cell {
	out := make([]types.Cell, len(s.Body))
	copy(out, s.Body)
	return out
}

func (s *Snake) Occupies(c types.Cell) bool {
	for _, part := range s.Body {
		if part == c {
			return true
		}
	}
	return false
}

// SetDirection ignores exact reversals and unknown directions
func (s *Snake) SetDirection(dir types.Direction) {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}

// Move advances the head one cell. The tail stays put once after Grow.
func (s *Snake) Move() {
	s.Body = append(s.Body, s.GetHead().Add(s.Direction))
	if s.growing {
		s.growing = false
		return
	}
	s.Body = s.Body[1:]
}

// Grow takes effect on the next Move
func (s *Snake) Grow() {
	s.growing = true
}

func (s *Snake) Growing() bool {
	return s.growing
}

// CheckSelfCollision reports whether the head overlaps any other segment
func (s *Snake) CheckSelfCollision() bool {
	head := s.GetHead()
	for _, part := range s.Body[:len(s.Body)-1] {
		if part == head {
			return true
		}
	}
	return false
}
