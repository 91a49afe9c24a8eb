package entity

import (
	"gridsnake/game/types"
)

// Snake is the player's snake. Body is ordered head first; the committed
// movement direction is a unit delta.
type Snake struct {
	Body      []types.Point
	Direction types.Point
}

// NewSnake builds a snake of the given length with its head at head,
// trailing away opposite to dir.
func NewSnake(head types.Point, length int, dir types.Point) *Snake {
	body := make([]types.Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Point{
			X: head.X - i*dir.X,
			Y: head.Y - i*dir.Y,
		})
	}
	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

// Head returns the current head cell.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last body cell.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// SetDirection commits a new movement direction.
func (s *Snake) SetDirection(dir types.Point) {
	// Prevent 180-degree turns
	if (dir.X != 0 && dir.X == -s.Direction.X) ||
		(dir.Y != 0 && dir.Y == -s.Direction.Y) {
		return
	}
	s.Direction = dir
}

// Occupies reports whether p is covered by any body cell.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if p == part {
			return true
		}
	}
	return false
}
