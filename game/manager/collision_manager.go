package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

type CollisionManager struct {
	grid types.Grid
	wrap bool
}

func NewCollisionManager(grid types.Grid, wrap bool) *CollisionManager {
	return &CollisionManager{
		grid: grid,
		wrap: wrap,
	}
}

// Resolve normalizes a candidate head position and classifies the result.
// In wrap mode out-of-bounds coordinates fold back onto the grid; otherwise
// they are a wall collision. A position covered by the snake is a self
// collision. The returned point is the position the snake would occupy.
func (cm *CollisionManager) Resolve(pos types.Point, snake *entity.Snake) (types.Point, CollisionType) {
	if cm.wrap {
		pos = cm.grid.Wrap(pos)
	} else if !cm.grid.Contains(pos) {
		return pos, WallCollision
	}

	if snake.Occupies(pos) {
		return pos, SelfCollision
	}

	return pos, NoCollision
}
