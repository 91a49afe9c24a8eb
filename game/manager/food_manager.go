package manager

import (
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// FoodManager chooses food cells. The random source is injected so callers
// can make placement deterministic.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Place picks a cell uniformly at random among the cells not occupied by
// the snake. The second return value is false when the board is completely
// full and no food can be placed.
func (fm *FoodManager) Place(snake *entity.Snake) (types.Point, bool) {
	free := make([]types.Point, 0, fm.grid.Width*fm.grid.Height)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
