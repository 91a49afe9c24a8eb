package game

import (
	"time"

	"gridsnake/game/types"
)

// State identifies the phase of a run.
type State string

const (
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
	StateWin      State = "win"
)

// Snapshot is the read-only view of the game that collaborators consume
// after each tick. The snake slice is a copy, so holders may keep it
// across ticks.
type Snapshot struct {
	Snake     []types.Point
	Direction types.Point
	Food      types.Point
	HasFood   bool
	Score     int
	Steps     int
	Interval  time.Duration
	Running   bool
	State     State

	// BeatHighScore latches on the first tick the run's score passes the
	// stored high score, so the HUD can celebrate once per run.
	// FinalHighScore is what the store should persist when the run ends.
	BeatHighScore  bool
	FinalHighScore int
}

// Over reports whether the run has reached a terminal state.
func (s Snapshot) Over() bool {
	return s.State == StateGameOver || s.State == StateWin
}

// Snapshot captures the current game state.
func (e *Engine) Snapshot() Snapshot {
	body := make([]types.Point, len(e.snake.Body))
	copy(body, e.snake.Body)

	state := StatePlaying
	switch {
	case e.won:
		state = StateWin
	case e.over:
		state = StateGameOver
	case !e.running:
		state = StatePaused
	}

	final := e.highScore
	if e.score > final {
		final = e.score
	}

	return Snapshot{
		Snake:          body,
		Direction:      e.snake.Direction,
		Food:           e.food,
		HasFood:        e.hasFood,
		Score:          e.score,
		Steps:          e.steps,
		Interval:       e.interval,
		Running:        e.running,
		State:          state,
		BeatHighScore:  e.beatHigh,
		FinalHighScore: final,
	}
}
