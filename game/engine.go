package game

import (
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Config tunes a single game instance. Zero values fall back to the
// defaults in the types package, so Config{} is a playable game.
type Config struct {
	Grid          types.Grid
	Wrap          bool // Wrap around the edges instead of dying on walls
	StartLength   int
	StartInterval time.Duration
	IntervalStep  time.Duration
	MinInterval   time.Duration
	SpeedUpEvery  int
}

func (c Config) withDefaults() Config {
	if c.Grid.Width <= 0 {
		c.Grid.Width = types.DefaultGridSize
	}
	if c.Grid.Height <= 0 {
		c.Grid.Height = types.DefaultGridSize
	}
	if c.StartLength <= 0 {
		c.StartLength = types.InitialLength
	}
	if c.StartInterval <= 0 {
		c.StartInterval = types.StartInterval
	}
	if c.IntervalStep <= 0 {
		c.IntervalStep = types.IntervalStep
	}
	if c.MinInterval <= 0 {
		c.MinInterval = types.MinInterval
	}
	if c.SpeedUpEvery <= 0 {
		c.SpeedUpEvery = types.SpeedUpEvery
	}
	return c
}

// Engine owns all mutable state of one game instance. State changes only
// through Reset, QueueDirection, Tick and the pause controls; everything
// else reads snapshots. All calls must come from a single goroutine.
type Engine struct {
	cfg          Config
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager

	snake    *entity.Snake
	pending  types.Direction
	food     types.Point
	hasFood  bool
	score    int
	steps    int
	interval time.Duration
	running  bool
	over     bool
	won      bool

	highScore int
	beatHigh  bool
}

// New creates an engine and performs an initial Reset. The random source
// drives food placement; pass a fixed seed for deterministic games.
func New(cfg Config, rng *rand.Rand) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:          cfg,
		collisionMgr: manager.NewCollisionManager(cfg.Grid, cfg.Wrap),
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng),
	}
	e.Reset()
	return e
}

// SetHighScore installs the persisted high score the next runs compete
// against. Typically called once at startup with the stored value.
func (e *Engine) SetHighScore(v int) {
	e.highScore = v
}

// Reset replaces the game state wholesale: a centered snake of the starting
// length moving right, score zero, starting speed, fresh food. The game
// starts paused.
func (e *Engine) Reset() {
	dir := types.Right.ToPoint()
	center := types.Point{X: e.cfg.Grid.Width / 2, Y: e.cfg.Grid.Height / 2}

	e.snake = entity.NewSnake(center, e.cfg.StartLength, dir)
	e.pending = types.None
	e.score = 0
	e.steps = 0
	e.interval = e.cfg.StartInterval
	e.running = false
	e.over = false
	e.won = false
	e.beatHigh = false
	e.food, e.hasFood = e.foodMgr.Place(e.snake)
}

// QueueDirection records d to be applied on the next tick. Only the last
// direction queued before a tick counts. A reversal request is dropped at
// tick time rather than here, and None is ignored outright. Calls after
// the game has ended do nothing.
func (e *Engine) QueueDirection(d types.Direction) {
	if e.terminal() || d.ToPoint() == (types.Point{}) {
		return
	}
	e.pending = d
}

// Start begins ticking after a reset. No-op once the game has ended.
func (e *Engine) Start() {
	if !e.terminal() {
		e.running = true
	}
}

// TogglePause flips the running flag. The scheduler stops calling Tick
// while paused, so game state is preserved exactly.
func (e *Engine) TogglePause() {
	if !e.terminal() {
		e.running = !e.running
	}
}

func (e *Engine) terminal() bool {
	return e.over || e.won
}

// Tick advances the game one step and returns the resulting snapshot. In a
// terminal state it returns the current snapshot unchanged. The running
// flag gates the scheduler, not this method.
func (e *Engine) Tick() Snapshot {
	if e.terminal() {
		return e.Snapshot()
	}
	e.steps++

	// Apply the queued direction, dropping reversal requests. The pending
	// slot is cleared either way.
	if e.pending != types.None {
		e.snake.SetDirection(e.pending.ToPoint())
		e.pending = types.None
	}

	candidate := e.snake.Head().Add(e.snake.Direction)
	newHead, collision := e.collisionMgr.Resolve(candidate, e.snake)
	if collision != manager.NoCollision {
		e.over = true
		e.running = false
		return e.Snapshot()
	}

	e.snake.Move(newHead)

	if e.hasFood && newHead == e.food {
		e.score++
		if !e.beatHigh && e.score > e.highScore {
			e.beatHigh = true
		}
		if e.score%e.cfg.SpeedUpEvery == 0 && e.interval > e.cfg.MinInterval {
			e.interval -= e.cfg.IntervalStep
			if e.interval < e.cfg.MinInterval {
				e.interval = e.cfg.MinInterval
			}
		}
		e.food, e.hasFood = e.foodMgr.Place(e.snake)
		if !e.hasFood {
			// Board is full: the snake covers every cell.
			e.won = true
			e.running = false
		}
	} else {
		e.snake.RemoveTail()
	}

	return e.Snapshot()
}
