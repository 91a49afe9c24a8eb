package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/ui"
)

func main() {
	wrap := flag.Bool("wrap", false, "Wrap around the grid edges instead of dying on walls")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time-based)")
	dataDir := flag.String("data", "data", "Directory for high scores and run stats")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	store := manager.NewStateManager(filepath.Join(*dataDir, "gamestats.json"))
	stats := game.NewRunStats()

	grid := types.Grid{Width: types.DefaultGridSize, Height: types.DefaultGridSize}
	engine := game.New(game.Config{Grid: grid, Wrap: *wrap}, rng)
	engine.SetHighScore(store.HighScore())

	rl.InitWindow(800, 880, "gridsnake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()
	runStart := time.Now()
	recorded := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if d := pressedDirection(); d != types.None {
			engine.QueueDirection(d)
		}
		if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) {
			engine.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			engine.SetHighScore(store.HighScore())
			engine.Reset()
			runStart = time.Now()
			recorded = false
		}

		// Fixed-interval scheduler: the interval is re-read from the
		// snapshot every frame so speed-ups apply on the next cycle.
		snap := engine.Snapshot()
		if snap.Running && time.Since(lastUpdate) >= snap.Interval {
			snap = engine.Tick()
			lastUpdate = time.Now()
		}

		if snap.Over() && !recorded {
			recorded = true
			if err := store.RecordRun(snap.Score); err != nil {
				log.Printf("saving high score: %v", err)
			}
			stats.Record(game.RunRecord{
				Score:     snap.Score,
				Steps:     snap.Steps,
				Won:       snap.State == game.StateWin,
				StartTime: runStart,
				EndTime:   time.Now(),
			})
		}

		renderer.Draw(snap, grid, store.HighScore())
	}

	if err := stats.Save(*dataDir); err != nil {
		log.Printf("saving run stats: %v", err)
	}
}

func pressedDirection() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.Up
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.Right
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.Down
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.Left
	}
	return types.None
}
