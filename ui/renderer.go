package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

const borderPadding = 10 // Padding around game area

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame from the latest engine snapshot. It never mutates
// game state.
func (r *Renderer) Draw(snap game.Snapshot, grid types.Grid, highScore int) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := int32(r.screenHeight / 30)
	hudHeight := fontSize + borderPadding*2

	// Calculate cell size from the space left under the HUD
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - hudHeight

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = hudHeight + borderPadding

	// Grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	if snap.HasFood {
		r.drawCell(snap.Food, rl.Red)
	}

	for i, p := range snap.Snake {
		color := rl.Green
		if i == 0 {
			color = rl.Lime // Head drawn brighter
		}
		r.drawCell(p, color)
	}

	hud := fmt.Sprintf("Score: %d   High: %d   Speed: %dms",
		snap.Score, highScore, snap.Interval.Milliseconds())
	if snap.BeatHighScore {
		hud += "   NEW HIGH!"
	}
	rl.DrawText(hud, borderPadding, borderPadding, fontSize, rl.RayWhite)

	switch snap.State {
	case game.StateGameOver:
		r.drawCenteredText("GAME OVER - R to restart", fontSize, rl.Red)
	case game.StateWin:
		r.drawCenteredText("YOU WIN - R to restart", fontSize, rl.Gold)
	case game.StatePaused:
		r.drawCenteredText("SPACE to play", fontSize, rl.Gray)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize+1,
		r.offsetY+int32(p.Y)*r.cellSize+1,
		r.cellSize-2, r.cellSize-2, color)
}

func (r *Renderer) drawCenteredText(text string, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		(r.screenWidth-width)/2,
		r.offsetY+r.totalGridHeight/2-fontSize/2,
		fontSize, color)
}
