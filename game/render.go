package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.NewColor(240, 240, 240, 255)
	floorColor      = rl.NewColor(55, 55, 55, 255)
	obstacleColor   = rl.NewColor(0, 127, 0, 255)
	playerColor     = rl.NewColor(0, 0, 0, 255)
)

// Draw renders the settled tick's state. Moving entities are drawn at
// pos + velocity * interpolation, where the interpolation factor is the
// leftover accumulator fraction, so rendering stays smooth between
// fixed ticks.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	alpha := g.accumulator

	o := &g.env.Obstacle
	drawRect(o.Pos.X+o.VelX*alpha, o.Pos.Y, o.Size.X, o.Size.Y, obstacleColor)

	for i := range g.players {
		p := &g.players[i]
		if !p.Alive {
			continue
		}
		pos := p.Pos.AddScaled(p.Vel, alpha)
		drawRect(pos.X, pos.Y, p.Size.X, p.Size.Y, playerColor)
	}

	fb := g.env.Floor.Box
	drawRect(fb.Min.X, fb.Min.Y, fb.Width(), fb.Height(), floorColor)

	for i, line := range g.StatusLines() {
		rl.DrawText(line, 10, int32(10+25*i), 20, rl.DarkGray)
	}
	if g.paused {
		rl.DrawText("PAUSED", 10, 115, 20, rl.Orange)
	}

	rl.EndDrawing()
}

func drawRect(x, y, w, h float32, color rl.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), color)
}

// StatusLines formats the HUD text. Headless runs and tests share these
// strings with the renderer.
func (g *Game) StatusLines() []string {
	return []string{
		fmt.Sprintf("Score: %.2f", g.BestLivingScore()),
		fmt.Sprintf("Generation: %d", g.generation),
		fmt.Sprintf("Alive: %d", g.aliveCount),
		fmt.Sprintf("Speed: %.1f", g.speed),
	}
}
