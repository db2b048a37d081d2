package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input: Q quits, space pauses, J/K
// slow down or speed up the time multiplier while held.
func (g *Game) handleInput(frameTime float32) {
	if rl.IsKeyPressed(rl.KeyQ) {
		g.quit = true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	step := float32(g.cfg.Speed.Step) * frameTime
	if rl.IsKeyDown(rl.KeyK) {
		g.speed += step
	}
	if rl.IsKeyDown(rl.KeyJ) {
		g.speed -= step
		if min := float32(g.cfg.Speed.Min); g.speed < min {
			g.speed = min
		}
	}
}
