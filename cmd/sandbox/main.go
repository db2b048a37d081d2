// Physics sandbox - interactive test bed for the collision world.
//
// Usage: go run ./cmd/sandbox
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hopper/geom"
	"github.com/pthm-cable/hopper/physics"
)

const (
	windowWidth  = 800
	windowHeight = 600
	panelWidth   = 220

	floorGroup = 1
)

// buildWorld spawns the standard scene: a box launched across the field
// and a static floor it lands on.
func buildWorld(gravity geom.Vec2) *physics.World {
	w := physics.NewWorld(gravity)

	w.Spawn(
		physics.Transform{Pos: geom.V(300, 400), Size: geom.V(20, 20)},
		physics.Body{Speed: geom.V(2.5, -5.5), Mask: floorGroup},
		physics.ReactLand,
	)

	w.Spawn(
		physics.Transform{Pos: geom.V(0, 500), Size: geom.V(windowWidth, 20)},
		physics.Body{DisableGravity: true, Group: floorGroup},
		physics.ReactNone,
	)

	return w
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Physics Sandbox")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	gravityY := float32(0.05)
	world := buildWorld(geom.V(0, gravityY))

	for !rl.WindowShouldClose() {
		world.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		for i, e := range world.Entities() {
			tr := world.Transform(e)
			color := rl.DarkGray
			if i == 0 {
				color = rl.Maroon
			}
			rl.DrawRectangle(
				int32(tr.Pos.X), int32(tr.Pos.Y),
				int32(tr.Size.X), int32(tr.Size.Y),
				color,
			)
		}

		// Control panel
		panelX := float32(windowWidth - panelWidth - 10)
		panelY := float32(10)

		rl.DrawText("Gravity (per step)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newGravity := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 60, Height: 20},
			"0", "0.5",
			gravityY, 0, 0.5,
		)
		if newGravity != gravityY {
			gravityY = newGravity
			world.SetGravity(geom.V(0, gravityY))
		}
		panelY += 30

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Respawn") {
			world = buildWorld(geom.V(0, gravityY))
		}

		box := world.Transform(world.Entities()[0])
		body := world.Body(world.Entities()[0])
		rl.DrawText(
			fmt.Sprintf("pos (%.1f, %.1f)  speed (%.2f, %.2f)", box.Pos.X, box.Pos.Y, body.Speed.X, body.Speed.Y),
			10, windowHeight-24, 14, rl.DarkGray,
		)

		rl.EndDrawing()
	}
}
