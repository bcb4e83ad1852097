// Command demo is a small bouncing-boxes game embedding the update loop:
// input is polled at the start of each frame, physics advances on the fixed
// update, rendering happens at the end of each frame, and frame statistics
// feed the on-screen overlay and the stats log.
//
// Keys: C toggles FPS capping, UP/DOWN change the target rate, TAB toggles
// the stats overlay, R restarts the run, ESC or the window button quits.
package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dbosnich/simple-application/application"
	"github.com/dbosnich/simple-application/internal/config"
	"github.com/dbosnich/simple-application/internal/env"
	"github.com/dbosnich/simple-application/internal/logger"
	"github.com/dbosnich/simple-application/internal/overlay"
	"github.com/dbosnich/simple-application/internal/physics"
	"github.com/dbosnich/simple-application/loop"
)

// statsLogInterval is how many frames pass between stats log lines.
const statsLogInterval = 60

type demo struct {
	app     *application.Application
	prefs   config.Prefs
	log     *logger.Logger
	overlay *overlay.Overlay

	world  *physics.World
	camera rl.Camera3D
}

func main() {
	_ = env.Load(".env")
	prefs := config.Load()

	d := &demo{
		app:     application.New(os.Args),
		prefs:   prefs,
		log:     logger.New(prefs.StatsLog),
		overlay: overlay.New(),
	}
	d.overlay.Visible = prefs.ShowStats
	d.app.SetCappedFPS(prefs.CappedFPS)

	rl.InitWindow(prefs.WindowWidth, prefs.WindowHeight, "simple application demo")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull) // ESC is handled in UpdateStart

	d.app.Run(d, prefs.TargetFPS)
}

// StartUp builds a fresh scene: a floor and a stack of falling boxes. Called
// again on every restart, so R rebuilds the scene from scratch.
func (d *demo) StartUp() {
	d.world = physics.NewWorld()
	d.world.AddBody(&physics.Body{
		Position: physics.Vec3{Y: -0.5},
		Size:     physics.Vec3{X: 20, Y: 1, Z: 20},
		Static:   true,
	})
	for i := 0; i < 6; i++ {
		d.world.AddBody(&physics.Body{
			Position: physics.Vec3{
				X: float32(i%3) * 1.2,
				Y: 4 + float32(i)*1.5,
				Z: float32(i%2) * 1.1,
			},
			Size: physics.Vec3{X: 1, Y: 1, Z: 1},
			Mass: 1,
		})
	}

	d.camera = rl.Camera3D{
		Position:   rl.NewVector3(8, 6, 8),
		Target:     rl.NewVector3(0, 1, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	d.log.Log(fmt.Sprintf("run started: target %d fps, capped %v",
		d.app.TargetFPS(), d.app.CappedFPS()))
}

func (d *demo) ShutDown() {
	d.log.Log("run ended")
}

// UpdateStart polls input; this is the non-deterministic per-frame work that
// must happen before any fixed updates.
func (d *demo) UpdateStart(deltaTime float32) {
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape) {
		d.app.RequestShutDown()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		d.app.RequestRestart()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		d.app.SetCappedFPS(!d.app.CappedFPS())
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		d.overlay.Visible = !d.overlay.Visible
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		d.app.SetTargetFPS(d.app.TargetFPS() + 10)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		if fps := d.app.TargetFPS(); fps > 10 {
			d.app.SetTargetFPS(fps - 10)
		} else {
			d.app.SetTargetFPS(1)
		}
	}
}

// UpdateFixed advances the simulation deterministically.
func (d *demo) UpdateFixed(fixedTime float32) {
	d.world.Step(fixedTime)
}

// UpdateEnded renders the frame; rendering sits at the end of the frame so it
// always sees the latest fixed-update state.
func (d *demo) UpdateEnded(deltaTime float32) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(d.camera)
	rl.DrawGrid(20, 1)
	for i, b := range d.world.Bodies {
		pos := rl.NewVector3(b.Position.X, b.Position.Y, b.Position.Z)
		size := rl.NewVector3(b.Size.X, b.Size.Y, b.Size.Z)
		color := rl.Gray
		if !b.Static {
			color = boxColors[i%len(boxColors)]
		}
		rl.DrawCubeV(pos, size, color)
		rl.DrawCubeWiresV(pos, size, rl.DarkGray)
	}
	rl.EndMode3D()

	d.overlay.Draw()
	rl.EndDrawing()
}

// OnFrameComplete feeds the overlay and, periodically, the stats log.
func (d *demo) OnFrameComplete(stats loop.FrameStats) {
	d.overlay.Record(stats)
	if stats.NumFrames%statsLogInterval == 0 {
		d.log.Log(fmt.Sprintf("frame %d: %d/%d fps, %v actual, %v excess",
			stats.NumFrames, stats.ActualFPS, stats.TargetFPS,
			stats.ActualDur, stats.ExcessDur))
	}
}

var boxColors = []rl.Color{
	rl.Red, rl.Orange, rl.Gold, rl.Lime, rl.SkyBlue, rl.Violet,
}
