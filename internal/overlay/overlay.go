// Package overlay draws live frame statistics on top of the demo scene.
package overlay

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dbosnich/simple-application/loop"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// rebuildInterval: only re-format the stats text every N frames to
	// limit per-frame allocations.
	rebuildInterval = 30
)

// Overlay renders the most recent loop.FrameStats in the top-right corner.
// All fields are updated from the run goroutine only.
type Overlay struct {
	Visible bool

	stats      loop.FrameStats
	frameCount uint32
	lines      []string
}

// New returns a hidden overlay.
func New() *Overlay {
	return &Overlay{}
}

// Record stores the stats of the frame that just completed. Call from the
// host's OnFrameComplete.
func (o *Overlay) Record(stats loop.FrameStats) {
	o.stats = stats
}

// Draw renders the overlay if visible. Call between BeginDrawing and
// EndDrawing, after the scene. Text is rebuilt every rebuildInterval frames.
func (o *Overlay) Draw() {
	if !o.Visible {
		return
	}
	o.frameCount++
	if len(o.lines) == 0 || o.frameCount%rebuildInterval == 0 {
		o.lines = o.format()
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, line := range o.lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}

func (o *Overlay) format() []string {
	s := o.stats
	return []string{
		fmt.Sprintf("FPS: %d / %d", s.ActualFPS, s.TargetFPS),
		fmt.Sprintf("Frame: %d", s.NumFrames),
		fmt.Sprintf("Dur: %.2fms / %.2fms",
			float64(s.ActualDur.Microseconds())/1000,
			float64(s.TargetDur.Microseconds())/1000),
		fmt.Sprintf("Excess: %.2fms",
			float64(s.ExcessDur.Microseconds())/1000),
	}
}
