package application

import (
	"testing"
)

// countingHost records lifecycle calls and shuts the loop down after a set
// number of frames.
type countingHost struct {
	app *Application

	startUps  int
	shutDowns int
	starts    int
	fixeds    int
	endeds    int

	framesWanted int
}

func (h *countingHost) StartUp()  { h.startUps++ }
func (h *countingHost) ShutDown() { h.shutDowns++ }

func (h *countingHost) UpdateStart(deltaTime float32) {
	h.starts++
	if h.starts == h.framesWanted {
		h.app.RequestShutDown()
	}
}

func (h *countingHost) UpdateFixed(fixedTime float32) { h.fixeds++ }
func (h *countingHost) UpdateEnded(deltaTime float32) { h.endeds++ }

func TestArgumentStorage(t *testing.T) {
	args := []string{"demo", "--capped", "--fps=120"}
	app := New(args)

	if got := app.ArgCount(); got != len(args) {
		t.Errorf("ArgCount() = %d, want %d", got, len(args))
	}
	for i, v := range app.ArgValues() {
		if v != args[i] {
			t.Errorf("ArgValues()[%d] = %q, want %q", i, v, args[i])
		}
	}
}

func TestNoArguments(t *testing.T) {
	app := New(nil)
	if got := app.ArgCount(); got != 0 {
		t.Errorf("ArgCount() = %d, want 0", got)
	}
}

// TestPromotedControlSurface drives a short run through the embedded loop to
// confirm the Application exposes the full control surface.
func TestPromotedControlSurface(t *testing.T) {
	app := New([]string{"demo"})
	app.SetCappedFPS(true)
	if !app.CappedFPS() {
		t.Fatal("CappedFPS() = false after SetCappedFPS(true)")
	}

	host := &countingHost{app: app, framesWanted: 3}
	app.Run(host, 120)

	if host.startUps != 1 || host.shutDowns != 1 {
		t.Errorf("start up/shut down = %d/%d, want 1/1",
			host.startUps, host.shutDowns)
	}
	if host.starts != 3 || host.endeds != 3 {
		t.Errorf("update start/ended = %d/%d, want 3/3",
			host.starts, host.endeds)
	}
	if host.fixeds != 3 {
		t.Errorf("update fixed = %d, want 3 for a capped constant-rate run",
			host.fixeds)
	}
	if got := app.TargetFPS(); got != 120 {
		t.Errorf("TargetFPS() = %d, want 120", got)
	}
}
