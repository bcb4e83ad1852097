// Package loop provides a fixed/variable hybrid update loop for games,
// simulations and other hosts that need deterministic sub-stepping decoupled
// from wall-clock jitter. Each frame offers a variable-delta update, at most
// one fixed-delta update synchronized to the target rate, and an end-of-frame
// variable-delta update, with optional FPS capping and a target rate that can
// be changed while running.
package loop

import (
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"
)

const (
	// DefaultTargetFPS is the target frame rate a new Loop runs at.
	DefaultTargetFPS uint32 = 60

	// DefaultCappedFPS is whether a new Loop caps to the target frame rate.
	DefaultCappedFPS = true
)

// Updater is the set of lifecycle hooks a host supplies to Run.
//
// StartUp and ShutDown bracket each run episode; UpdateStart and UpdateEnded
// bracket each frame with a variable delta (seconds, capped at the fixed
// delta); UpdateFixed receives the fixed delta and fires when the accumulated
// frame duration reaches the target frame duration, which is exactly once
// per frame when running capped at a constant target rate. When uncapped it
// may be skipped on some frames, but a fired fixed update is always bookended
// by UpdateStart and UpdateEnded.
type Updater interface {
	StartUp()
	ShutDown()

	UpdateStart(deltaTime float32)
	UpdateFixed(fixedTime float32)
	UpdateEnded(deltaTime float32)
}

// FrameListener is optionally implemented by an Updater that wants per-frame
// statistics. It is for debug/diagnostic/profiling purposes only and must not
// be used to drive control flow or timing.
type FrameListener interface {
	OnFrameComplete(FrameStats)
}

// FrameStats describes one completed frame. It is valid for the duration of
// the OnFrameComplete call it is delivered to.
type FrameStats struct {
	NumFrames uint64        // frames completed this run episode
	ActualFPS uint32        // measured rate, rounded rather than truncated
	TargetFPS uint32        // target rate in effect for the frame
	ActualDur time.Duration // measured frame duration
	TargetDur time.Duration // target frame duration
	ExcessDur time.Duration // accumulated duration not yet consumed by a fixed update
}

// Loop drives the update cycle of a single host. The control surface
// (setters, getters and requests) is lock-free and safe to call from any
// goroutine at any time, including from inside the hooks themselves.
//
// A Loop supports one active Run at a time; invoking Run concurrently on the
// same Loop is a precondition violation with undefined interleaving.
type Loop struct {
	targetFPS         atomic.Uint32
	cappedFPS         atomic.Bool
	shutDownRequested atomic.Bool
	restartRequested  atomic.Bool
}

// New returns a Loop targeting DefaultTargetFPS with capping enabled.
func New() *Loop {
	l := &Loop{}
	l.targetFPS.Store(DefaultTargetFPS)
	l.cappedFPS.Store(DefaultCappedFPS)
	return l
}

// Run drives the update loop in the calling goroutine until a shut down is
// requested. A restart request ends the current run episode (ShutDown is
// called) and starts a new one (StartUp is called again); a shut down request
// ends the episode and returns. If both are requested in the same frame the
// shut down wins.
func (l *Loop) Run(u Updater, targetFPS uint32) {
	l.SetTargetFPS(targetFPS)

	listener, _ := u.(FrameListener)

	for {
		// Clear any shut down or restart requests.
		l.shutDownRequested.Store(false)
		l.restartRequested.Store(false)

		u.StartUp()

		// Seed the accumulator with one target duration so a fixed
		// update fires on the very first frame.
		accumulatedDur := time.Second / time.Duration(l.targetFPS.Load())
		lastDur := time.Duration(0)
		lastEndTime := time.Now()
		frameStats := FrameStats{}

		for !l.shutDownRequested.Load() && !l.restartRequested.Load() {
			// The target rate can change between frames; the
			// snapshot taken here is authoritative for the rest
			// of the frame.
			targetFPS := l.targetFPS.Load()
			targetDur := time.Second / time.Duration(targetFPS)
			fixedTime := 1.0 / float32(targetFPS)

			// Variable delta derived from the last frame duration,
			// capped in case the host is running slower than target.
			deltaTime := float32(lastDur.Seconds())
			deltaTimeCapped := math32.Min(deltaTime, fixedTime)
			u.UpdateStart(deltaTimeCapped)

			if accumulatedDur >= targetDur {
				u.UpdateFixed(fixedTime)

				// Reduce the accumulator by the amount consumed,
				// clamping the remainder so it cannot grow without
				// bound when running slower than target.
				accumulatedDur -= targetDur
				if accumulatedDur > targetDur {
					accumulatedDur = targetDur
				}
			}

			u.UpdateEnded(deltaTimeCapped)

			// Measure time elapsed since the last frame ended
			// and, when capped, busy-wait until it reaches the
			// target duration.
			capped := l.cappedFPS.Load()
			var endTime time.Time
			for {
				endTime = time.Now()
				lastDur = endTime.Sub(lastEndTime)
				if !capped || lastDur >= targetDur {
					break
				}
			}
			accumulatedDur += lastDur
			lastEndTime = endTime

			frameStats.NumFrames++
			frameStats.ActualFPS = roundedFPS(lastDur)
			frameStats.TargetFPS = targetFPS
			frameStats.ActualDur = lastDur
			frameStats.TargetDur = targetDur
			frameStats.ExcessDur = accumulatedDur
			if listener != nil {
				listener.OnFrameComplete(frameStats)
			}
		}

		u.ShutDown()

		// Return if shut down was requested, loop if only restart was.
		if l.shutDownRequested.Load() || !l.restartRequested.Load() {
			return
		}
	}
}

// RunInThread invokes Run in a new goroutine. The returned channel is closed
// when Run returns; receiving from it is the equivalent of a join.
func (l *Loop) RunInThread(u Updater, targetFPS uint32) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(u, targetFPS)
	}()
	return done
}

// SetTargetFPS sets the target frame rate. A zero value is coerced to 1; the
// loop must always target at least one frame per second. Takes effect at the
// next frame boundary.
func (l *Loop) SetTargetFPS(targetFPS uint32) {
	if targetFPS == 0 {
		targetFPS = 1
	}
	l.targetFPS.Store(targetFPS)
}

// SetCappedFPS sets whether the loop actively waits each frame to avoid
// exceeding the target frame rate. Takes effect at the next frame boundary.
func (l *Loop) SetCappedFPS(cappedFPS bool) {
	l.cappedFPS.Store(cappedFPS)
}

// TargetFPS returns the target frame rate the loop is set to run at.
func (l *Loop) TargetFPS() uint32 {
	return l.targetFPS.Load()
}

// CappedFPS reports whether the loop is capped to the target frame rate.
func (l *Loop) CappedFPS() bool {
	return l.cappedFPS.Load()
}

// RequestShutDown asks the loop to finish the current frame, call ShutDown
// and return from Run. Idempotent; safe from any goroutine.
func (l *Loop) RequestShutDown() {
	l.shutDownRequested.Store(true)
}

// RequestRestart asks the loop to finish the current frame, call ShutDown and
// begin a new run episode. Idempotent; safe from any goroutine. Ignored if a
// shut down is requested in the same frame.
func (l *Loop) RequestRestart() {
	l.restartRequested.Store(true)
}

// roundedFPS converts a frame duration to a rate, rounding half up so the
// reported value is not systematically under the measured one. A zero
// duration (possible uncapped on a coarse clock) reports zero.
func roundedFPS(dur time.Duration) uint32 {
	den := int64(dur)
	if den <= 0 {
		return 0
	}
	return uint32((int64(time.Second) + den/2) / den)
}
