// Package physics is a small fixed-timestep simulation: gravity, Euler
// integration and AABB collision resolution. It is deterministic for a given
// step size, which is why the demo advances it only from the loop's fixed
// update.
package physics

import (
	"github.com/chewxy/math32"
)

// Vec3 is a position, velocity or extent in world units.
type Vec3 struct {
	X, Y, Z float32
}

// Body is a box-shaped rigid body. Static bodies never move and never take
// gravity; dynamic bodies do both.
type Body struct {
	Position Vec3
	Velocity Vec3
	Size     Vec3 // full extents; zero components are treated as 1
	Mass     float32
	Static   bool
}

// aabb is an axis-aligned bounding box in min/max form.
type aabb struct {
	min, max Vec3
}

// World holds a set of bodies under a shared gravity vector.
type World struct {
	Gravity Vec3
	Bodies  []*Body
}

// NewWorld returns a world with default gravity pulling along -Y.
func NewWorld() *World {
	return &World{Gravity: Vec3{0, -9.8, 0}}
}

// AddBody appends a body to the world. Order is preserved so hosts can sync
// bodies with their render objects by index.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Step advances the simulation by dt seconds: apply gravity, integrate, then
// resolve AABB overlaps. dt is expected to be the loop's fixed delta; calling
// with a variable delta forfeits determinism.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity.X += w.Gravity.X * dt
		b.Velocity.Y += w.Gravity.Y * dt
		b.Velocity.Z += w.Gravity.Z * dt
		b.Position.X += b.Velocity.X * dt
		b.Position.Y += b.Velocity.Y * dt
		b.Position.Z += b.Velocity.Z * dt
	}

	// Resolve overlapping pairs by pushing apart along the axis of
	// minimum penetration. Static bodies never move.
	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		boxI := bodyAABB(bi)
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			depth, axis := penetration(boxI, bodyAABB(bj))
			if axis < 0 {
				continue
			}
			resolve(bi, bj, depth, axis)
			boxI = bodyAABB(bi) // bi may have moved
		}
	}
}

// bodyAABB returns the box for a body: center position, half extents from
// size with zero components defaulting to 1.
func bodyAABB(b *Body) aabb {
	sx, sy, sz := b.Size.X, b.Size.Y, b.Size.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	half := Vec3{sx * 0.5, sy * 0.5, sz * 0.5}
	return aabb{
		min: Vec3{b.Position.X - half.X, b.Position.Y - half.Y, b.Position.Z - half.Z},
		max: Vec3{b.Position.X + half.X, b.Position.Y + half.Y, b.Position.Z + half.Z},
	}
}

// penetration returns the overlap depth and axis (0=X, 1=Y, 2=Z) of minimum
// penetration between two boxes, or (0, -1) when they do not overlap.
func penetration(a, b aabb) (depth float32, axis int) {
	overlapX := math32.Min(a.max.X, b.max.X) - math32.Max(a.min.X, b.min.X)
	overlapY := math32.Min(a.max.Y, b.max.Y) - math32.Max(a.min.Y, b.min.Y)
	overlapZ := math32.Min(a.max.Z, b.max.Z) - math32.Max(a.min.Z, b.min.Z)
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth, axis = overlapX, 0
	if overlapY < depth {
		depth, axis = overlapY, 1
	}
	if overlapZ < depth {
		depth, axis = overlapZ, 2
	}
	return depth, axis
}

// resolve pushes two overlapping bodies apart along the given axis, splitting
// the correction by mass, and kills their velocity on that axis.
func resolve(bi, bj *Body, depth float32, axis int) {
	var moveI, moveJ float32
	switch {
	case bi.Static:
		moveJ = depth
	case bj.Static:
		moveI = -depth
	default:
		total := bi.Mass + bj.Mass
		if total == 0 {
			total = 1
		}
		moveI = -depth * (bj.Mass / total)
		moveJ = depth * (bi.Mass / total)
	}

	shift := func(b *Body, amount float32) {
		if amount == 0 {
			return
		}
		switch axis {
		case 0:
			b.Position.X += amount
			b.Velocity.X = 0
		case 1:
			b.Position.Y += amount
			b.Velocity.Y = 0
		case 2:
			b.Position.Z += amount
			b.Velocity.Z = 0
		}
	}
	shift(bi, moveI)
	shift(bj, moveJ)
}
