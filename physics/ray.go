package physics

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/torrra/spectrum-retreat-clone/types"
)

// NoHit is the distance reported when a ray misses.
const NoHit float32 = math.MaxFloat32

const slabSentinel float32 = 1e6

// Ray is a half line with a precomputed inverse direction for slab tests.
type Ray struct {
	Origin       types.Vec3
	Direction    types.Vec3
	InvDirection types.Vec3
}

// Create a new ray. Zero direction components get a zero reciprocal.
func NewRay(origin, direction types.Vec3) Ray {
	r := Ray{
		Origin:    origin,
		Direction: types.Normalize(direction),
	}
	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			r.InvDirection[axis] = 1.0 / r.Direction[axis]
		}
	}
	return r
}

// Intersect the ray with a box using the slab method. On a hit the distance
// to the entry point is returned; a ray starting inside the box reports a
// non-positive distance. On a miss NoHit is returned.
func (r Ray) Intersect(b *Box) (float32, bool) {
	tMin, tMax := -slabSentinel, slabSentinel

	for axis := 0; axis < 3; axis++ {
		// A ray parallel to a slab never enters or leaves it
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < b.Min[axis] || r.Origin[axis] > b.Max[axis] {
				return NoHit, false
			}
			continue
		}

		low := (b.Min[axis] - r.Origin[axis]) * r.InvDirection[axis]
		high := (b.Max[axis] - r.Origin[axis]) * r.InvDirection[axis]

		tMax = math32.Min(math32.Max(low, high), tMax)
		tMin = math32.Max(math32.Min(low, high), tMin)
	}

	if tMax > math32.Max(tMin, 0) {
		return tMin, true
	}
	return NoHit, false
}

// Intersect the ray with a box shaped collider. Holed boxes only register a
// hit when the ray does not pass through their hole. Non box colliders never
// report a hit.
func (r Ray) IntersectCollider(c Collider) (float32, bool) {
	bc, ok := c.(BoxCollider)
	if !ok {
		return NoHit, false
	}

	dist, hit := r.Intersect(bc.AsBox())
	if !hit {
		return NoHit, false
	}

	if holed, ok := c.(*HoledBox); ok && holed.Hole != nil {
		if _, throughHole := r.Intersect(holed.Hole); throughHole {
			return NoHit, false
		}
	}
	return dist, true
}
