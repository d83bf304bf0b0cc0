package physics

import (
	"github.com/chewxy/math32"
	"github.com/torrra/spectrum-retreat-clone/types"
)

// Plane is a half space described by a unit normal and its signed distance
// from the origin along that normal.
type Plane struct {
	Normal   types.Vec3
	Distance float32
}

// Create a plane from a normal and a distance. The normal is normalized.
func NewPlane(normal types.Vec3, distance float32) Plane {
	return Plane{Normal: types.Normalize(normal), Distance: distance}
}

// Create a plane passing through point.
func PlaneFromPoint(point, normal types.Vec3) Plane {
	n := types.Normalize(normal)
	return Plane{Normal: n, Distance: n.Dot(point)}
}

// Create a plane whose distance is the negated magnitude of point. This
// matches the standard form only when the plane passes near the origin and
// is kept for levels tuned against it.
func LegacyPlaneFromPoint(point, normal types.Vec3) Plane {
	return Plane{Normal: types.Normalize(normal), Distance: -point.Len()}
}

// Signed distance of p from the plane. Positive values lie on the side the
// normal points to.
func (p Plane) FindDistance(point types.Vec3) float32 {
	return p.Normal.Dot(point) - p.Distance
}

// Returns true if the box lies in front of the plane or intersects it. The
// half extent length is added to the projected radius as a safety margin.
func (p Plane) IntersectOrForward(b *Box) bool {
	var radius float32
	for axis := 0; axis < 3; axis++ {
		radius += math32.Abs(b.HalfExtent[axis] * p.Normal[axis])
	}
	return -(radius + b.HalfExtent.Len()) <= p.FindDistance(b.Position)
}

// Frustum plane indices.
const (
	Near = iota
	Far
	Left
	Right
	Top
	Bottom
)

// Frustum is a view volume bounded by six inward facing planes.
type Frustum struct {
	Planes [6]Plane
}

// Returns true unless the box lies completely behind one of the planes.
func (f *Frustum) Intersect(b *Box) bool {
	for _, plane := range f.Planes {
		if !plane.IntersectOrForward(b) {
			return false
		}
	}
	return true
}
