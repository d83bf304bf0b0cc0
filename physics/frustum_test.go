package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/torrra/spectrum-retreat-clone/types"
)

func TestPlaneDistance(t *testing.T) {
	type spec struct {
		plane Plane
		point types.Vec3
		exp   float32
	}

	specs := []spec{
		{NewPlane(types.XYZ(0, 2, 0), 1), types.XYZ(0, 3, 0), 2},
		{PlaneFromPoint(types.XYZ(0, 0, 5), types.XYZ(0, 0, 1)), types.XYZ(0, 0, 2), -3},
		{PlaneFromPoint(types.XYZ(4, 0, 5), types.XYZ(1, 0, 0)), types.XYZ(10, 7, 7), 6},
		// Legacy planes use the point magnitude as distance
		{LegacyPlaneFromPoint(types.XYZ(0, 0, 5), types.XYZ(0, 0, 1)), types.XYZ(0, 0, 2), 7},
	}

	for index, s := range specs {
		if got := s.plane.FindDistance(s.point); !mgl32.FloatEqual(got, s.exp) {
			t.Fatalf("[spec %d] expected distance %f; got %f", index, s.exp, got)
		}
	}
}

func TestIntersectOrForward(t *testing.T) {
	type spec struct {
		box *Box
		exp bool
	}

	// Half space z >= 0
	plane := PlaneFromPoint(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))

	specs := []spec{
		{NewBox(types.XYZ(0, 0, 5), types.XYZ(1, 1, 1)), true},
		{NewBox(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1)), true},
		// Behind the plane but within projected radius + margin (1 + sqrt(3))
		{NewBox(types.XYZ(0, 0, -2.5), types.XYZ(1, 1, 1)), true},
		{NewBox(types.XYZ(0, 0, -3), types.XYZ(1, 1, 1)), false},
	}

	for index, s := range specs {
		if got := plane.IntersectOrForward(s.box); got != s.exp {
			t.Fatalf("[spec %d] expected %t; got %t", index, s.exp, got)
		}
	}
}

func TestFrustumIntersect(t *testing.T) {
	// An axis aligned view volume spanning [-10, 10] on x/y and [1, 100] on z
	var f Frustum
	f.Planes[Near] = PlaneFromPoint(types.XYZ(0, 0, 1), types.XYZ(0, 0, 1))
	f.Planes[Far] = PlaneFromPoint(types.XYZ(0, 0, 100), types.XYZ(0, 0, -1))
	f.Planes[Left] = PlaneFromPoint(types.XYZ(-10, 0, 0), types.XYZ(1, 0, 0))
	f.Planes[Right] = PlaneFromPoint(types.XYZ(10, 0, 0), types.XYZ(-1, 0, 0))
	f.Planes[Top] = PlaneFromPoint(types.XYZ(0, 10, 0), types.XYZ(0, -1, 0))
	f.Planes[Bottom] = PlaneFromPoint(types.XYZ(0, -10, 0), types.XYZ(0, 1, 0))

	type spec struct {
		box *Box
		exp bool
	}

	specs := []spec{
		{NewBox(types.XYZ(0, 0, 50), types.XYZ(1, 1, 1)), true},
		{NewBox(types.XYZ(0, 0, 200), types.XYZ(1, 1, 1)), false},
		{NewBox(types.XYZ(50, 0, 50), types.XYZ(1, 1, 1)), false},
		{NewBox(types.XYZ(0, -50, 50), types.XYZ(1, 1, 1)), false},
		{NewBox(types.XYZ(0, 0, -20), types.XYZ(1, 1, 1)), false},
		{NewBox(types.XYZ(11, 0, 50), types.XYZ(1, 1, 1)), true},
	}

	for index, s := range specs {
		if got := f.Intersect(s.box); got != s.exp {
			t.Fatalf("[spec %d] expected %t; got %t", index, s.exp, got)
		}
	}
}
