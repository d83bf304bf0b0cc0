package physics

import "github.com/chewxy/math32"

// BoxBox returns true if both boxes are enabled and their closed intervals
// overlap on every axis.
func BoxBox(a, b *Box) bool {
	if !a.Enabled || !b.Enabled {
		return false
	}

	for axis := 0; axis < 3; axis++ {
		if a.Max[axis] < b.Min[axis] || a.Min[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// SphereBox returns true if the box is enabled and the point of the box
// closest to the sphere center lies within the sphere radius.
func SphereBox(s *Sphere, b *Box) bool {
	if !b.Enabled {
		return false
	}

	var distSq float32
	for axis := 0; axis < 3; axis++ {
		closest := math32.Max(b.Min[axis], math32.Min(s.Position[axis], b.Max[axis]))
		d := s.Position[axis] - closest
		distSq += d * d
	}
	return math32.Sqrt(distSq) <= s.Radius
}

// SphereSphere returns true if the center distance is strictly less than
// the sum of the radii.
func SphereSphere(a, b *Sphere) bool {
	return a.Position.Sub(b.Position).Len() < a.Radius+b.Radius
}

type pairTest func(node, target Collider) bool

// Pairwise predicates indexed by [node shape][target shape]. Pairs involving
// ShapeNone have no entry and never collide.
var dispatch = [numShapes][numShapes]pairTest{
	ShapeBox: {
		ShapeBox: func(node, target Collider) bool {
			return BoxBox(node.(BoxCollider).AsBox(), target.(BoxCollider).AsBox())
		},
		ShapeSphere: func(node, target Collider) bool {
			return SphereBox(target.(*Sphere), node.(BoxCollider).AsBox())
		},
	},
	ShapeSphere: {
		ShapeBox: func(node, target Collider) bool {
			return SphereBox(node.(*Sphere), target.(BoxCollider).AsBox())
		},
		ShapeSphere: func(node, target Collider) bool {
			return SphereSphere(node.(*Sphere), target.(*Sphere))
		},
	},
}

// Collide tests a hierarchy collider against a query collider using the
// pairwise predicate selected by their shapes.
func Collide(node, target Collider) bool {
	if node == nil || target == nil {
		return false
	}

	nodeShape := shapeOf(node)
	targetShape := shapeOf(target)
	test := dispatch[nodeShape][targetShape]
	if test == nil {
		return false
	}
	return test(node, target)
}

// Resolve the shape a collider can be tested as. A collider whose type tag
// does not match its geometry is treated as shapeless.
func shapeOf(c Collider) Shape {
	switch c.Type().Shape() {
	case ShapeBox:
		if _, ok := c.(BoxCollider); ok {
			return ShapeBox
		}
	case ShapeSphere:
		if _, ok := c.(*Sphere); ok {
			return ShapeSphere
		}
	}
	return ShapeNone
}
