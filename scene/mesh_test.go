package scene

import (
	"testing"

	"github.com/torrra/spectrum-retreat-clone/types"
)

func TestMeshTransformOrder(t *testing.T) {
	g := NewGraph()
	m := NewMesh("cube")
	n := g.AttachRoot("wall", m)

	m.Translate(types.XYZ(5, 0, 0))
	m.Scale(types.XYZ(2, 1, 1))
	g.UpdateAll()

	if tr := types.Translation(n.Global); tr != types.XYZ(5, 0, 0) {
		t.Fatalf("expected translation (5, 0, 0); got %v", tr)
	}
	if sc := types.DiagonalScale(n.Global); sc != types.XYZ(2, 1, 1) {
		t.Fatalf("expected scale (2, 1, 1); got %v", sc)
	}
	if m.Position != types.XYZ(5, 0, 0) || m.Scaling != types.XYZ(2, 1, 1) {
		t.Fatalf("unexpected bookkeeping: pos %v scale %v", m.Position, m.Scaling)
	}
}

func TestMeshSetPosition(t *testing.T) {
	g := NewGraph()
	m := NewMesh("cube")
	n := g.AttachRoot("cube", m)

	m.SetPosition(types.XYZ(1, 2, 3))
	m.SetPosition(types.XYZ(4, 2, 3))
	g.UpdateAll()

	if pos := n.Position(); pos != types.XYZ(4, 2, 3) {
		t.Fatalf("expected position (4, 2, 3); got %v", pos)
	}
}

func TestMeshSetPositionAfterRotation(t *testing.T) {
	g := NewGraph()
	m := NewMesh("door")
	n := g.AttachRoot("door", m)

	m.Translate(types.XYZ(1, 0, 0))
	m.Rotate(90, types.XYZ(0, 1, 0))
	m.Scale(types.XYZ(2, 1, 1))
	m.SetPosition(types.XYZ(4, 2, 3))
	g.UpdateAll()

	pos := n.Position()
	if !pos.ApproxEqualThreshold(types.XYZ(4, 2, 3), 1e-5) {
		t.Fatalf("expected position (4, 2, 3); got %v", pos)
	}
	if m.Position != types.XYZ(4, 2, 3) {
		t.Fatalf("expected bookkeeping position (4, 2, 3); got %v", m.Position)
	}

	// Orientation and scale survive the move
	axisX := n.Global.Mul4x1(types.XYZW(1, 0, 0, 0)).Vec3()
	if !axisX.ApproxEqualThreshold(types.XYZ(0, 0, -2), 1e-5) {
		t.Fatalf("expected local x axis to map to (0, 0, -2); got %v", axisX)
	}
}

func TestDetachedMeshTransform(t *testing.T) {
	m := NewMesh("cube")
	m.Translate(types.XYZ(1, 0, 0))

	if m.Node() != nil || m.Position != types.XYZ(1, 0, 0) {
		t.Fatalf("expected detached mesh to only track bookkeeping")
	}
}

func TestMeshShiftIgnoresScale(t *testing.T) {
	g := NewGraph()
	m := NewMesh("cube")
	n := g.AttachRoot("cube", m)

	m.Translate(types.XYZ(5, 0, 0))
	m.Scale(types.XYZ(1.5, 1, 1))
	m.Shift(types.XYZ(-2, 0, 0))
	g.UpdateAll()

	if pos := n.Position(); pos != types.XYZ(3, 0, 0) {
		t.Fatalf("expected position (3, 0, 0); got %v", pos)
	}
	if sc := types.DiagonalScale(n.Global); sc != types.XYZ(1.5, 1, 1) {
		t.Fatalf("expected scale (1.5, 1, 1); got %v", sc)
	}
}
