package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/torrra/spectrum-retreat-clone/types"
)

func TestTransformPropagation(t *testing.T) {
	g := NewGraph()

	a := NewMesh("cube")
	b := NewMesh("cube")
	c := NewMesh("cube")

	nodeA := g.AttachRoot("a", a)
	nodeB := g.AttachChild("a", "b", b)
	nodeC := g.AttachChild("b", "c", c)

	a.Translate(types.XYZ(1, 0, 0))
	b.Rotate(90, types.XYZ(0, 1, 0))
	b.Scale(types.XYZ(2, 2, 2))
	c.Translate(types.XYZ(0, 1, 3))

	g.UpdateAll()

	exp := nodeA.Local.Mul4(nodeB.Local).Mul4(nodeC.Local)
	if !nodeC.Global.ApproxEqualThreshold(exp, 1e-5) {
		t.Fatalf("expected C global transform to be\n%v\ngot\n%v", exp, nodeC.Global)
	}

	for _, n := range []*Node{nodeA, nodeB, nodeC} {
		if n.Dirty {
			t.Fatalf("expected node %q to be clean after update", n.Key())
		}
	}

	// World position of C: (1,0,0) + R_y(90) * 2 * (0,1,3)
	expPos := types.XYZ(1+6, 2, 0)
	if !nodeC.Position().ApproxEqualThreshold(expPos, 1e-5) {
		t.Fatalf("expected C world position %v; got %v", expPos, nodeC.Position())
	}
}

func TestUpdateAllIsIdempotent(t *testing.T) {
	g := NewGraph()
	a := NewMesh("cube")
	b := NewMesh("cube")
	nodeA := g.AttachRoot("a", a)
	nodeB := g.AttachChild("a", "b", b)

	a.Translate(types.XYZ(0, 5, 0))
	b.Scale(types.XYZ(3, 1, 1))
	g.UpdateAll()

	globalA, globalB := nodeA.Global, nodeB.Global

	// Clean nodes are never recomputed even if their local transform changes
	nodeA.Local = mgl32.Translate3D(100, 100, 100)
	g.UpdateAll()

	if nodeA.Global != globalA || nodeB.Global != globalB {
		t.Fatal("expected second update to leave global transforms unchanged")
	}
}

func TestDeepDirtyNodeBelowCleanParent(t *testing.T) {
	g := NewGraph()
	a := NewMesh("cube")
	b := NewMesh("cube")
	c := NewMesh("cube")
	g.AttachRoot("a", a)
	g.AttachChild("a", "b", b)
	nodeC := g.AttachChild("b", "c", c)

	a.Translate(types.XYZ(1, 0, 0))
	g.UpdateAll()

	c.Translate(types.XYZ(0, 0, 2))
	g.UpdateAll()

	if pos := nodeC.Position(); pos != types.XYZ(1, 0, 2) {
		t.Fatalf("expected dirty grandchild to be recomputed; got %v", pos)
	}
}

func TestGetTypeMismatch(t *testing.T) {
	g := NewGraph()
	g.AttachRoot("light", NewPointLight(types.XYZ(0, 0, 0), types.White))

	if m := Get[*Mesh](g, "light"); m != nil {
		t.Fatalf("expected nil mesh on type mismatch; got %v", m)
	}
	if l := Get[*PointLight](g, "light"); l == nil {
		t.Fatal("expected point light lookup to succeed")
	}
	if l := Get[Light](g, "light"); l == nil || l.Kind() != PointLightKind {
		t.Fatal("expected lookup through the light interface to succeed")
	}
	if m := Get[*Mesh](g, "missing"); m != nil {
		t.Fatal("expected nil result for unknown key")
	}
}

func TestGraphStructure(t *testing.T) {
	g := NewGraph()
	root := g.AttachRoot("root", NewMesh("cube"))
	child := g.AttachChild("root", "child", NewMesh("cube"))
	orphan := g.AttachChild("missing", "orphan", NewMesh("cube"))

	if g.Parent(child) != root {
		t.Fatal("expected child parent to be root")
	}
	if g.Parent(orphan) != nil {
		t.Fatal("expected orphan to be parentless")
	}
	if len(g.Roots()) != 2 || len(g.Children(root)) != 1 {
		t.Fatalf("unexpected graph shape; roots: %d", len(g.Roots()))
	}

	g.Remove("root")
	if g.Find("child") != nil || g.Len() != 1 {
		t.Fatalf("expected subtree removal; %d nodes left", g.Len())
	}
}
