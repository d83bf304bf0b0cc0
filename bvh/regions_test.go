package bvh

import (
	"strings"
	"testing"

	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/types"
)

func regionItems() []Item {
	type boxSpec struct {
		min types.Vec3
		max types.Vec3
	}

	boxSpecs := []boxSpec{
		{types.Vec3{-2, 0, -2}, types.Vec3{-1, 1, -1}},
		{types.Vec3{1, 0, -2}, types.Vec3{2, 1, -1}},
		{types.Vec3{-2, 0, 1}, types.Vec3{-1, 1, 2}},
		{types.Vec3{1, 0, 1}, types.Vec3{2, 1, 2}},
	}

	items := make([]Item, len(boxSpecs))
	for idx, bs := range boxSpecs {
		items[idx] = Item{
			Key:      string(rune('a' + idx)),
			Collider: physics.NewBox(bs.min.Add(bs.max).Mul(0.5), bs.max.Sub(bs.min).Mul(0.5)),
		}
	}
	return items
}

func countRegions(h *Hierarchy) (regions, leafRegions int) {
	h.Walk(func(n *Node, _ int) bool {
		if !strings.HasPrefix(n.Key(), "region/") {
			return true
		}
		regions++
		holdsItems := false
		for _, child := range n.Children() {
			if !strings.HasPrefix(child.Key(), "region/") {
				holdsItems = true
			}
		}
		if holdsItems {
			leafRegions++
		}
		return true
	})
	return regions, leafRegions
}

func TestBuildRegions(t *testing.T) {
	type spec struct {
		minLeafItems   int
		expRegions     int
		expLeafRegions int
	}

	specs := []spec{
		// Each item in its own region
		{1, 7, 4},
		// Two items per region
		{2, 3, 2},
		// Everything in the root region
		{4, 1, 1},
	}

	for index, s := range specs {
		h := New()
		h.AddCollider("world", physics.NewBox(types.XYZ(0, 0, 0), types.XYZ(100, 100, 100)))

		root, stats := BuildRegions(h, "world", "region", regionItems(), s.minLeafItems, SurfaceAreaHeuristic)
		if root == nil {
			t.Fatalf("[spec %d] expected a root region", index)
		}
		if stats.Regions != s.expRegions {
			t.Fatalf("[spec %d] expected %d regions; got %d", index, s.expRegions, stats.Regions)
		}
		if stats.Items != 4 {
			t.Fatalf("[spec %d] expected 4 placed items; got %d", index, stats.Items)
		}

		regions, leafRegions := countRegions(h)
		if regions != s.expRegions || leafRegions != s.expLeafRegions {
			t.Fatalf("[spec %d] expected %d regions with %d holding items; got %d and %d", index, s.expRegions, s.expLeafRegions, regions, leafRegions)
		}
		if h.Len() != 1+s.expRegions+4 {
			t.Fatalf("[spec %d] expected %d nodes; got %d", index, 1+s.expRegions+4, h.Len())
		}
	}
}

func TestRegionsEncloseTheirChildren(t *testing.T) {
	h := New()
	root, _ := BuildRegions(h, "", "region", regionItems(), 1, SurfaceAreaHeuristic)

	var check func(n *Node)
	check = func(n *Node) {
		parent := n.Collider.(physics.BoxCollider).AsBox()
		for _, child := range n.Children() {
			box := child.Collider.(physics.BoxCollider).AsBox()
			if !parent.ContainsBox(box) {
				t.Fatalf("expected region %s to enclose %s; got %v and %v", n.Key(), child.Key(), parent, box)
			}
			check(child)
		}
	}
	check(root)

	got := keys(h.Prune(root.Key(), physics.NewSphere(types.XYZ(1.5, 0.5, 1.5), 0.25)))
	if len(got) != 1 || got[0] != "d" {
		t.Fatalf("expected prune to reach item d; got %v", got)
	}
}

func TestBuildRegionsWithoutItems(t *testing.T) {
	h := New()
	root, stats := BuildRegions(h, "", "region", nil, 1, SurfaceAreaHeuristic)
	if root != nil || stats.Regions != 0 || h.Len() != 0 {
		t.Fatalf("expected no regions; got %v %+v", root, stats)
	}
}

func TestRebuild(t *testing.T) {
	src := pruneFixture()
	srcLen := src.Len()

	out, stats := Rebuild(src, "world", 1, SurfaceAreaHeuristic)
	if out == nil {
		t.Fatal("expected a rebuilt hierarchy")
	}
	if stats.Items != 3 {
		t.Fatalf("expected 3 items to be placed; got %d", stats.Items)
	}
	if src.Len() != srcLen {
		t.Fatalf("expected source hierarchy to be untouched; got %d nodes instead of %d", src.Len(), srcLen)
	}
	if out.Find("region") != nil {
		t.Fatal("expected hand-made partition volumes to be dropped")
	}

	for _, key := range []string{"L1", "L2", "L3"} {
		n := out.Find(key)
		if n == nil {
			t.Fatalf("expected leaf %s to be part of the rebuilt hierarchy", key)
		}
		if n.Collider == src.Find(key).Collider {
			t.Fatalf("expected leaf %s to be copied", key)
		}
	}

	got := keys(out.Prune("world", physics.NewSphere(types.XYZ(0.25, 0, 0), 1)))
	if len(got) != 2 || got[0] != "L1" || got[1] != "L2" {
		t.Fatalf("expected to prune [L1 L2]; got %v", got)
	}

	if out, _ := Rebuild(src, "missing", 1, SurfaceAreaHeuristic); out != nil {
		t.Fatal("expected unknown root to yield nil")
	}
}
