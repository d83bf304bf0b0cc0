package bvh

import (
	"github.com/torrra/spectrum-retreat-clone/graph"
	"github.com/torrra/spectrum-retreat-clone/log"
	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

var logger = log.New("bvh")

// Node is a bounding volume hierarchy entry. It owns its collider and may
// track a scene node whose global transform drives the collider geometry.
type Node struct {
	Collider physics.Collider

	link *scene.Node

	hierarchy *Hierarchy
	id        graph.ID
}

// Scene node driving this collider or nil for pure partition volumes.
func (n *Node) Link() *scene.Node {
	return n.link
}

// Key the node is registered under.
func (n *Node) Key() string {
	if n.hierarchy == nil {
		return ""
	}
	return n.hierarchy.tree.Key(n.id)
}

// Returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	if n.hierarchy == nil {
		return true
	}
	leaf := true
	n.hierarchy.tree.ForEachChild(n.id, func(graph.ID, *Node) {
		leaf = false
	})
	return leaf
}

// Get the child nodes.
func (n *Node) Children() []*Node {
	if n.hierarchy == nil {
		return nil
	}
	return n.hierarchy.resolve(n.hierarchy.tree.Children(n.id))
}

// Refresh collider geometry for this node and its subtree.
func (n *Node) Update() {
	n.updateGeometry()
	n.forEachChild(func(child *Node) {
		child.Update()
	})
}

// Refresh collider geometry for this node and its subtree. Before a box
// moves, the visibility flag of its linked scene node is set from the
// frustum test against the box of the previous frame.
func (n *Node) UpdateCulled(frustum *physics.Frustum) {
	if box, ok := n.Collider.(physics.BoxCollider); ok && n.link != nil {
		n.link.Render = frustum.Intersect(box.AsBox())
	}
	n.updateGeometry()
	n.forEachChild(func(child *Node) {
		child.UpdateCulled(frustum)
	})
}

func (n *Node) updateGeometry() {
	switch c := n.Collider.(type) {
	case *physics.Sphere:
		if n.link != nil {
			c.Position = types.Translation(n.link.Global)
		}
	case physics.BoxCollider:
		box := c.AsBox()
		if n.link != nil {
			box.Position = types.Translation(n.link.Global)
			box.HalfExtent = types.DiagonalScale(n.link.Global)
		}
		box.UpdateBounds()
	}
}

// Test this node's collider against target.
func (n *Node) TestCollision(target physics.Collider) bool {
	return physics.Collide(n.Collider, target)
}

// Collect the leaves of this subtree that collide with target. Subtrees
// whose root does not collide are skipped entirely.
func (n *Node) PruneColliders(target physics.Collider, out []*Node) []*Node {
	if !n.TestCollision(target) {
		return out
	}

	leaf := true
	n.forEachChild(func(child *Node) {
		leaf = false
		out = child.PruneColliders(target, out)
	})

	if leaf {
		out = append(out, n)
	}
	return out
}

// Collect the leaves of this subtree whose box is crossed by ray. Spheres and
// shapeless volumes are skipped along with their subtrees.
func (n *Node) PruneRay(ray physics.Ray, out []*Node) []*Node {
	if n.Collider == nil || n.Collider.Type().Shape() != physics.ShapeBox {
		return out
	}
	box, ok := n.Collider.(physics.BoxCollider)
	if !ok {
		return out
	}
	if _, hit := ray.Intersect(box.AsBox()); !hit {
		return out
	}

	leaf := true
	n.forEachChild(func(child *Node) {
		leaf = false
		out = child.PruneRay(ray, out)
	})

	if leaf {
		out = append(out, n)
	}
	return out
}

// Destroy releases the owned collider.
func (n *Node) Destroy() {
	if n == nil {
		return
	}
	if d, ok := n.Collider.(graph.Destroyer); ok {
		d.Destroy()
	}
	n.link = nil
	n.hierarchy = nil
}

func (n *Node) forEachChild(fn func(child *Node)) {
	if n.hierarchy == nil {
		return
	}
	n.hierarchy.tree.ForEachChild(n.id, func(_ graph.ID, child *Node) {
		fn(child)
	})
}

// Hierarchy is a tree of colliders. Coarse partition volumes (world, level
// areas) hold the colliders of the objects they contain.
type Hierarchy struct {
	tree *graph.Tree[*Node]
}

// Create an empty hierarchy.
func New() *Hierarchy {
	return &Hierarchy{tree: graph.New[*Node]()}
}

// Add a parentless collider.
func (h *Hierarchy) AddCollider(key string, c physics.Collider) *Node {
	n := &Node{Collider: c, hierarchy: h}
	n.id = h.tree.AttachRoot(key, n)
	return n
}

// Add a collider under the node registered as parentKey. Falls back to a
// parentless collider when the parent does not exist.
func (h *Hierarchy) AddChildCollider(parentKey, key string, c physics.Collider) *Node {
	n := &Node{Collider: c, hierarchy: h}
	n.id = h.tree.AttachChild(parentKey, key, n)
	return n
}

// Remove a collider and its subtree.
func (h *Hierarchy) Remove(key string) bool {
	return h.tree.Remove(key)
}

// Lookup a node by key. Returns nil if the key is unknown.
func (h *Hierarchy) Find(key string) *Node {
	n, _ := h.tree.Get(key)
	return n
}

// Bind the collider registered as colliderKey to the scene node registered
// as sceneKey and refresh its geometry. Returns false if either key is unknown.
func (h *Hierarchy) LinkToNode(g *scene.Graph, colliderKey, sceneKey string) bool {
	n := h.Find(colliderKey)
	if n == nil {
		logger.Warningf("cannot link unknown collider '%s'", colliderKey)
		return false
	}

	sn := g.Find(sceneKey)
	if sn == nil {
		logger.Warningf("cannot link collider '%s' to unknown scene node '%s'", colliderKey, sceneKey)
		return false
	}

	n.link = sn
	n.updateGeometry()
	return true
}

// Refresh every collider from its linked scene node.
func (h *Hierarchy) Update() {
	h.tree.UpdateAll(func(n *Node) {
		n.Update()
	})
}

// Refresh every collider and update scene node visibility against frustum.
func (h *Hierarchy) UpdateCulled(frustum physics.Frustum) {
	h.tree.UpdateAll(func(n *Node) {
		n.UpdateCulled(&frustum)
	})
}

// Collect the colliding leaves below the node registered as startKey.
func (h *Hierarchy) Prune(startKey string, target physics.Collider) []*Node {
	start := h.Find(startKey)
	if start == nil {
		return nil
	}
	return start.PruneColliders(target, nil)
}

// Collect the leaves below the node registered as startKey that ray may hit.
func (h *Hierarchy) PruneRay(startKey string, ray physics.Ray) []*Node {
	start := h.Find(startKey)
	if start == nil {
		return nil
	}
	return start.PruneRay(ray, nil)
}

// Visit every node depth-first. Returning false skips the node's subtree.
func (h *Hierarchy) Walk(fn func(n *Node, depth int) bool) {
	h.tree.Walk(func(id graph.ID, depth int) bool {
		n, _ := h.tree.Payload(id)
		return fn(n, depth)
	})
}

// Get the parentless nodes.
func (h *Hierarchy) Roots() []*Node {
	return h.resolve(h.tree.Roots())
}

// Number of colliders in the hierarchy.
func (h *Hierarchy) Len() int {
	return h.tree.Len()
}

// Remove every collider.
func (h *Hierarchy) Clear() {
	h.tree.Clear()
}

func (h *Hierarchy) resolve(ids []graph.ID) []*Node {
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if n, found := h.tree.Payload(id); found {
			out = append(out, n)
		}
	}
	return out
}

// Get looks up key and returns its collider as C. The zero value of C is
// returned if the key is unknown or the collider has a different type.
func Get[C physics.Collider](h *Hierarchy, key string) C {
	var zero C
	n := h.Find(key)
	if n == nil {
		return zero
	}
	c, ok := n.Collider.(C)
	if !ok {
		return zero
	}
	return c
}
