package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/torrra/spectrum-retreat-clone/graph"
	"github.com/torrra/spectrum-retreat-clone/types"
)

// Node is a scene graph entry. It owns a scene object and caches its object
// to world transform. Global is only valid while Dirty is false and is only
// recomputed by Update.
type Node struct {
	Object Object

	// Object to parent transform.
	Local types.Mat4

	// Object to world transform.
	Global types.Mat4

	Dirty bool

	// Visibility flag maintained by frustum culling.
	Render bool

	graph *Graph
	id    graph.ID
}

func newNode(obj Object) *Node {
	return &Node{
		Object: obj,
		Local:  mgl32.Ident4(),
		Global: mgl32.Ident4(),
		Dirty:  true,
		Render: true,
	}
}

// Propagate transforms to the subtree rooted at this node. A parentless
// dirty node copies its local transform. Every dirty child is recomputed
// from this node's global transform; the recursion continues into clean
// children as deeper descendants may still be dirty.
func (n *Node) Update() {
	if n.graph == nil {
		return
	}
	tree := n.graph.tree

	if _, hasParent := tree.Parent(n.id); !hasParent && n.Dirty {
		n.Global = n.Local
		n.Dirty = false
	}

	tree.ForEachChild(n.id, func(_ graph.ID, child *Node) {
		if child.Dirty {
			child.Global = n.Global.Mul4(child.Local)
			child.Dirty = false
		}
		child.Update()
	})
}

// Mark the node so its global transform is recomputed on the next update.
func (n *Node) MarkDirty() {
	n.Dirty = true
}

// World space position taken from the global transform.
func (n *Node) Position() types.Vec3 {
	return types.Translation(n.Global)
}

// Key the node is registered under.
func (n *Node) Key() string {
	if n.graph == nil {
		return ""
	}
	return n.graph.tree.Key(n.id)
}

// Destroy releases the owned object.
func (n *Node) Destroy() {
	if n == nil {
		return
	}
	if d, ok := n.Object.(graph.Destroyer); ok {
		d.Destroy()
	}
	n.graph = nil
}
