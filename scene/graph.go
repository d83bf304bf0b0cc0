package scene

import (
	"github.com/torrra/spectrum-retreat-clone/graph"
	"github.com/torrra/spectrum-retreat-clone/log"
)

var logger = log.New("scene")

// Graph is the render scene graph.
type Graph struct {
	tree *graph.Tree[*Node]
}

// Create an empty scene graph.
func NewGraph() *Graph {
	return &Graph{tree: graph.New[*Node]()}
}

// Attach an object as a parentless node.
func (g *Graph) AttachRoot(key string, obj Object) *Node {
	n := newNode(obj)
	n.graph = g
	n.id = g.tree.AttachRoot(key, n)
	link(n)
	return n
}

// Attach an object under the node registered as parentKey. Falls back to a
// parentless node when the parent does not exist.
func (g *Graph) AttachChild(parentKey, key string, obj Object) *Node {
	n := newNode(obj)
	n.graph = g
	n.id = g.tree.AttachChild(parentKey, key, n)
	link(n)
	return n
}

func link(n *Node) {
	if linker, ok := n.Object.(NodeLinker); ok {
		linker.LinkToNode(n)
	}
}

// Lookup a node by key. Returns nil if the key is unknown.
func (g *Graph) Find(key string) *Node {
	n, _ := g.tree.Get(key)
	return n
}

// Remove a node and its subtree.
func (g *Graph) Remove(key string) bool {
	return g.tree.Remove(key)
}

// Propagate transforms through the whole graph.
func (g *Graph) UpdateAll() {
	g.tree.UpdateAll(func(n *Node) {
		n.Update()
	})
}

// Visit every node depth-first. Returning false skips the node's subtree.
func (g *Graph) Walk(fn func(n *Node, depth int) bool) {
	g.tree.Walk(func(id graph.ID, depth int) bool {
		n, _ := g.tree.Payload(id)
		return fn(n, depth)
	})
}

// Get the parentless nodes.
func (g *Graph) Roots() []*Node {
	return g.resolve(g.tree.Roots())
}

// Get the parent of a node or nil for parentless nodes.
func (g *Graph) Parent(n *Node) *Node {
	id, found := g.tree.Parent(n.id)
	if !found {
		return nil
	}
	parent, _ := g.tree.Payload(id)
	return parent
}

// Get the children of a node.
func (g *Graph) Children(n *Node) []*Node {
	return g.resolve(g.tree.Children(n.id))
}

// Number of nodes in the graph.
func (g *Graph) Len() int {
	return g.tree.Len()
}

// Remove every node.
func (g *Graph) Clear() {
	g.tree.Clear()
}

func (g *Graph) resolve(ids []graph.ID) []*Node {
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if n, found := g.tree.Payload(id); found {
			out = append(out, n)
		}
	}
	return out
}

// Get looks up key and returns its object as O. The zero value of O is
// returned if the key is unknown or the object has a different type.
func Get[O Object](g *Graph, key string) O {
	var zero O
	n := g.Find(key)
	if n == nil || n.Object == nil {
		return zero
	}
	obj, ok := n.Object.(O)
	if !ok {
		logger.Debugf("object '%s' is a %s; type mismatch", key, n.Object.ObjectType())
		return zero
	}
	return obj
}
