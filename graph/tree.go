package graph

import "github.com/torrra/spectrum-retreat-clone/log"

var logger = log.New("graph")

// ID is a generational handle to a tree node. The zero ID never resolves.
type ID struct {
	index uint32
	gen   uint32
}

// Nil is the invalid handle.
var Nil ID

// Valid returns true if the handle was issued by a tree. A valid handle may
// still be stale if its node was removed.
func (id ID) Valid() bool {
	return id.gen != 0
}

// Destroyer is implemented by payloads that need to release resources or
// break relations when their node is removed from the tree.
type Destroyer interface {
	Destroy()
}

type slot[T any] struct {
	used     bool
	gen      uint32
	key      string
	payload  T
	parent   ID
	children []ID
}

// Tree is an arena backed owner tree. Every node owns its payload and its
// children; removing a node destroys its whole subtree. Nodes are addressed
// by a globally unique string key or by ID.
type Tree[T any] struct {
	slots []slot[T]
	free  []uint32

	// Created on first insertion.
	keys  map[string]ID
	roots []ID
}

// Create a new empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Attach a parentless node. If key is already in use, the previous node and
// its subtree are destroyed first.
func (t *Tree[T]) AttachRoot(key string, payload T) ID {
	t.evict(key)
	id := t.alloc(key, payload, Nil)
	t.roots = append(t.roots, id)
	return id
}

// Attach a node under the node registered as parentKey. If no such parent
// exists the node is attached as a root. If key is already in use, the
// previous node and its subtree are destroyed first; when the requested
// parent was part of the destroyed subtree the node becomes a root.
func (t *Tree[T]) AttachChild(parentKey, key string, payload T) ID {
	t.evict(key)

	parentID, found := t.Find(parentKey)
	if !found {
		logger.Debugf("parent '%s' of '%s' not found; attaching as root", parentKey, key)
		id := t.alloc(key, payload, Nil)
		t.roots = append(t.roots, id)
		return id
	}

	id := t.alloc(key, payload, parentID)
	parent := &t.slots[parentID.index]
	parent.children = append(parent.children, id)
	return id
}

// Lookup a node by key.
func (t *Tree[T]) Find(key string) (ID, bool) {
	if t.keys == nil {
		return Nil, false
	}
	id, found := t.keys[key]
	return id, found
}

// Get the payload of a node.
func (t *Tree[T]) Payload(id ID) (T, bool) {
	s := t.resolve(id)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.payload, true
}

// Get the payload of the node registered as key.
func (t *Tree[T]) Get(key string) (T, bool) {
	id, found := t.Find(key)
	if !found {
		var zero T
		return zero, false
	}
	return t.Payload(id)
}

// Remove the node registered as key together with its subtree. Every key in
// the subtree is unregistered. Returns false if the key is unknown.
func (t *Tree[T]) Remove(key string) bool {
	id, found := t.Find(key)
	if !found {
		return false
	}

	t.unlink(id)
	t.destroy(id)
	return true
}

// Get the parent of a node. Roots report false.
func (t *Tree[T]) Parent(id ID) (ID, bool) {
	s := t.resolve(id)
	if s == nil || !s.parent.Valid() {
		return Nil, false
	}
	return s.parent, true
}

// Get the children of a node in insertion order.
func (t *Tree[T]) Children(id ID) []ID {
	s := t.resolve(id)
	if s == nil || len(s.children) == 0 {
		return nil
	}
	return append([]ID(nil), s.children...)
}

// Invoke fn for each child of a node in insertion order.
func (t *Tree[T]) ForEachChild(id ID, fn func(child ID, payload T)) {
	s := t.resolve(id)
	if s == nil {
		return
	}
	for _, child := range s.children {
		if cs := t.resolve(child); cs != nil {
			fn(child, cs.payload)
		}
	}
}

// Get the parentless nodes in insertion order.
func (t *Tree[T]) Roots() []ID {
	return append([]ID(nil), t.roots...)
}

// Get the key a node is registered under.
func (t *Tree[T]) Key(id ID) string {
	s := t.resolve(id)
	if s == nil {
		return ""
	}
	return s.key
}

// Number of live nodes.
func (t *Tree[T]) Len() int {
	return len(t.keys)
}

// Walk the tree depth-first starting from the roots. Returning false from fn
// skips the subtree below the visited node.
func (t *Tree[T]) Walk(fn func(id ID, depth int) bool) {
	for _, root := range t.Roots() {
		t.walk(root, 0, fn)
	}
}

// Walk the subtree rooted at id depth-first.
func (t *Tree[T]) WalkFrom(id ID, fn func(id ID, depth int) bool) {
	if t.resolve(id) == nil {
		return
	}
	t.walk(id, 0, fn)
}

func (t *Tree[T]) walk(id ID, depth int, fn func(id ID, depth int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, child := range t.Children(id) {
		t.walk(child, depth+1, fn)
	}
}

// Invoke fn for every parentless node.
func (t *Tree[T]) ForEachRoot(fn func(id ID, payload T)) {
	for _, root := range t.Roots() {
		if s := t.resolve(root); s != nil {
			fn(root, s.payload)
		}
	}
}

// Invoke update on the payload of every parentless node.
func (t *Tree[T]) UpdateAll(update func(payload T)) {
	t.ForEachRoot(func(_ ID, payload T) {
		update(payload)
	})
}

// Destroy every node.
func (t *Tree[T]) Clear() {
	for _, root := range t.Roots() {
		t.destroy(root)
	}
	t.roots = t.roots[:0]
}

func (t *Tree[T]) resolve(id ID) *slot[T] {
	if !id.Valid() || int(id.index) >= len(t.slots) {
		return nil
	}
	s := &t.slots[id.index]
	if !s.used || s.gen != id.gen {
		return nil
	}
	return s
}

func (t *Tree[T]) alloc(key string, payload T, parent ID) ID {
	if t.keys == nil {
		t.keys = make(map[string]ID)
		t.roots = make([]ID, 0)
	}

	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.slots))
		t.slots = append(t.slots, slot[T]{})
	}

	s := &t.slots[index]
	s.gen++
	s.used = true
	s.key = key
	s.payload = payload
	s.parent = parent
	s.children = nil

	id := ID{index: index, gen: s.gen}
	t.keys[key] = id
	return id
}

// Destroy the node currently registered as key, if any.
func (t *Tree[T]) evict(key string) {
	id, found := t.Find(key)
	if !found {
		return
	}

	logger.Warningf("key '%s' already in use; replacing previous node and its subtree", key)
	t.unlink(id)
	t.destroy(id)
}

// Detach a node from its parent or from the root list.
func (t *Tree[T]) unlink(id ID) {
	s := t.resolve(id)
	if s == nil {
		return
	}

	if parent := t.resolve(s.parent); parent != nil {
		parent.children = removeID(parent.children, id)
		return
	}
	t.roots = removeID(t.roots, id)
}

// Destroy a subtree bottom-up.
func (t *Tree[T]) destroy(id ID) {
	s := t.resolve(id)
	if s == nil {
		return
	}

	children := s.children
	s.children = nil
	for _, child := range children {
		t.destroy(child)
	}

	// The slot pointer may be stale if the slice grew during a callback
	s = &t.slots[id.index]
	if d, ok := any(s.payload).(Destroyer); ok {
		d.Destroy()
	}

	if t.keys[s.key] == id {
		delete(t.keys, s.key)
	}

	var zero T
	s.payload = zero
	s.used = false
	s.parent = Nil
	s.key = ""
	t.free = append(t.free, id.index)
}

func removeID(list []ID, id ID) []ID {
	for index, candidate := range list {
		if candidate == id {
			return append(list[:index], list[index+1:]...)
		}
	}
	return list
}
