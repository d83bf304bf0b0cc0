package scene

import "fmt"

// ObjectType tags every scene object variant.
type ObjectType uint8

const (
	ObjectMesh ObjectType = iota
	ObjectLight
	ObjectCamera
	ObjectPlayer
	ObjectColorBlock
	ObjectDoor
)

var objectTypeNames = [...]string{
	ObjectMesh:       "mesh",
	ObjectLight:      "light",
	ObjectCamera:     "camera",
	ObjectPlayer:     "player",
	ObjectColorBlock: "color block",
	ObjectDoor:       "door",
}

func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return fmt.Sprintf("ObjectType(%d)", t)
}

// Object is implemented by every payload stored in the scene graph.
type Object interface {
	ObjectType() ObjectType
}

// NodeLinker is implemented by objects that need access to the scene node
// owning them. LinkToNode is invoked when the object is attached.
type NodeLinker interface {
	LinkToNode(n *Node)
}
