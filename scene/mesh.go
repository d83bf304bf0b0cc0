package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/torrra/spectrum-retreat-clone/types"
)

// Material describes the shading parameters of a mesh.
type Material struct {
	Ambient   types.Vec4
	Diffuse   types.Vec4
	Specular  types.Vec4
	Emissive  types.Vec4
	Shininess float32
}

// Create a material using the same color for every component.
func NewMaterial(c types.Color, shininess float32) *Material {
	m := &Material{}
	m.Set(c, c, c, types.Black, shininess)
	return m
}

// Overwrite all material components.
func (m *Material) Set(ambient, diffuse, specular, emissive types.Color, shininess float32) {
	m.Ambient = ambient.Vec4()
	m.Diffuse = diffuse.Vec4()
	m.Specular = specular.Vec4()
	m.Emissive = emissive.Vec4()
	m.Shininess = shininess
}

// Mesh is a renderable object. Model and texture are opaque asset keys.
type Mesh struct {
	Model   string
	Texture string

	Material *Material

	// Accumulated transform operations.
	Position    types.Vec3
	Orientation mgl32.Quat
	Scaling     types.Vec3

	node *Node
}

// Create a mesh for the given model key.
func NewMesh(model string) *Mesh {
	return &Mesh{
		Model:       model,
		Orientation: mgl32.QuatIdent(),
		Scaling:     types.XYZ(1, 1, 1),
	}
}

func (m *Mesh) ObjectType() ObjectType {
	return ObjectMesh
}

func (m *Mesh) LinkToNode(n *Node) {
	m.node = n
}

// Node owning the mesh or nil if the mesh is not attached.
func (m *Mesh) Node() *Node {
	return m.node
}

func (m *Mesh) Textured() bool {
	return m.Texture != ""
}

// Translate the mesh in its own coordinate space.
func (m *Mesh) Translate(v types.Vec3) {
	m.Position = m.Position.Add(v)
	m.apply(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Rotate the mesh around axis by the given angle in degrees.
func (m *Mesh) Rotate(degrees float32, axis types.Vec3) {
	axis = types.Normalize(axis)
	rad := mgl32.DegToRad(degrees)
	m.Orientation = m.Orientation.Mul(mgl32.QuatRotate(rad, axis)).Normalize()
	m.apply(mgl32.HomogRotate3D(rad, axis))
}

// Scale the mesh along its own axes.
func (m *Mesh) Scale(v types.Vec3) {
	m.Scaling = types.XYZ(m.Scaling[0]*v[0], m.Scaling[1]*v[1], m.Scaling[2]*v[2])
	m.apply(mgl32.Scale3D(v[0], v[1], v[2]))
}

// Move the mesh in the coordinate space of its parent. Unlike Translate the
// offset is not affected by earlier rotations or scaling.
func (m *Mesh) Shift(v types.Vec3) {
	m.Position = m.Position.Add(v)
	if m.node == nil {
		return
	}
	m.node.Local = mgl32.Translate3D(v[0], v[1], v[2]).Mul4(m.node.Local)
	m.node.Dirty = true
}

// Place the mesh at pos in the coordinate space of its parent. Earlier
// rotations and scaling are kept.
func (m *Mesh) SetPosition(pos types.Vec3) {
	current := m.Position
	if m.node != nil {
		current = types.Translation(m.node.Local)
	}
	m.Shift(pos.Sub(current))
	m.Position = pos
}

func (m *Mesh) apply(op types.Mat4) {
	if m.node == nil {
		return
	}
	m.node.Local = m.node.Local.Mul4(op)
	m.node.Dirty = true
}
