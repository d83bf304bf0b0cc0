package physics

import (
	"fmt"

	"github.com/torrra/spectrum-retreat-clone/types"
)

// ColliderType tags every collider variant. Collision dispatch and gameplay
// reactions switch on this closed set.
type ColliderType uint8

const (
	TypeBox ColliderType = iota
	TypeSphere
	TypeLightBox
	TypeDoor
	TypeColorCube
	TypeIgnore
	TypeHoled
	TypeTeleporter
	TypeFinalTower
)

var colliderTypeNames = [...]string{
	TypeBox:        "box",
	TypeSphere:     "sphere",
	TypeLightBox:   "light box",
	TypeDoor:       "door",
	TypeColorCube:  "color cube",
	TypeIgnore:     "ignore",
	TypeHoled:      "holed",
	TypeTeleporter: "teleporter",
	TypeFinalTower: "final tower",
}

func (t ColliderType) String() string {
	if int(t) < len(colliderTypeNames) {
		return colliderTypeNames[t]
	}
	return fmt.Sprintf("ColliderType(%d)", t)
}

// Shape is the geometric primitive a collider type is tested as.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeBox
	ShapeSphere

	numShapes
)

// Shape returns the primitive used for overlap tests. Ignore colliders have
// no shape and never collide.
func (t ColliderType) Shape() Shape {
	switch t {
	case TypeSphere:
		return ShapeSphere
	case TypeIgnore:
		return ShapeNone
	}
	return ShapeBox
}

// Collider is implemented by every bounding volume stored in the hierarchy.
type Collider interface {
	Type() ColliderType
}

// BoxCollider is implemented by all colliders built on axis aligned box geometry.
type BoxCollider interface {
	Collider
	AsBox() *Box
}

// Box is an axis aligned bounding box. Min and Max always equal
// Position -/+ HalfExtent once UpdateBounds has run.
type Box struct {
	Position   types.Vec3
	HalfExtent types.Vec3
	Min        types.Vec3
	Max        types.Vec3

	// Disabled boxes never report box-box or sphere-box overlaps.
	Enabled bool

	Kind ColliderType
}

// Create a new enabled box collider.
func NewBox(position, halfExtent types.Vec3) *Box {
	return NewTaggedBox(TypeBox, position, halfExtent)
}

// Create a box collider carrying a gameplay tag (door, final tower, ignore...).
func NewTaggedBox(kind ColliderType, position, halfExtent types.Vec3) *Box {
	b := &Box{
		Position:   position,
		HalfExtent: halfExtent,
		Enabled:    true,
		Kind:       kind,
	}
	b.UpdateBounds()
	return b
}

func (b *Box) Type() ColliderType {
	return b.Kind
}

func (b *Box) AsBox() *Box {
	return b
}

// Recalculate min/max vertices from position and half extent.
func (b *Box) UpdateBounds() {
	b.Min = b.Position.Sub(b.HalfExtent)
	b.Max = b.Position.Add(b.HalfExtent)
}

// Returns true if p lies inside the box or on its surface.
func (b *Box) Contains(p types.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Returns true if other lies entirely inside the box.
func (b *Box) ContainsBox(other *Box) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

func (b *Box) String() string {
	return fmt.Sprintf("%s min: (%3.3f, %3.3f, %3.3f) max: (%3.3f, %3.3f, %3.3f)",
		b.Kind,
		b.Min[0], b.Min[1], b.Min[2],
		b.Max[0], b.Max[1], b.Max[2],
	)
}

// Sphere is a bounding sphere.
type Sphere struct {
	Position types.Vec3
	Radius   float32
}

// Create a new sphere collider.
func NewSphere(position types.Vec3, radius float32) *Sphere {
	return &Sphere{Position: position, Radius: radius}
}

func (s *Sphere) Type() ColliderType {
	return TypeSphere
}

// ColoredBox is a box whose color is shared with a gameplay object. The
// color is not owned by the collider.
type ColoredBox struct {
	Box
	Color *types.Color
}

// Create a new colored box collider.
func NewColoredBox(position, halfExtent types.Vec3, color *types.Color) *ColoredBox {
	c := &ColoredBox{Color: color}
	c.Position = position
	c.HalfExtent = halfExtent
	c.Enabled = true
	c.Kind = TypeColorCube
	c.UpdateBounds()
	return c
}

// HoledBox is a box with an opening. Rays passing through the hole box do
// not register as hits against the outer box.
type HoledBox struct {
	Box
	Hole *Box
}

// Create a new holed box. The hole is owned by the holed box and is not
// part of any hierarchy.
func NewHoledBox(position, halfExtent types.Vec3, hole *Box) *HoledBox {
	h := &HoledBox{Hole: hole}
	h.Position = position
	h.HalfExtent = halfExtent
	h.Enabled = true
	h.Kind = TypeHoled
	h.UpdateBounds()
	return h
}

// Teleporter is a box that sends the player to its paired teleporter. The
// pairing is a relation; neither side owns the other.
type Teleporter struct {
	Box
	OtherSide *Teleporter
}

// Create a new unpaired teleporter.
func NewTeleporter(position, halfExtent types.Vec3) *Teleporter {
	t := &Teleporter{}
	t.Position = position
	t.HalfExtent = halfExtent
	t.Enabled = true
	t.Kind = TypeTeleporter
	t.UpdateBounds()
	return t
}

// Pair two teleporters with each other.
func Pair(a, b *Teleporter) {
	a.OtherSide = b
	b.OtherSide = a
}

// Destroy breaks the pairing so the surviving side no longer refers to a
// removed teleporter.
func (t *Teleporter) Destroy() {
	if t.OtherSide != nil && t.OtherSide.OtherSide == t {
		t.OtherSide.OtherSide = nil
	}
	t.OtherSide = nil
}

// Switch is implemented by anything a light volume can turn on and off.
type Switch interface {
	SetEnabled(enabled bool)
}

// LightBox is a volume that gates a set of lights it does not own.
type LightBox struct {
	Box
	lights []Switch
}

// Create a new light volume.
func NewLightBox(position, halfExtent types.Vec3) *LightBox {
	l := &LightBox{}
	l.Position = position
	l.HalfExtent = halfExtent
	l.Enabled = true
	l.Kind = TypeLightBox
	l.UpdateBounds()
	return l
}

// Register a light with the volume. Lights start switched off.
func (l *LightBox) AddLight(light Switch) {
	if light == nil {
		return
	}
	light.SetEnabled(false)
	l.lights = append(l.lights, light)
}

func (l *LightBox) EnableLights() {
	for _, light := range l.lights {
		light.SetEnabled(true)
	}
}

func (l *LightBox) DisableLights() {
	for _, light := range l.lights {
		light.SetEnabled(false)
	}
}

func (l *LightBox) Lights() []Switch {
	return l.lights
}
