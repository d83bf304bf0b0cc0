package game

import (
	"github.com/chewxy/math32"
	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

// BlockDirection is a leg of a color block movement pattern.
type BlockDirection uint8

const (
	Left BlockDirection = iota
	Right
	Up
	Down
	Forward
	Backward
)

// Number of legs in a movement pattern.
const NumDirections = 6

const (
	defaultBlockSpeed  float32 = 12
	defaultBlockLength float32 = 1
	blockShininess     float32 = 32
)

var blockLightAttenuation = scene.Attenuation{Constant: 1, Linear: 0.22, Quadratic: 0.20}

// Axis index moved along by a direction.
func (d BlockDirection) axis() int {
	switch d {
	case Up, Down:
		return 1
	case Forward, Backward:
		return 2
	default:
		return 0
	}
}

// Sign of the speed for a direction.
func (d BlockDirection) sign() float32 {
	switch d {
	case Right, Up, Forward:
		return 1
	default:
		return -1
	}
}

// ColorBlock is a cube carrying a color the player can swap with. Blocks
// may light up their surroundings and move back and forth.
type ColorBlock struct {
	Color types.Color

	Mesh     *scene.Mesh
	Collider *physics.ColoredBox
	Light    *scene.PointLight
	Material scene.Material

	movement *blockMovement
}

// Create a block of the given color.
func NewColorBlock(color types.Color) *ColorBlock {
	return &ColorBlock{Color: color}
}

func (b *ColorBlock) ObjectType() scene.ObjectType {
	return scene.ObjectColorBlock
}

// Moving returns true if the block has a movement pattern.
func (b *ColorBlock) Moving() bool {
	return b.movement != nil
}

// Move the block along the default pattern.
func (b *ColorBlock) SetMovement(speed, length float32) {
	order := [NumDirections]BlockDirection{Left, Right, Left, Right, Left, Right}
	b.SetMovementPattern(speed, length, order)
}

// Move the block back and forth between two directions.
func (b *ColorBlock) SetMovementDirections(speed, length float32, dir1, dir2 BlockDirection) {
	var order [NumDirections]BlockDirection
	for i := range order {
		if i%2 == 0 {
			order[i] = dir1
		} else {
			order[i] = dir2
		}
	}
	b.SetMovementPattern(speed, length, order)
}

// Move the block along an explicit pattern. Existing movements keep their
// progress; new movements start at the current mesh position.
func (b *ColorBlock) SetMovementPattern(speed, length float32, order [NumDirections]BlockDirection) {
	if b.movement != nil {
		b.movement.order = order
		b.movement.pathLength = length
		b.movement.speed = math32.Abs(speed) * b.movement.direction().sign()
		return
	}
	if b.Mesh == nil {
		logger.Warning("cannot set movement of a color block without a mesh")
		return
	}
	b.movement = newBlockMovement(speed, length, order, b.Mesh)
}

// Advance the movement and refresh the material and light from the current
// color.
func (b *ColorBlock) Update(dt float32) {
	if b.movement != nil {
		b.movement.update(dt)
	}

	b.Material.Set(b.Color.WithAlpha(1), b.Color.WithAlpha(1), b.Color.WithAlpha(1), types.Black, blockShininess)

	if b.Light != nil && b.Mesh != nil {
		if n := b.Mesh.Node(); n != nil {
			b.Light.Position = n.Position()
		}
		b.Light.SetColor(b.Color)
		b.Light.Attenuation = blockLightAttenuation
	}
}

type blockMovement struct {
	order      [NumDirections]BlockDirection
	speed      float32
	pathLength float32

	mesh *scene.Mesh

	// World position of the mesh on the first update. Every pattern cycle
	// restarts from here.
	origin   types.Vec3
	anchored bool

	current    int
	startPoint float32
}

func newBlockMovement(speed, length float32, order [NumDirections]BlockDirection, mesh *scene.Mesh) *blockMovement {
	m := &blockMovement{
		order:      order,
		pathLength: length,
		mesh:       mesh,
	}
	m.speed = math32.Abs(speed) * m.direction().sign()
	return m
}

func (m *blockMovement) direction() BlockDirection {
	return m.order[m.current]
}

// Current world position of the mesh.
func (m *blockMovement) worldPosition() types.Vec3 {
	if n := m.mesh.Node(); n != nil {
		return types.Translation(n.Global)
	}
	return m.mesh.Position
}

func (m *blockMovement) position(axis int) float32 {
	return m.worldPosition()[axis]
}

func (m *blockMovement) update(dt float32) {
	// Global transforms are only valid after the scene update that precedes
	// the first movement step.
	if !m.anchored {
		m.origin = m.worldPosition()
		m.anchored = true
		m.restart()
	}

	axis := m.direction().axis()
	pos := m.position(axis)

	if math32.Abs(pos-m.startPoint) >= m.pathLength {
		m.advance()
		return
	}

	var offset types.Vec3
	offset[axis] = m.speed * dt
	m.mesh.Shift(offset)
}

// Switch to the next leg of the pattern.
func (m *blockMovement) advance() {
	if m.current < NumDirections-1 {
		m.current++
	} else {
		m.current = 0
	}

	if m.current == 0 {
		m.restart()
		return
	}

	dir := m.direction()
	m.startPoint = m.position(dir.axis())
	m.speed = math32.Abs(m.speed) * dir.sign()
}

func (m *blockMovement) restart() {
	dir := m.direction()
	m.startPoint = m.origin[dir.axis()]
	m.speed = math32.Abs(m.speed) * dir.sign()
}
