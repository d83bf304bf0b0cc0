package game

import (
	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

const (
	doorOpenAlpha   float32 = 0.2
	doorClosedAlpha float32 = 0.5
	doorShininess   float32 = 32
)

// Door is a colored barrier. It blocks the player unless the player carries
// the same color.
type Door struct {
	Color types.Color

	Mesh     *scene.Mesh
	Collider *physics.Box
	Material scene.Material
}

// Create a door of the given color.
func NewDoor(color types.Color) *Door {
	d := &Door{Color: color}
	d.setMaterial(doorClosedAlpha)
	return d
}

func (d *Door) ObjectType() scene.ObjectType {
	return scene.ObjectDoor
}

// Open returns true if the player can walk through the door.
func (d *Door) Open() bool {
	return d.Collider != nil && !d.Collider.Enabled
}

// Toggle the collider and the material opacity depending on the color the
// player is carrying.
func (d *Door) UpdateState(playerColor types.Color) {
	if d.Collider == nil {
		return
	}

	d.Collider.Enabled = !d.Color.Equal(playerColor)
	if d.Collider.Enabled {
		d.setMaterial(doorClosedAlpha)
	} else {
		d.setMaterial(doorOpenAlpha)
	}
}

// Rotate the door mesh by 90 degrees around the selected axes.
func (d *Door) Flip(x, y, z bool) {
	if d.Mesh == nil {
		return
	}
	if x {
		d.Mesh.Rotate(90, types.XYZ(1, 0, 0))
	}
	if y {
		d.Mesh.Rotate(90, types.XYZ(0, 1, 0))
	}
	if z {
		d.Mesh.Rotate(90, types.XYZ(0, 0, 1))
	}
}

func (d *Door) setMaterial(alpha float32) {
	c := d.Color.WithAlpha(alpha)
	d.Material.Set(c, c, c, d.Color.Scale(0.7).WithAlpha(alpha), doorShininess)
}
