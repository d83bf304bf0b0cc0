package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/torrra/spectrum-retreat-clone/types"
)

type fakeLight struct {
	enabled bool
}

func (l *fakeLight) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func TestBoxBounds(t *testing.T) {
	b := NewBox(types.XYZ(5, 0, 0), types.XYZ(2, 1, 1))
	assert.Equal(t, types.XYZ(3, -1, -1), b.Min)
	assert.Equal(t, types.XYZ(7, 1, 1), b.Max)

	b.Position = types.XYZ(0, 0, 0)
	b.UpdateBounds()
	assert.Equal(t, types.XYZ(-2, -1, -1), b.Min)
	assert.True(t, b.Contains(types.XYZ(2, 1, 1)))
	assert.False(t, b.Contains(types.XYZ(2.1, 0, 0)))
	assert.True(t, b.ContainsBox(NewBox(types.XYZ(1, 0, 0), types.XYZ(1, 1, 1))))
}

func TestVariantTypes(t *testing.T) {
	color := types.Green
	assert.Equal(t, TypeColorCube, NewColoredBox(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1), &color).Type())
	assert.Equal(t, TypeHoled, NewHoledBox(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1), nil).Type())
	assert.Equal(t, TypeTeleporter, NewTeleporter(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1)).Type())
	assert.Equal(t, TypeLightBox, NewLightBox(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1)).Type())
	assert.Equal(t, TypeSphere, NewSphere(types.XYZ(0, 0, 0), 1).Type())
	assert.Equal(t, "final tower", TypeFinalTower.String())
}

func TestTeleporterPairDestroy(t *testing.T) {
	a := NewTeleporter(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	b := NewTeleporter(types.XYZ(10, 0, 0), types.XYZ(1, 1, 1))
	Pair(a, b)

	assert.Same(t, b, a.OtherSide)
	assert.Same(t, a, b.OtherSide)

	a.Destroy()
	assert.Nil(t, a.OtherSide)
	assert.Nil(t, b.OtherSide)

	// Destroying the survivor must not touch the already destroyed side
	assert.NotPanics(t, b.Destroy)
}

func TestLightBoxSwitches(t *testing.T) {
	l := NewLightBox(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	light1 := &fakeLight{enabled: true}
	light2 := &fakeLight{enabled: true}

	l.AddLight(light1)
	l.AddLight(light2)
	l.AddLight(nil)

	assert.Len(t, l.Lights(), 2)
	assert.False(t, light1.enabled, "lights are switched off when registered")

	l.EnableLights()
	assert.True(t, light1.enabled)
	assert.True(t, light2.enabled)

	l.DisableLights()
	assert.False(t, light1.enabled)
	assert.False(t, light2.enabled)
}
