package scene

import "github.com/torrra/spectrum-retreat-clone/types"

type LightKind uint8

const (
	PointLightKind LightKind = iota
	DirectionalLightKind
	SpotLightKind
)

// Light is implemented by all light variants. Lights can be switched on and
// off by light volumes.
type Light interface {
	Object
	Kind() LightKind
	SetEnabled(enabled bool)
	IsEnabled() bool
}

// Attenuation factors for positional lights.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// BaseLight holds the components shared by every light.
type BaseLight struct {
	Ambient  types.Color
	Diffuse  types.Color
	Specular types.Color
	Enabled  bool
}

func (l *BaseLight) ObjectType() ObjectType {
	return ObjectLight
}

func (l *BaseLight) SetEnabled(enabled bool) {
	l.Enabled = enabled
}

func (l *BaseLight) IsEnabled() bool {
	return l.Enabled
}

// Use the same color for ambient, diffuse and specular components.
func (l *BaseLight) SetColor(c types.Color) {
	l.Ambient = c
	l.Diffuse = c
	l.Specular = c
}

type PointLight struct {
	BaseLight
	Position    types.Vec3
	Attenuation Attenuation
}

// Create an enabled point light.
func NewPointLight(position types.Vec3, color types.Color) *PointLight {
	l := &PointLight{
		Position:    position,
		Attenuation: Attenuation{Constant: 1, Linear: 0.14, Quadratic: 0.07},
	}
	l.SetColor(color)
	l.Enabled = true
	return l
}

func (l *PointLight) Kind() LightKind {
	return PointLightKind
}

type DirectionalLight struct {
	BaseLight
	Direction types.Vec3
}

// Create an enabled directional light.
func NewDirectionalLight(direction types.Vec3, color types.Color) *DirectionalLight {
	l := &DirectionalLight{Direction: types.Normalize(direction)}
	l.SetColor(color)
	l.Enabled = true
	return l
}

func (l *DirectionalLight) Kind() LightKind {
	return DirectionalLightKind
}

// SpotLight is a point light restricted to a cone. Cutoff angles are in degrees.
type SpotLight struct {
	PointLight
	Direction   types.Vec3
	CutOff      float32
	OuterCutOff float32
}

// Create an enabled spot light.
func NewSpotLight(position, direction types.Vec3, color types.Color, cutOff, outerCutOff float32) *SpotLight {
	l := &SpotLight{
		Direction:   types.Normalize(direction),
		CutOff:      cutOff,
		OuterCutOff: outerCutOff,
	}
	l.Position = position
	l.Attenuation = Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032}
	l.SetColor(color)
	l.Enabled = true
	return l
}

func (l *SpotLight) Kind() LightKind {
	return SpotLightKind
}

// Point the light along direction.
func (l *SpotLight) SetDirection(direction types.Vec3) {
	l.Direction = types.Normalize(direction)
}
