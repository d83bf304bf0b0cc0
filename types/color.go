package types

import "strings"

// Color is an RGBA color with float components in the [0, 1] range.
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Purple    = Color{1, 0, 1, 1}
	Yellow    = Color{1, 0.914, 0, 1}
	Orange    = Color{1, 0.643, 0, 1}
	White     = Color{1, 1, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Gray      = Color{0.2, 0.2, 0.2, 1}
	LightGray = Color{0.859, 0.886, 0.914, 1}
	DarkGray  = Color{0.213, 0.213, 0.213, 1}
)

var colorNames = map[string]Color{
	"red":        Red,
	"green":      Green,
	"blue":       Blue,
	"purple":     Purple,
	"yellow":     Yellow,
	"orange":     Orange,
	"white":      White,
	"black":      Black,
	"gray":       Gray,
	"light gray": LightGray,
	"dark gray":  DarkGray,
}

// Lookup a predefined color by name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Exchange the values of two colors.
func (c *Color) Swap(other *Color) {
	*c, *other = *other, *c
}

// Equal compares the RGB components; alpha is ignored.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

func (c Color) Vec3() Vec3 {
	return Vec3{c.R, c.G, c.B}
}

func (c Color) Vec4() Vec4 {
	return Vec4{c.R, c.G, c.B, c.A}
}

// Return a copy of the color with its RGB components scaled by f.
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A}
}

// Return a copy of the color with the given alpha.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}
