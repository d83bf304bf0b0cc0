package game

import (
	"fmt"
	"strings"

	"github.com/torrra/spectrum-retreat-clone/scene"
)

// KeyInput is the keyboard and mouse button state sampled for a frame.
type KeyInput struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool

	// Leave the final tower.
	Shift bool

	// Cast the color ray.
	Click bool
}

var keyNames = map[string]func(*KeyInput){
	"forward": func(k *KeyInput) { k.Forward = true },
	"back":    func(k *KeyInput) { k.Back = true },
	"left":    func(k *KeyInput) { k.Left = true },
	"right":   func(k *KeyInput) { k.Right = true },
	"jump":    func(k *KeyInput) { k.Jump = true },
	"shift":   func(k *KeyInput) { k.Shift = true },
	"click":   func(k *KeyInput) { k.Click = true },
}

// Build the key state from a list of pressed key names.
func ParseKeys(names []string) (KeyInput, error) {
	var keys KeyInput
	for _, name := range names {
		press, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return KeyInput{}, fmt.Errorf("game: unknown key '%s'", name)
		}
		press(&keys)
	}
	return keys, nil
}

// FrameInput groups everything a tick consumes from the window layer.
type FrameInput struct {
	Keys   KeyInput
	Camera scene.CameraInput
}

// Events raised while processing a frame. Every flag is only valid for the
// frame that produced it.
type Events struct {
	// The player walked into a closed door.
	DoorBlocked bool

	// The player fell off the level.
	GameOver bool

	// The player reached the bottom of the final tower.
	LevelComplete bool

	Teleported   bool
	ColorSwapped bool
	InsideTower  bool
}

// Merge the flags raised in other.
func (e *Events) Merge(other Events) {
	e.DoorBlocked = e.DoorBlocked || other.DoorBlocked
	e.GameOver = e.GameOver || other.GameOver
	e.LevelComplete = e.LevelComplete || other.LevelComplete
	e.Teleported = e.Teleported || other.Teleported
	e.ColorSwapped = e.ColorSwapped || other.ColorSwapped
	e.InsideTower = e.InsideTower || other.InsideTower
}
