package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/torrra/spectrum-retreat-clone/game"
	"github.com/torrra/spectrum-retreat-clone/log"
	"github.com/torrra/spectrum-retreat-clone/renderer"
	"github.com/torrra/spectrum-retreat-clone/types"
)

var (
	ErrInvalidWindow   = errors.New("config: window dimensions must be non-zero")
	ErrInvalidFOV      = errors.New("config: camera fov must be in the (0, 180) range")
	ErrInvalidClip     = errors.New("config: camera clip distances must satisfy 0 < near < far")
	ErrInvalidTimeStep = errors.New("config: simulation time step must be positive")
)

type Window struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type Camera struct {
	FOV           float32 `toml:"fov"`
	MoveIncrement float32 `toml:"move_increment"`
	PitchSpeed    float32 `toml:"pitch_speed"`
	YawSpeed      float32 `toml:"yaw_speed"`
	Near          float32 `toml:"near"`
	Far           float32 `toml:"far"`

	// Use the point magnitude as plane distance when building the frustum.
	LegacyPlanes bool `toml:"legacy_planes"`
}

type Player struct {
	Spawn [3]float32 `toml:"spawn"`
	Color string     `toml:"color"`
}

// Step is a run of frames sharing the same input.
type Step struct {
	Frames int      `toml:"frames"`
	Keys   []string `toml:"keys"`

	// Cursor movement applied every frame.
	Turn [2]float32 `toml:"turn"`
}

type Simulation struct {
	// Frames to run when no steps are defined.
	Frames   int     `toml:"frames"`
	TimeStep float32 `toml:"time_step"`

	Steps []Step `toml:"steps"`
}

type Log struct {
	Level string `toml:"level"`
}

// Config holds every setting of the game. Unset values keep their defaults.
type Config struct {
	Window     Window     `toml:"window"`
	Camera     Camera     `toml:"camera"`
	Player     Player     `toml:"player"`
	Simulation Simulation `toml:"simulation"`
	Log        Log        `toml:"log"`
}

// Get the default configuration.
func Default() Config {
	opts := game.DefaultOptions()
	rOpts := renderer.DefaultOptions()

	return Config{
		Window: Window{
			Width:  rOpts.FrameW,
			Height: rOpts.FrameH,
		},
		Camera: Camera{
			FOV:           opts.FOV,
			MoveIncrement: opts.MoveIncrement,
			PitchSpeed:    opts.PitchSpeed,
			YawSpeed:      opts.YawSpeed,
			Near:          opts.Near,
			Far:           opts.Far,
		},
		Player: Player{
			Spawn: opts.Spawn,
			Color: "white",
		},
		Simulation: Simulation{
			Frames:   600,
			TimeStep: 1.0 / 60,
		},
		Log: Log{
			Level: "notice",
		},
	}
}

// Load and validate the configuration stored at location, a local path or
// an http(s) URL.
func Load(location string) (Config, error) {
	res, err := OpenResource(location)
	if err != nil {
		return Config{}, err
	}
	defer res.Close()

	return Parse(res)
}

// Decode and validate a configuration stream on top of the defaults.
func Parse(res *Resource) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(res)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return Config{}, fmt.Errorf("config: unknown settings in '%s':\n%s", res.Path(), strictErr.String())
		}
		return Config{}, fmt.Errorf("config: could not parse '%s': %s", res.Path(), err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write the configuration in TOML format.
func (c Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

// Check that all settings are usable.
func (c Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return ErrInvalidWindow
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return ErrInvalidFOV
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return ErrInvalidClip
	}
	if c.Simulation.TimeStep <= 0 {
		return ErrInvalidTimeStep
	}
	if _, ok := types.ParseColor(c.Player.Color); !ok {
		return fmt.Errorf("config: unknown player color '%s'", c.Player.Color)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	for index, step := range c.Simulation.Steps {
		if step.Frames <= 0 {
			return fmt.Errorf("config: simulation step %d must run for at least one frame", index)
		}
		if _, err := game.ParseKeys(step.Keys); err != nil {
			return fmt.Errorf("config: simulation step %d: %s", index, err)
		}
	}
	return nil
}

// Get the options for creating a game.
func (c Config) GameOptions() game.Options {
	color, ok := types.ParseColor(c.Player.Color)
	if !ok {
		color = types.White
	}

	return game.Options{
		Spawn:         types.Vec3(c.Player.Spawn),
		FOV:           c.Camera.FOV,
		MoveIncrement: c.Camera.MoveIncrement,
		PitchSpeed:    c.Camera.PitchSpeed,
		YawSpeed:      c.Camera.YawSpeed,
		LegacyPlanes:  c.Camera.LegacyPlanes,
		Near:          c.Camera.Near,
		Far:           c.Camera.Far,
		PlayerColor:   color,
	}
}

// Get the options for creating a renderer.
func (c Config) RendererOptions() renderer.Options {
	return renderer.Options{
		FrameW: c.Window.Width,
		FrameH: c.Window.Height,
		Near:   c.Camera.Near,
		Far:    c.Camera.Far,
	}
}

func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Total number of frames simulated.
func (s Simulation) TotalFrames() int {
	if len(s.Steps) == 0 {
		return s.Frames
	}

	var total int
	for _, step := range s.Steps {
		total += step.Frames
	}
	return total
}
