package game

import (
	"github.com/torrra/spectrum-retreat-clone/log"
	"github.com/torrra/spectrum-retreat-clone/renderer"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

var logger = log.New("game")

// A grounded player below this height has reached the end of the level.
const completionHeight float32 = -15

type State uint8

const (
	StatePlaying State = iota
	StateComplete
)

func (s State) String() string {
	if s == StateComplete {
		return "complete"
	}
	return "playing"
}

type Options struct {
	// Player spawn point (feet position).
	Spawn types.Vec3

	// Camera settings.
	FOV           float32
	MoveIncrement float32
	PitchSpeed    float32
	YawSpeed      float32
	LegacyPlanes  bool

	// Frustum clip distances.
	Near float32
	Far  float32

	PlayerColor types.Color
}

// Get the options used by the demo level.
func DefaultOptions() Options {
	return Options{
		Spawn:         types.XYZ(45, 1.476, 45),
		FOV:           45,
		MoveIncrement: 1,
		PitchSpeed:    0.15,
		YawSpeed:      0.1,
		Near:          scene.DefaultNear,
		Far:           scene.DefaultFar,
		PlayerColor:   types.White,
	}
}

// LevelBuilder creates a fresh level. It is invoked on start and every time
// the level is restarted.
type LevelBuilder func(Options) *Level

// Game drives a level one frame at a time.
type Game struct {
	Level *Level
	State State

	// Number of processed frames and level restarts.
	Frames uint64
	Resets int

	opts     Options
	build    LevelBuilder
	renderer renderer.Renderer
}

// Create a new game. A nil builder selects the demo level and a nil renderer
// skips the draw step.
func New(opts Options, build LevelBuilder, r renderer.Renderer) *Game {
	if build == nil {
		build = BuildLevelOne
	}

	g := &Game{
		opts:     opts,
		build:    build,
		renderer: r,
	}
	g.Level = build(opts)
	return g
}

func (g *Game) Options() Options {
	return g.opts
}

// Rebuild the level from scratch.
func (g *Game) Reset() {
	g.Level = g.build(g.opts)
	g.State = StatePlaying
	g.Resets++
}

// Process a single frame. The scene graph is refreshed first so that the
// colliders linked to it see this frame's transforms, then the camera and
// its frustum, the culled collider update, the player and finally the
// objects and the draw call.
func (g *Game) Tick(in FrameInput, dt float32) (Events, error) {
	if g.State == StateComplete {
		return Events{LevelComplete: true}, nil
	}

	l := g.Level
	l.Scene.UpdateAll()

	l.Camera.UpdateCamera(in.Camera)
	aspect := in.Camera.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	l.Colliders.UpdateCulled(l.Camera.CameraFrustum(aspect, g.opts.Near, g.opts.Far))

	events := l.Player.UpdatePlayer(in.Keys, dt, l.Colliders)

	l.Spot.SetEnabled(true)
	l.Spot.Position = l.Camera.Position
	l.Spot.SetDirection(l.Camera.Front)

	l.UpdateObjects(dt)

	if g.renderer != nil {
		if err := g.renderer.Render(scene.Collect(l.Scene, l.Camera)); err != nil {
			return events, err
		}
	}
	g.Frames++

	switch {
	case events.GameOver:
		logger.Noticef("player fell off the level at frame %d; restarting", g.Frames)
		g.Reset()
	case l.Player.Position[1] <= completionHeight && l.Player.Grounded():
		logger.Noticef("level complete after %d frames", g.Frames)
		g.State = StateComplete
		events.LevelComplete = true
	}

	return events, nil
}
