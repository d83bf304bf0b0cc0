package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/torrra/spectrum-retreat-clone/config"
	"github.com/torrra/spectrum-retreat-clone/game"
	"github.com/torrra/spectrum-retreat-clone/renderer"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
	"github.com/urfave/cli"
)

// Run the first level headless using the scripted input from the
// configuration.
func Simulate(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if frames := ctx.Int("frames"); frames > 0 {
		cfg.Simulation.Frames = frames
		cfg.Simulation.Steps = nil
	}

	rOpts := cfg.RendererOptions()
	inputs, err := scriptInput(cfg.Simulation, rOpts.Aspect())
	if err != nil {
		return err
	}

	r, err := renderer.NewHeadless(rOpts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Infof("simulating %d frames with a time step of %.4fs", len(inputs), cfg.Simulation.TimeStep)
	g := game.New(cfg.GameOptions(), nil, r)
	res, err := runSimulation(g, inputs, cfg.Simulation.TimeStep)
	if err != nil {
		return err
	}

	logger.Noticef("simulation summary\n%s", res.String())
	if ctx.Bool("stats") {
		logger.Noticef("last frame statistics\n%s", r.Stats().String())
	}
	return nil
}

// Expand the simulation steps into per-frame input. The cursor accumulates
// the turn of every step so the camera keeps rotating while a step lasts.
func scriptInput(sim config.Simulation, aspect float32) ([]game.FrameInput, error) {
	if len(sim.Steps) == 0 {
		inputs := make([]game.FrameInput, sim.Frames)
		for i := range inputs {
			inputs[i].Camera.Aspect = aspect
		}
		return inputs, nil
	}

	var (
		inputs = make([]game.FrameInput, 0, sim.TotalFrames())
		cursor types.Vec2
	)
	for index, step := range sim.Steps {
		keys, err := game.ParseKeys(step.Keys)
		if err != nil {
			return nil, fmt.Errorf("simulate: step %d: %s", index, err)
		}

		for i := 0; i < step.Frames; i++ {
			cursor = cursor.Add(types.Vec2(step.Turn))
			inputs = append(inputs, game.FrameInput{
				Keys: keys,
				Camera: scene.CameraInput{
					Cursor:       cursor,
					CursorLocked: true,
					Aspect:       aspect,
				},
			})
		}
	}
	return inputs, nil
}

type simulationResult struct {
	Frames   int
	Restarts int
	State    game.State

	// Number of frames raising each event.
	DoorBlocks int
	Teleports  int
	Swaps      int
	InTower    int

	// Every event raised at least once.
	Seen game.Events

	Position types.Vec3
	Color    types.Color
	Elapsed  time.Duration
}

// Feed inputs to the game until they run out or the level is complete.
func runSimulation(g *game.Game, inputs []game.FrameInput, dt float32) (simulationResult, error) {
	var res simulationResult
	start := time.Now()

	for _, in := range inputs {
		ev, err := g.Tick(in, dt)
		if err != nil {
			return res, err
		}
		res.Frames++
		res.Seen.Merge(ev)

		if ev.DoorBlocked {
			res.DoorBlocks++
		}
		if ev.Teleported {
			res.Teleports++
		}
		if ev.ColorSwapped {
			res.Swaps++
		}
		if ev.InsideTower {
			res.InTower++
		}

		if g.State == game.StateComplete {
			logger.Infof("level complete after %d frames", res.Frames)
			break
		}
	}

	res.Elapsed = time.Since(start)
	res.Restarts = g.Resets
	res.State = g.State
	res.Position = g.Level.Player.Position
	res.Color = g.Level.Player.Color
	return res, nil
}

func (r simulationResult) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Frames", fmt.Sprint(r.Frames)})
	table.Append([]string{"State", r.State.String()})
	table.Append([]string{"Restarts", fmt.Sprint(r.Restarts)})
	table.Append([]string{"Blocked by doors", fmt.Sprint(r.DoorBlocks)})
	table.Append([]string{"Teleports", fmt.Sprint(r.Teleports)})
	table.Append([]string{"Color swaps", fmt.Sprint(r.Swaps)})
	table.Append([]string{"Frames in tower", fmt.Sprint(r.InTower)})
	table.Append([]string{"Fell off", fmt.Sprint(r.Seen.GameOver)})
	table.Append([]string{"Position", fmt.Sprintf("(%3.3f, %3.3f, %3.3f)", r.Position[0], r.Position[1], r.Position[2])})
	table.Append([]string{"Color", fmt.Sprintf("(%.3f, %.3f, %.3f)", r.Color.R, r.Color.G, r.Color.B)})
	table.SetFooter([]string{"Elapsed", r.Elapsed.String()})

	table.Render()
	return buf.String()
}
