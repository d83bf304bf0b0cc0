package main

import (
	"fmt"
	"os"

	"github.com/torrra/spectrum-retreat-clone/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "spectrum"
	app.Usage = "run the color puzzle level without a window"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a TOML file or http(s) URL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "simulate",
			Usage: "play the first level with scripted input",
			Description: `
Build the first level and feed it the input steps listed in the simulation
section of the configuration. Every frame runs the full update: scene graph,
camera and frustum, culled collider update, player collisions and a headless
draw call.

The simulation stops early once the level is complete.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "frames, n",
					Usage: "ignore the configured steps and run this many idle frames",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "print draw statistics for the last frame",
				},
			},
			Action: cmd.Simulate,
		},
		{
			Name:  "tree",
			Usage: "print collider hierarchy statistics for the first level",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "dump",
					Usage: "print every collider node",
				},
				cli.IntFlag{
					Name:  "sah",
					Usage: "also partition the level leaves with the surface area heuristic using this many items per region",
				},
			},
			Action: cmd.ShowTree,
		},
		{
			Name:   "config",
			Usage:  "print the effective configuration",
			Action: cmd.ShowConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
