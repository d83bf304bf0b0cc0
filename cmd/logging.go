package cmd

import (
	"github.com/torrra/spectrum-retreat-clone/config"
	"github.com/torrra/spectrum-retreat-clone/log"
	"github.com/urfave/cli"
)

var logger = log.New("spectrum")

// Apply the configured log level. The verbosity flags take precedence.
func setupLogging(ctx *cli.Context, cfg config.Config) {
	if level, err := cfg.LogLevel(); err == nil {
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Load the configuration selected by the global config flag and set up
// logging.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if location := ctx.GlobalString("config"); location != "" {
		var err error
		if cfg, err = config.Load(location); err != nil {
			return cfg, err
		}
	}

	setupLogging(ctx, cfg)
	return cfg, nil
}
