package cmd

import (
	"bytes"

	"github.com/urfave/cli"
)

// Print the effective configuration.
func ShowConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = cfg.Encode(&buf); err != nil {
		return err
	}

	logger.Noticef("effective configuration\n%s", buf.String())
	return nil
}
