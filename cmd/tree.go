package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/torrra/spectrum-retreat-clone/bvh"
	"github.com/torrra/spectrum-retreat-clone/game"
	"github.com/urfave/cli"
)

// Print statistics for the collider hierarchy of the first level and
// optionally compare it against automatically generated regions.
func ShowTree(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	l := game.BuildLevelOne(cfg.GameOptions())
	logger.Noticef("collider hierarchy (%d scene nodes)\n%s", l.Scene.Len(), l.Colliders.Stats().String())

	if ctx.Bool("dump") {
		logger.Noticef("collider tree\n%s", dumpTree(l.Colliders))
	}

	if minLeafItems := ctx.Int("sah"); minLeafItems > 0 {
		rebuilt, stats := bvh.Rebuild(l.Colliders, game.WorldKey, minLeafItems, bvh.SurfaceAreaHeuristic)
		if rebuilt == nil {
			return fmt.Errorf("tree: could not rebuild hierarchy from '%s'", game.WorldKey)
		}
		logger.Noticef(
			"SAH hierarchy (%d regions for %d leaves, max depth %d)\n%s",
			stats.Regions, stats.Items, stats.MaxDepth, rebuilt.Stats().String(),
		)
	}
	return nil
}

func dumpTree(h *bvh.Hierarchy) string {
	var buf bytes.Buffer
	h.Walk(func(n *bvh.Node, depth int) bool {
		kind := "none"
		if n.Collider != nil {
			kind = n.Collider.Type().String()
		}
		linked := ""
		if n.Link() != nil {
			linked = " linked"
		}
		fmt.Fprintf(&buf, "%s%s [%s%s]\n", strings.Repeat("  ", depth), n.Key(), kind, linked)
		return true
	})
	return buf.String()
}
