package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

type FrameStats struct {
	// Sequence number of the frame.
	Frame uint64

	// Draw calls issued and how many of them sample a texture or blend.
	DrawCalls   int
	Textured    int
	Translucent int

	// Visible meshes that were not attached to a scene node.
	Skipped int

	// Enabled lights per kind.
	PointLights       int
	DirectionalLights int
	SpotLights        int

	// Time spent building the draw list.
	RenderTime time.Duration
}

// Render stats as a table.
func (s FrameStats) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Stat", "Detail", "Value"})
	table.Append([]string{"Draw calls", "---", fmt.Sprint(s.DrawCalls)})
	table.Append([]string{"", "Textured", fmt.Sprint(s.Textured)})
	table.Append([]string{"", "Translucent", fmt.Sprint(s.Translucent)})
	table.Append([]string{"", "Skipped", fmt.Sprint(s.Skipped)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Lights", "---", fmt.Sprint(s.PointLights + s.DirectionalLights + s.SpotLights)})
	table.Append([]string{"", "Point", fmt.Sprint(s.PointLights)})
	table.Append([]string{"", "Directional", fmt.Sprint(s.DirectionalLights)})
	table.Append([]string{"", "Spot", fmt.Sprint(s.SpotLights)})
	table.SetFooter([]string{"Frame", fmt.Sprint(s.Frame), s.RenderTime.String()})

	table.Render()
	return buf.String()
}
