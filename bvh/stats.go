package bvh

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/torrra/spectrum-retreat-clone/physics"
)

// Stats summarizes the shape of a hierarchy.
type Stats struct {
	Nodes    int
	Leaves   int
	Linked   int
	MaxDepth int

	// Collider count per type.
	PerType map[physics.ColliderType]int
}

// Collect hierarchy statistics.
func (h *Hierarchy) Stats() Stats {
	stats := Stats{PerType: make(map[physics.ColliderType]int)}

	h.Walk(func(n *Node, depth int) bool {
		stats.Nodes++
		if n.IsLeaf() {
			stats.Leaves++
		}
		if n.link != nil {
			stats.Linked++
		}
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if n.Collider != nil {
			stats.PerType[n.Collider.Type()]++
		}
		return true
	})

	return stats
}

// Render stats as a table.
func (s Stats) String() string {
	var buf bytes.Buffer

	kinds := make([]physics.ColliderType, 0, len(s.PerType))
	for kind := range s.PerType {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Detail", "Value"})
	table.Append([]string{"Colliders", "---", fmt.Sprint(s.Nodes)})
	for _, kind := range kinds {
		table.Append([]string{"", kind.String(), fmt.Sprint(s.PerType[kind])})
	}
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Shape", "Leaves", fmt.Sprint(s.Leaves)})
	table.Append([]string{"", "Linked", fmt.Sprint(s.Linked)})
	table.Append([]string{"", "Max depth", fmt.Sprint(s.MaxDepth)})
	table.Render()

	return buf.String()
}
