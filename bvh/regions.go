package bvh

import (
	"fmt"
	"math"
	"time"

	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/types"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis

	// Split candidates are not evaluated along an axis whose extent is
	// below this threshold.
	minSideLength float32 = 1e-3

	// Split candidates are not evaluated if the split step (side length /
	// (1024 / depth+1)) falls below this threshold.
	minSplitStep float32 = 1e-5
)

var (
	// A split scoring strategy that uses the surface area heuristic (SAH).
	SurfaceAreaHeuristic = surfaceAreaHeuristic{}
)

// Item is a box collider waiting to be placed in a generated region.
type Item struct {
	Key      string
	Collider physics.BoxCollider
}

func (it Item) bbox() [2]types.Vec3 {
	box := it.Collider.AsBox()
	return [2]types.Vec3{box.Min, box.Max}
}

func (it Item) center() types.Vec3 {
	return it.Collider.AsBox().Position
}

// A split scoring strategy.
type ScoreStrategy interface {
	// Calculate a score for splitting items at splitPoint along a particular Axis.
	ScoreSplit(items []Item, splitAxis Axis, splitPoint float32) (leftCount, rightCount int, score float32)

	// Calculate a score for all items.
	ScorePartition(items []Item) (score float32)
}

type splitScore struct {
	axis       Axis
	splitPoint float32

	leftCount, rightCount int
	score                 float32
}

// RegionStats summarizes a region build.
type RegionStats struct {
	Regions  int
	Items    int
	MaxDepth int
}

type regionBuilder struct {
	h      *Hierarchy
	prefix string

	// The minimum number of items that are required for creating a leaf region.
	minLeafItems int

	scoreStrategy ScoreStrategy

	stats RegionStats
}

// Partition items into a tree of generated region boxes attached below
// parentKey and insert every item as a child of the region that encloses it.
// Region keys are derived from prefix. Since every region is the bounding
// box of its items, pruning from a generated region never misses one of its
// items.
//
// The builder scores candidate splits with the given strategy; items are
// grouped in a single region once their count drops to minLeafItems or no
// split improves the score. Returns nil if items is empty.
func BuildRegions(h *Hierarchy, parentKey, prefix string, items []Item, minLeafItems int, scoreStrategy ScoreStrategy) (*Node, RegionStats) {
	if len(items) == 0 {
		return nil, RegionStats{}
	}
	if minLeafItems < 1 {
		minLeafItems = 1
	}

	b := &regionBuilder{
		h:             h,
		prefix:        prefix,
		minLeafItems:  minLeafItems,
		scoreStrategy: scoreStrategy,
	}

	start := time.Now()
	root := b.partition(parentKey, items, 0)
	logger.Debugf(
		"region build time: %d ms, maxDepth: %d, regions: %d, items: %d",
		time.Since(start).Nanoseconds()/1e6,
		b.stats.MaxDepth, b.stats.Regions, b.stats.Items,
	)
	return root, b.stats
}

// Snapshot the box leaves below rootKey and partition them into a new
// hierarchy rooted at a copy of the rootKey volume. Leaves are copied with
// their current bounds and tag; scene links are not carried over and the
// source hierarchy is left untouched. Returns nil if rootKey is not a box.
func Rebuild(h *Hierarchy, rootKey string, minLeafItems int, scoreStrategy ScoreStrategy) (*Hierarchy, RegionStats) {
	root := h.Find(rootKey)
	if root == nil {
		return nil, RegionStats{}
	}
	rootBox, ok := root.Collider.(physics.BoxCollider)
	if !ok {
		return nil, RegionStats{}
	}

	var items []Item
	for _, leaf := range collectLeaves(root, nil) {
		if leaf == root {
			continue
		}
		box, ok := leaf.Collider.(physics.BoxCollider)
		if !ok || leaf.Collider.Type().Shape() != physics.ShapeBox {
			continue
		}
		items = append(items, Item{Key: leaf.Key(), Collider: copyBox(box.AsBox())})
	}

	out := New()
	out.AddCollider(rootKey, copyBox(rootBox.AsBox()))
	_, stats := BuildRegions(out, rootKey, "region", items, minLeafItems, scoreStrategy)
	return out, stats
}

func collectLeaves(n *Node, out []*Node) []*Node {
	children := n.Children()
	if len(children) == 0 {
		return append(out, n)
	}
	for _, child := range children {
		out = collectLeaves(child, out)
	}
	return out
}

func copyBox(b *physics.Box) *physics.Box {
	out := physics.NewTaggedBox(b.Kind, b.Position, b.HalfExtent)
	out.Enabled = b.Enabled
	return out
}

// Create a region for items below parentKey and partition it further.
func (b *regionBuilder) partition(parentKey string, items []Item, depth int) *Node {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	min := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, item := range items {
		itemBBox := item.bbox()
		min = types.MinVec3(min, itemBBox[0])
		max = types.MaxVec3(max, itemBBox[1])
	}

	key := fmt.Sprintf("%s/%d", b.prefix, b.stats.Regions)
	b.stats.Regions++
	region := b.h.AddChildCollider(parentKey, key, physics.NewBox(min.Add(max).Mul(0.5), max.Sub(min).Mul(0.5)))

	if len(items) <= b.minLeafItems {
		b.fill(key, items)
		return region
	}

	bestSplit := b.bestSplit(items, min, max, depth)
	if bestSplit == nil {
		b.fill(key, items)
		return region
	}

	leftItems := make([]Item, 0, bestSplit.leftCount)
	rightItems := make([]Item, 0, bestSplit.rightCount)
	for _, item := range items {
		if item.center()[bestSplit.axis] < bestSplit.splitPoint {
			leftItems = append(leftItems, item)
		} else {
			rightItems = append(rightItems, item)
		}
	}

	b.partition(key, leftItems, depth+1)
	b.partition(key, rightItems, depth+1)
	return region
}

// Evaluate split candidates along each axis and return the one that
// improves the score of the unsplit items the most.
func (b *regionBuilder) bestSplit(items []Item, min, max types.Vec3, depth int) *splitScore {
	bestScore := b.scoreStrategy.ScorePartition(items)
	var bestSplit *splitScore

	side := max.Sub(min)
	for axis := XAxis; axis <= ZAxis; axis++ {
		if side[axis] < minSideLength {
			continue
		}

		// Split steps become more granular the deeper we go
		splitStep := side[axis] / (1024.0 / float32(depth+1))
		if splitStep < minSplitStep {
			continue
		}

		for splitPoint := min[axis]; splitPoint < max[axis]; splitPoint += splitStep {
			lCount, rCount, score := b.scoreStrategy.ScoreSplit(items, axis, splitPoint)
			if score < bestScore {
				bestScore = score
				bestSplit = &splitScore{
					axis:       axis,
					splitPoint: splitPoint,
					leftCount:  lCount,
					rightCount: rCount,
					score:      score,
				}
			}
		}
	}

	return bestSplit
}

func (b *regionBuilder) fill(regionKey string, items []Item) {
	for _, item := range items {
		b.h.AddChildCollider(regionKey, item.Key, item.Collider)
	}
	b.stats.Items += len(items)
}

// A score implementation that uses surface area heuristic for calculating split scores.
type surfaceAreaHeuristic struct{}

// Score a split using the surface area heuristic (lower is better):
//
// left count * left BBOX area + right count * right BBOX area.
//
// Splits that generate an empty partition get the worst possible score.
func (h surfaceAreaHeuristic) ScoreSplit(items []Item, axis Axis, splitPoint float32) (leftCount, rightCount int, score float32) {
	lmin := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	rmin := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	lmax := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	rmax := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}

	for _, item := range items {
		itemBBox := item.bbox()
		if item.center()[axis] < splitPoint {
			leftCount++
			lmin = types.MinVec3(lmin, itemBBox[0])
			lmax = types.MaxVec3(lmax, itemBBox[1])
		} else {
			rightCount++
			rmin = types.MinVec3(rmin, itemBBox[0])
			rmax = types.MaxVec3(rmax, itemBBox[1])
		}
	}

	if leftCount == 0 || rightCount == 0 {
		return leftCount, rightCount, math.MaxFloat32
	}

	return leftCount, rightCount, float32(leftCount)*surfaceArea(lmin, lmax) + float32(rightCount)*surfaceArea(rmin, rmax)
}

// Score unsplit items using count * BBOX area. Empty input gets the worst
// possible score.
func (h surfaceAreaHeuristic) ScorePartition(items []Item) (score float32) {
	if len(items) == 0 {
		return math.MaxFloat32
	}

	min := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, item := range items {
		itemBBox := item.bbox()
		min = types.MinVec3(min, itemBBox[0])
		max = types.MaxVec3(max, itemBBox[1])
	}

	return float32(len(items)) * surfaceArea(min, max)
}

// Half the surface area of a box; the constant factor does not affect ranking.
func surfaceArea(min, max types.Vec3) float32 {
	side := max.Sub(min)
	return side[0]*side[1] + side[1]*side[2] + side[0]*side[2]
}
