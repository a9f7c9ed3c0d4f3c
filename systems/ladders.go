package systems

import (
	"slices"

	"github.com/automoto/ladderclimb/components"
	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceLadderIndex answers ladder overlap queries through the resolv space.
// The space narrows candidates to shared cells; the exact AABB test runs on
// the ladder rectangles so results match a linear scan.
type SpaceLadderIndex struct {
	space *resolv.Space
	probe *resolv.Object
	found []int
}

func NewSpaceLadderIndex(space *resolv.Space) *SpaceLadderIndex {
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	return &SpaceLadderIndex{space: space, probe: probe}
}

// Overlapping returns the indices of ladders strictly overlapping box, in
// ascending order. The returned slice is reused by the next call.
func (li *SpaceLadderIndex) Overlapping(box gamemath.Rect) []int {
	li.found = li.found[:0]

	// Cell ranges drop the last partial pixel, so query one pixel wider.
	li.probe.X, li.probe.Y = box.X-1, box.Y-1
	li.probe.W, li.probe.H = box.W+2, box.H+2
	li.probe.Update()

	check := li.probe.Check(0, 0, tags.ResolvLadder)
	if check == nil {
		return nil
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvLadder) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		ladder := components.Ladder.Get(entry)
		if ladder.Rect.Overlaps(box) {
			li.found = append(li.found, ladder.Index)
		}
	}
	slices.Sort(li.found)
	li.found = slices.Compact(li.found)
	return li.found
}

// Close takes the probe out of the space.
func (li *SpaceLadderIndex) Close() {
	li.space.Remove(li.probe)
}
