package group

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jclermont/figura/model"
)

// Grouper runs the two grouping phases over an ordered block sequence.
type Grouper struct {
	config Config
}

// NewGrouper creates a grouper with default configuration.
func NewGrouper() *Grouper {
	return &Grouper{config: DefaultConfig()}
}

// NewGrouperWithConfig creates a grouper with custom configuration.
func NewGrouperWithConfig(config Config) *Grouper {
	return &Grouper{config: config}
}

// Result holds the outcome of a grouping run.
type Result struct {
	// Groups are the finalized figure groups, ordered by the document
	// position of their first member, with sequential IDs assigned
	Groups []model.FigureGroup

	// Reasoning is the run's decision log, in decision order
	Reasoning []model.ReasoningEntry

	// Warnings are non-fatal anomalies (e.g. images without a
	// resolvable asset); they never interrupt processing
	Warnings []string
}

// candidate is a group under construction. Reasons accumulate as
// decisions are made and become one reasoning entry at finalization.
type candidate struct {
	members []model.ImageRef
	layout  model.Layout
	reasons []string
}

func newCandidate(img model.ImageRef) *candidate {
	return &candidate{members: []model.ImageRef{img}}
}

func (c *candidate) last() model.ImageRef {
	return c.members[len(c.members)-1]
}

func (c *candidate) explain(format string, args ...any) {
	c.reasons = append(c.reasons, fmt.Sprintf(format, args...))
}

// totalWidthEMU sums the members' width estimates. The second return
// value is false when any member's width is unknown.
func (c *candidate) totalWidthEMU() (int64, bool) {
	var total int64
	for _, m := range c.members {
		if m.WidthEMU <= 0 {
			return 0, false
		}
		total += m.WidthEMU
	}
	return total, true
}

// Group assigns every image in blocks to exactly one figure group.
// pageWidthEMU is the page's usable width in EMUs, used only by the
// phase-2 width exception; pass 0 when unknown to disable it.
//
// The scan is strictly left to right; group boundaries depend on state
// carried from one adjacency decision to the next, so the result is a
// deterministic function of (blocks, config).
func (g *Grouper) Group(blocks []model.Block, pageWidthEMU int64) (*Result, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	if len(blocks) == 0 {
		return res, nil
	}

	byPos := make(map[int]*model.Block, len(blocks))
	var singles []model.Block
	for i := range blocks {
		byPos[blocks[i].Position] = &blocks[i]
		if len(blocks[i].Images) == 1 {
			singles = append(singles, blocks[i])
		}
	}

	// Phase 1, then phase 2 over what phase 1 left ungrouped.
	candidates := groupSameBlock(blocks)
	candidates = append(candidates, g.groupAdjacent(singles, byPos, pageWidthEMU)...)
	if len(candidates) == 0 {
		return res, nil
	}

	res.Groups = make([]model.FigureGroup, len(candidates))
	for i, c := range candidates {
		res.Groups[i] = model.FigureGroup{Layout: c.layout, Members: c.members}
	}
	sort.SliceStable(res.Groups, func(i, j int) bool {
		a, b := res.Groups[i].First(), res.Groups[j].First()
		if a.BlockPosition != b.BlockPosition {
			return a.BlockPosition < b.BlockPosition
		}
		return a.IndexInBlock < b.IndexInBlock
	})

	// IDs follow document order; the reasoning log keeps decision order.
	ids := make(map[*candidate]string)
	byFirst := make(map[[2]int]*candidate, len(candidates))
	for _, c := range candidates {
		byFirst[[2]int{c.members[0].BlockPosition, c.members[0].IndexInBlock}] = c
	}
	for i := range res.Groups {
		id := fmt.Sprintf("grp_%04d", i+1)
		res.Groups[i].ID = id
		first := res.Groups[i].First()
		ids[byFirst[[2]int{first.BlockPosition, first.IndexInBlock}]] = id
	}

	rec := NewRecorder()
	for _, c := range candidates {
		rec.Record(ids[c], "%s", strings.Join(c.reasons, "; "))
	}
	res.Reasoning = rec.Entries()

	g.markUnresolved(res)
	return res, nil
}

// markUnresolved flags grouped images that carry no asset ID. The image
// stays in its group; the anomaly is surfaced as a warning.
func (g *Grouper) markUnresolved(res *Result) {
	for gi := range res.Groups {
		for mi := range res.Groups[gi].Members {
			m := &res.Groups[gi].Members[mi]
			if m.AssetID == "" {
				m.Unresolved = true
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("image %d in block %d has no resolvable asset", m.IndexInBlock, m.BlockPosition))
			}
		}
	}
}
