package group

import "github.com/jclermont/figura/model"

// groupAdjacent is phase 2: an explicit fold over the singleton-image
// blocks left ungrouped by phase 1, in document order. The fold carries
// one piece of state, the currently open group; each next singleton is
// tested against the open group's last image using the gap and
// text-volume conditions, so groups grow transitively. A group closes
// the first time a candidate fails either condition, or when the
// sequence is exhausted.
func (g *Grouper) groupAdjacent(singles []model.Block, byPos map[int]*model.Block, pageWidthEMU int64) []*candidate {
	var out []*candidate
	var open *candidate

	close := func() {
		g.finishAdjacent(open, pageWidthEMU)
		out = append(out, open)
		open = nil
	}

	for i := range singles {
		img := singles[i].Images[0]
		if open == nil {
			open = newCandidate(img)
			continue
		}

		last := open.last()
		gap := img.BlockPosition - last.BlockPosition - 1
		if gap > g.config.MaxGapParas {
			open.explain("closed group: gap=%d exceeds max_gap_paras=%d", gap, g.config.MaxGapParas)
			close()
			open = newCandidate(img)
			continue
		}

		if pos, long := g.longTextBetween(byPos, last.BlockPosition, img.BlockPosition); long {
			open.explain("closed group: text at position %d exceeds max_title_len=%d", pos, g.config.MaxTitleLen)
			close()
			open = newCandidate(img)
			continue
		}

		open.members = append(open.members, img)
		open.explain("grouped by column-adjacency(gap=%d)", gap)
	}

	if open != nil {
		close()
	}
	return out
}

// longTextBetween reports whether any block strictly between positions
// from and to carries text longer than MaxTitleLen. Credit lines are
// exempt: a long source attribution between two images does not mark a
// grouping boundary.
func (g *Grouper) longTextBetween(byPos map[int]*model.Block, from, to int) (int, bool) {
	for p := from + 1; p < to; p++ {
		b, ok := byPos[p]
		if !ok {
			continue
		}
		if textLength(b.Text) > g.config.MaxTitleLen && !IsCreditLine(b.Text) {
			return p, true
		}
	}
	return 0, false
}

// finishAdjacent selects the layout for a closed phase-2 group. A lone
// image has no row/column distinction; row is the canonical default.
// Multi-member groups default to column, unless all member widths are
// known and their sum still fits within PageWidthRatio of the page's
// usable width, in which case the group renders as a row.
func (g *Grouper) finishAdjacent(c *candidate, pageWidthEMU int64) {
	if len(c.members) == 1 {
		c.layout = model.LayoutRow
		c.explain("single image at position %d", c.members[0].BlockPosition)
		return
	}

	c.layout = model.LayoutColumn
	if total, known := c.totalWidthEMU(); known && pageWidthEMU > 0 {
		limit := int64(g.config.PageWidthRatio * float64(pageWidthEMU))
		if total <= limit {
			c.layout = model.LayoutRow
			c.explain("relabeled row: summed width %d EMU fits %g of page width %d EMU", total, g.config.PageWidthRatio, pageWidthEMU)
		}
	}
}
