package group

import "github.com/jclermont/figura/model"

// groupSameBlock is phase 1: every block containing two or more images
// becomes one row group holding all of that block's images in occurrence
// order. Blocks with exactly one image are deferred to phase 2. This is
// a pure single pass with no cross-block state.
func groupSameBlock(blocks []model.Block) []*candidate {
	var out []*candidate
	for _, b := range blocks {
		if len(b.Images) < 2 {
			continue
		}
		c := &candidate{
			members: append([]model.ImageRef(nil), b.Images...),
			layout:  model.LayoutRow,
		}
		c.explain("grouped %d images co-located in paragraph at position %d", len(b.Images), b.Position)
		out = append(out, c)
	}
	return out
}
