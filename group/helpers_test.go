package group

import (
	"fmt"

	"github.com/jclermont/figura/model"
)

// imageBlock builds a paragraph block at pos containing one image per
// width. A width of zero marks the dimension as unknown. Images get
// deterministic asset IDs so tests never trip the unresolved warning.
func imageBlock(pos int, widths ...int64) model.Block {
	b := model.Block{
		Kind:     model.BlockKindParagraph,
		Position: pos,
	}
	for i, w := range widths {
		b.Images = append(b.Images, model.ImageRef{
			AssetID:       fmt.Sprintf("img_%04d_%02d", pos, i),
			BlockPosition: pos,
			IndexInBlock:  i,
			WidthEMU:      w,
		})
	}
	return b
}

// textBlock builds a text-only paragraph block at pos.
func textBlock(pos int, text string) model.Block {
	return model.Block{
		Kind:     model.BlockKindParagraph,
		Position: pos,
		Text:     text,
	}
}
