package docx

import (
	"strings"

	"github.com/jclermont/figura/model"
)

// Blocks walks the document body in order and returns one model.Block
// per paragraph and per table, with dense positions starting at 0.
// Embedded images carry their relationship ID, resolved media path, and
// EMU dimensions; asset IDs are attached later by ResolveAssets.
func (r *Reader) Blocks() ([]model.Block, error) {
	if r.document == nil || r.document.Body == nil {
		return nil, nil
	}

	blocks := make([]model.Block, 0, len(r.document.Body.Elements))
	for pos, el := range r.document.Body.Elements {
		switch {
		case el.Paragraph != nil:
			blocks = append(blocks, r.paragraphBlock(pos, el.Paragraph))
		case el.Table != nil:
			blocks = append(blocks, r.tableBlock(pos, el.Table))
		}
	}
	return blocks, nil
}

// paragraphBlock converts one paragraph into a block.
func (r *Reader) paragraphBlock(pos int, p *paragraphXML) model.Block {
	b := model.Block{
		Kind:      model.BlockKindParagraph,
		Position:  pos,
		IsHeading: isHeadingStyle(p.Properties.Style.Val),
	}

	var text strings.Builder
	runs := p.Runs
	for _, link := range p.Hyperlinks {
		runs = append(runs, link.Runs...)
	}
	for _, run := range runs {
		text.WriteString(runText(run))
		for _, d := range run.Drawings {
			if img, ok := r.imageFromDrawing(pos, len(b.Images), d); ok {
				b.Images = append(b.Images, img)
			}
		}
	}

	b.Text = strings.TrimSpace(text.String())
	return b
}

// tableBlock converts one table into a single block: the joined text of
// all cells, plus any images found anywhere inside the table, in
// row-major order. The grouping engine sees the whole table as one
// position on the document axis.
func (r *Reader) tableBlock(pos int, t *tableXML) model.Block {
	b := model.Block{
		Kind:     model.BlockKindTable,
		Position: pos,
	}

	var cellTexts []string
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, p := range cell.Paragraphs {
				var text strings.Builder
				for _, run := range p.Runs {
					text.WriteString(runText(run))
					for _, d := range run.Drawings {
						if img, ok := r.imageFromDrawing(pos, len(b.Images), d); ok {
							b.Images = append(b.Images, img)
						}
					}
				}
				if s := strings.TrimSpace(text.String()); s != "" {
					cellTexts = append(cellTexts, s)
				}
			}
		}
	}

	b.Text = strings.Join(cellTexts, " ")
	return b
}

// imageFromDrawing extracts an image reference from a drawing element.
// Inline and anchored images are treated alike.
func (r *Reader) imageFromDrawing(pos, index int, d drawingXML) (model.ImageRef, bool) {
	var extent extentXML
	var docPr docPrXML
	var blip *blipXML

	switch {
	case d.Inline != nil:
		extent, docPr, blip = d.Inline.Extent, d.Inline.DocPr, d.Inline.Blip
	case d.Anchor != nil:
		extent, docPr, blip = d.Anchor.Extent, d.Anchor.DocPr, d.Anchor.Blip
	default:
		return model.ImageRef{}, false
	}

	img := model.ImageRef{
		BlockPosition: pos,
		IndexInBlock:  index,
		WidthEMU:      parseInt64(extent.CX),
		HeightEMU:     parseInt64(extent.CY),
		AltText:       docPr.Descr,
	}
	if blip != nil {
		img.RelID = blip.Embed
		img.MediaPath = r.imageRels[blip.Embed]
	}
	return img, true
}

// runText extracts the visible text of a run.
func runText(run runXML) string {
	var parts []string
	for _, t := range run.Text {
		parts = append(parts, t.Value)
	}
	for range run.Tabs {
		parts = append(parts, "\t")
	}
	for range run.Breaks {
		parts = append(parts, "\n")
	}
	return strings.Join(parts, "")
}

// isHeadingStyle determines if a style ID represents a heading or the
// document title.
func isHeadingStyle(styleID string) bool {
	id := strings.ToLower(styleID)
	if id == "title" || id == "subtitle" {
		return true
	}
	return strings.HasPrefix(id, "heading")
}
