package ncj

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jclermont/figura/group"
	"github.com/jclermont/figura/model"
)

// Input carries everything the assembler needs for one conversion.
type Input struct {
	// Blocks is the full ordered block sequence
	Blocks []model.Block

	// Groups are the finalized figure groups with titles and credits
	Groups []model.FigureGroup

	// Reasoning is the grouping decision log
	Reasoning []model.ReasoningEntry

	// Assets is the resolved asset table
	Assets []model.Asset

	// Warnings are the anomalies accumulated during conversion
	Warnings []string

	// Meta is the detected document metadata
	Meta Meta

	// SourceFile is the base name of the input file
	SourceFile string

	// Debug includes the reasoning log in the report
	Debug bool
}

// Assemble interleaves figure groups back into the original block order
// and builds the complete NCJ document. Non-image blocks pass through as
// text blocks; blocks whose text became a group's title or credit are
// suppressed, as is the document's own title block.
func Assemble(in Input) *model.ContentDoc {
	doc := &model.ContentDoc{
		Doc: model.DocMeta{
			ID:         uuid.New().String(),
			Title:      in.Meta.Title,
			Date:       in.Meta.Date,
			Locale:     "zh-CN",
			Version:    "v1",
			SourceFile: in.SourceFile,
		},
		Blocks: []model.OutputBlock{},
		Assets: in.Assets,
		Report: model.Report{
			Warnings: []string{},
			Debug:    []string{},
		},
	}
	if doc.Assets == nil {
		doc.Assets = []model.Asset{}
	}
	doc.Report.Warnings = append(doc.Report.Warnings, in.Warnings...)

	consumed := consumedPositions(in.Blocks, in.Groups)
	byFirst := make(map[int]*model.FigureGroup, len(in.Groups))
	for i := range in.Groups {
		byFirst[in.Groups[i].First().BlockPosition] = &in.Groups[i]
	}

	figureIndex := 0
	for i := range in.Blocks {
		b := &in.Blocks[i]

		if in.Meta.TitlePos >= 0 && b.Position == in.Meta.TitlePos {
			continue
		}

		if g, ok := byFirst[b.Position]; ok {
			appendGroup(doc, g, &figureIndex)
			continue
		}

		if b.Text != "" && !consumed[b.Position] {
			doc.Blocks = append(doc.Blocks, model.OutputBlock{
				Type: "paragraph",
				Text: b.Text,
			})
		}
	}

	if in.Debug {
		for _, e := range in.Reasoning {
			doc.Report.Debug = append(doc.Report.Debug, fmt.Sprintf("%s: %s", e.GroupID, e.Message))
		}
	}

	return doc
}

// appendGroup emits one figure block per group member, title on the
// first and credit on the last. Unresolved images get a stable
// placeholder asset ID.
func appendGroup(doc *model.ContentDoc, g *model.FigureGroup, figureIndex *int) {
	n := len(g.Members)
	for seq, m := range g.Members {
		assetID := m.AssetID
		if assetID == "" {
			assetID = fmt.Sprintf("img_missing_%03d", *figureIndex)
		}

		out := model.OutputBlock{
			Type:     "figure",
			Image:    &model.ImageAsset{AssetID: assetID},
			GroupID:  g.ID,
			GroupSeq: seq + 1,
			GroupLen: n,
			Layout:   g.Layout,
		}
		if seq == 0 {
			out.Title = g.Title
		}
		if seq == n-1 {
			out.Credit = g.Credit
		}

		doc.Blocks = append(doc.Blocks, out)
		*figureIndex++
	}
}

// consumedPositions marks the block positions that must not reappear as
// text blocks: every member's owning block, plus the first block whose
// text was claimed as each group's title or credit.
func consumedPositions(blocks []model.Block, groups []model.FigureGroup) map[int]bool {
	consumed := make(map[int]bool)

	for gi := range groups {
		g := &groups[gi]
		for _, m := range g.Members {
			consumed[m.BlockPosition] = true
		}

		if g.Title != "" {
			for i := range blocks {
				if strings.TrimSpace(blocks[i].Text) == g.Title {
					consumed[blocks[i].Position] = true
					break
				}
			}
		}

		if g.Credit != "" {
			for i := range blocks {
				if rest, ok := group.CreditRemainder(blocks[i].Text); ok && rest == g.Credit {
					consumed[blocks[i].Position] = true
					break
				}
			}
		}
	}

	return consumed
}
