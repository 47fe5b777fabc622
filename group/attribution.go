package group

import (
	"strings"

	"github.com/jclermont/figura/model"
)

// titleSearchBack is how many blocks before a group's first member the
// title search may look. Forward it looks one block only, and each
// directional scan stops at the first block that carries its own images
// (such a block already belongs to another group).
const titleSearchBack = 2

// creditSearchSpan is how many blocks on each side of a group's last
// member the credit search may look.
const creditSearchSpan = 2

// Assigner populates the Title and Credit fields of finalized figure
// groups by scanning nearby text blocks. It never touches group
// membership or layout.
type Assigner struct {
	config Config
}

// NewAssigner creates an assigner with default configuration.
func NewAssigner() *Assigner {
	return &Assigner{config: DefaultConfig()}
}

// NewAssignerWithConfig creates an assigner with custom configuration.
func NewAssignerWithConfig(config Config) *Assigner {
	return &Assigner{config: config}
}

// Assign searches for a title and a credit for every group
// independently. docTitle is the full text of the document's own title
// block, never eligible as a figure title; pass "" when the document has
// no detected title. Missing candidates are not errors: the field is
// simply left empty.
func (a *Assigner) Assign(groups []model.FigureGroup, blocks []model.Block, docTitle string) {
	byPos := make(map[int]*model.Block, len(blocks))
	for i := range blocks {
		byPos[blocks[i].Position] = &blocks[i]
	}

	for i := range groups {
		groups[i].Title = a.findTitle(&groups[i], byPos, docTitle)
		groups[i].Credit = a.findCredit(&groups[i], byPos)
	}
}

// findTitle scans backward then forward from the group's first member
// for the nearest short, non-credit text block.
func (a *Assigner) findTitle(g *model.FigureGroup, byPos map[int]*model.Block, docTitle string) string {
	first := g.First().BlockPosition

	if text, ok := a.scanForTitle(byPos, first, -1, titleSearchBack, docTitle); ok {
		return text
	}
	if text, ok := a.scanForTitle(byPos, first, 1, 1, docTitle); ok {
		return text
	}
	return ""
}

// scanForTitle walks up to span blocks in direction dir (+1 or -1) from
// origin, returning the first title candidate. The scan stops at blocks
// that carry images of their own.
func (a *Assigner) scanForTitle(byPos map[int]*model.Block, origin, dir, span int, docTitle string) (string, bool) {
	for step := 1; step <= span; step++ {
		b, ok := byPos[origin+dir*step]
		if !ok {
			return "", false
		}
		if len(b.Images) > 0 {
			return "", false
		}
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		if docTitle != "" && text == docTitle {
			continue
		}
		if isTitleCandidate(b.Text, a.config.MaxTitleLen) {
			return text, true
		}
	}
	return "", false
}

// findCredit scans forward then backward from the group's last member
// for the nearest credit line and returns its text with the source
// prefix stripped.
func (a *Assigner) findCredit(g *model.FigureGroup, byPos map[int]*model.Block) string {
	last := g.Last().BlockPosition

	if text, ok := a.scanForCredit(byPos, last, 1); ok {
		return text
	}
	if text, ok := a.scanForCredit(byPos, last, -1); ok {
		return text
	}
	return ""
}

// scanForCredit walks up to creditSearchSpan blocks in direction dir
// from origin, stopping at blocks with their own images.
func (a *Assigner) scanForCredit(byPos map[int]*model.Block, origin, dir int) (string, bool) {
	for step := 1; step <= creditSearchSpan; step++ {
		b, ok := byPos[origin+dir*step]
		if !ok {
			return "", false
		}
		if len(b.Images) > 0 {
			return "", false
		}
		if rest, ok := CreditRemainder(b.Text); ok {
			return rest, true
		}
	}
	return "", false
}
