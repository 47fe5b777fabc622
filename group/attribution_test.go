package group

import (
	"strings"
	"testing"

	"github.com/jclermont/figura/model"
)

// groupFor runs grouping and attribution over blocks and returns the
// resulting groups.
func groupFor(t *testing.T, blocks []model.Block, docTitle string) []model.FigureGroup {
	t.Helper()

	res, err := NewGrouper().Group(blocks, 0)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	NewAssigner().Assign(res.Groups, blocks, docTitle)
	return res.Groups
}

func TestTitleFromPrecedingBlock(t *testing.T) {
	blocks := []model.Block{
		textBlock(0, "Production by region"),
		imageBlock(1, 0),
	}

	groups := groupFor(t, blocks, "")
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Title != "Production by region" {
		t.Errorf("title = %q, want %q", groups[0].Title, "Production by region")
	}
}

func TestTitlePrefersNearestBlock(t *testing.T) {
	// Both -1 and -2 hold candidates; the nearer one wins.
	blocks := []model.Block{
		textBlock(0, "Farther caption"),
		textBlock(1, "Nearer caption"),
		imageBlock(2, 0),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Title != "Nearer caption" {
		t.Errorf("title = %q, want %q", groups[0].Title, "Nearer caption")
	}
}

func TestTitleSkipsEmptyBlock(t *testing.T) {
	blocks := []model.Block{
		textBlock(0, "Caption behind a blank"),
		textBlock(1, ""),
		imageBlock(2, 0),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Title != "Caption behind a blank" {
		t.Errorf("title = %q, want %q", groups[0].Title, "Caption behind a blank")
	}
}

func TestTitleFallsForwardWhenNothingBefore(t *testing.T) {
	blocks := []model.Block{
		imageBlock(0, 0),
		textBlock(3, "Caption after"),
	}
	// Position 1 and 2 are absent; the backward scan finds nothing and
	// the forward scan reaches only position 1, so no title.
	groups := groupFor(t, blocks, "")
	if groups[0].Title != "" {
		t.Errorf("title = %q, want empty", groups[0].Title)
	}

	blocks = []model.Block{
		imageBlock(0, 0),
		textBlock(1, "Caption after"),
	}
	groups = groupFor(t, blocks, "")
	if groups[0].Title != "Caption after" {
		t.Errorf("title = %q, want %q", groups[0].Title, "Caption after")
	}
}

func TestTitleScanStopsAtImageBlock(t *testing.T) {
	// The candidate text at -2 is hidden behind another group's image
	// block at -1.
	blocks := []model.Block{
		textBlock(0, "Caption for the first figure"),
		imageBlock(1, 100, 100),
		imageBlock(2, 100, 100),
	}

	groups := groupFor(t, blocks, "")
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// First group sees the caption at -1.
	if groups[0].Title != "Caption for the first figure" {
		t.Errorf("first title = %q, want the caption", groups[0].Title)
	}
	// Second group's backward scan stops at the image block at -1.
	if groups[1].Title != "" {
		t.Errorf("second title = %q, want empty", groups[1].Title)
	}
}

func TestTitleExcludesDocumentTitle(t *testing.T) {
	docTitle := "240115 - Annual Review"
	blocks := []model.Block{
		textBlock(0, "Actual caption"),
		textBlock(1, docTitle),
		imageBlock(2, 0),
	}

	groups := groupFor(t, blocks, docTitle)
	if groups[0].Title != "Actual caption" {
		t.Errorf("title = %q, want %q", groups[0].Title, "Actual caption")
	}
}

func TestTitleRejectsLongText(t *testing.T) {
	long := strings.Repeat("word ", 20)
	blocks := []model.Block{
		textBlock(0, long),
		imageBlock(1, 0),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Title != "" {
		t.Errorf("title = %q, want empty for long text", groups[0].Title)
	}
}

func TestCreditLineNeverBecomesTitle(t *testing.T) {
	// A short credit line adjacent to the image is claimed as credit, not
	// title, even though it is the nearest text.
	blocks := []model.Block{
		textBlock(0, "Source: Agency"),
		imageBlock(1, 0),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Title != "" {
		t.Errorf("title = %q, want empty", groups[0].Title)
	}
	if groups[0].Credit != "Agency" {
		t.Errorf("credit = %q, want %q", groups[0].Credit, "Agency")
	}
}

func TestCreditFromFollowingBlock(t *testing.T) {
	blocks := []model.Block{
		imageBlock(0, 0),
		textBlock(1, "Source: Internal Survey 2024."),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Credit != "Internal Survey 2024" {
		t.Errorf("credit = %q, want %q", groups[0].Credit, "Internal Survey 2024")
	}
}

func TestCreditChinesePrefix(t *testing.T) {
	blocks := []model.Block{
		imageBlock(0, 0),
		textBlock(1, "来源：国家统计局。"),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Credit != "国家统计局" {
		t.Errorf("credit = %q, want %q", groups[0].Credit, "国家统计局")
	}
}

func TestCreditPrefersForwardScan(t *testing.T) {
	blocks := []model.Block{
		textBlock(0, "Source: Behind"),
		imageBlock(1, 0),
		textBlock(2, "plain text"),
		textBlock(3, "Source: Ahead"),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Credit != "Ahead" {
		t.Errorf("credit = %q, want %q", groups[0].Credit, "Ahead")
	}
}

func TestCreditFallsBackward(t *testing.T) {
	blocks := []model.Block{
		textBlock(0, "Source: Behind"),
		imageBlock(1, 0),
		textBlock(2, "plain text"),
		textBlock(3, "also plain"),
	}

	groups := groupFor(t, blocks, "")
	if groups[0].Credit != "Behind" {
		t.Errorf("credit = %q, want %q", groups[0].Credit, "Behind")
	}
}

func TestCreditScansFromLastMember(t *testing.T) {
	// For a multi-member group the credit search anchors on the last
	// member, so a credit beyond the first member's window is still found.
	blocks := []model.Block{
		imageBlock(0, 0),
		imageBlock(1, 0),
		imageBlock(2, 0),
		textBlock(3, "Source: End of group"),
	}

	groups := groupFor(t, blocks, "")
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Credit != "End of group" {
		t.Errorf("credit = %q, want %q", groups[0].Credit, "End of group")
	}
}

func TestAttributionIndependentPerGroup(t *testing.T) {
	// Two groups share no title or credit: each is attributed from its
	// own neighborhood.
	blocks := []model.Block{
		textBlock(0, "First caption"),
		imageBlock(1, 0),
		textBlock(2, "Source: First"),
		textBlock(3, strings.Repeat("separator ", 10)),
		textBlock(4, "Second caption"),
		imageBlock(5, 0),
		textBlock(6, "Source: Second"),
	}

	groups := groupFor(t, blocks, "")
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Title != "First caption" || groups[0].Credit != "First" {
		t.Errorf("first group = %q / %q", groups[0].Title, groups[0].Credit)
	}
	if groups[1].Title != "Second caption" || groups[1].Credit != "Second" {
		t.Errorf("second group = %q / %q", groups[1].Title, groups[1].Credit)
	}
}
