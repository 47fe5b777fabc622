package docx

import (
	"testing"

	"github.com/jclermont/figura/model"
)

func TestBlocksDensePositions(t *testing.T) {
	path := createTestDOCX(t, docxFixture{
		body: `<w:p><w:r><w:t>first</w:t></w:r></w:p>` +
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
			`<w:p><w:r><w:t>last</w:t></w:r></w:p>`,
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	for i, b := range blocks {
		if b.Position != i {
			t.Errorf("block %d has position %d", i, b.Position)
		}
	}
	if blocks[0].Kind != model.BlockKindParagraph || blocks[0].Text != "first" {
		t.Errorf("block 0 = %v %q", blocks[0].Kind, blocks[0].Text)
	}
	if blocks[1].Kind != model.BlockKindTable {
		t.Errorf("block 1 kind = %v, want table", blocks[1].Kind)
	}
	if blocks[2].Text != "last" {
		t.Errorf("block 2 text = %q, want last", blocks[2].Text)
	}
}

func TestBlocksPreserveParagraphTableOrder(t *testing.T) {
	// Interleaved paragraphs and tables must keep document order, which
	// is exactly what a plain struct mapping of the body would lose.
	path := createTestDOCX(t, docxFixture{
		body: `<w:tbl><w:tr><w:tc><w:p><w:r><w:t>t1</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
			`<w:p><w:r><w:t>p1</w:t></w:r></w:p>` +
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>t2</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`,
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}

	wantKinds := []model.BlockKind{model.BlockKindTable, model.BlockKindParagraph, model.BlockKindTable}
	wantTexts := []string{"t1", "p1", "t2"}
	if len(blocks) != len(wantKinds) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantKinds))
	}
	for i := range blocks {
		if blocks[i].Kind != wantKinds[i] || blocks[i].Text != wantTexts[i] {
			t.Errorf("block %d = %v %q, want %v %q", i, blocks[i].Kind, blocks[i].Text, wantKinds[i], wantTexts[i])
		}
	}
}

func TestBlocksTableIsOneBlock(t *testing.T) {
	path := createTestDOCX(t, docxFixture{
		body: `<w:tbl>` +
			`<w:tr><w:tc><w:p><w:r><w:t>a</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>b</w:t></w:r></w:p></w:tc></w:tr>` +
			`<w:tr><w:tc><w:p><w:r><w:t>c</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>d</w:t></w:r></w:p></w:tc></w:tr>` +
			`</w:tbl>`,
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 for the whole table", len(blocks))
	}
	if blocks[0].Text != "a b c d" {
		t.Errorf("table text = %q, want %q", blocks[0].Text, "a b c d")
	}
}

func TestBlocksImageExtraction(t *testing.T) {
	path := createTestDOCX(t, docxFixture{
		body: imageParagraph("rId10", "914400", "457200"),
		rels: pngRel,
		media: map[string][]byte{
			"word/media/image1.png": tinyPNG,
		},
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks) != 1 || len(blocks[0].Images) != 1 {
		t.Fatalf("expected one block with one image, got %+v", blocks)
	}

	img := blocks[0].Images[0]
	if img.RelID != "rId10" {
		t.Errorf("RelID = %q, want rId10", img.RelID)
	}
	if img.MediaPath != "media/image1.png" {
		t.Errorf("MediaPath = %q, want media/image1.png", img.MediaPath)
	}
	if img.WidthEMU != 914400 || img.HeightEMU != 457200 {
		t.Errorf("dimensions = %dx%d, want 914400x457200", img.WidthEMU, img.HeightEMU)
	}
	if img.AltText != "chart" {
		t.Errorf("AltText = %q, want chart", img.AltText)
	}
	if img.BlockPosition != 0 || img.IndexInBlock != 0 {
		t.Errorf("indices = %d/%d, want 0/0", img.BlockPosition, img.IndexInBlock)
	}
}

func TestBlocksMultipleImagesInParagraph(t *testing.T) {
	twoImages := `<w:p><w:r>` +
		`<w:drawing><wp:inline><wp:extent cx="100" cy="100"/><wp:docPr id="1" name="a"/>` +
		`<a:graphic><a:graphicData><pic:pic><pic:blipFill><a:blip r:embed="rId10"/></pic:blipFill></pic:pic></a:graphicData></a:graphic>` +
		`</wp:inline></w:drawing>` +
		`<w:drawing><wp:inline><wp:extent cx="200" cy="200"/><wp:docPr id="2" name="b"/>` +
		`<a:graphic><a:graphicData><pic:pic><pic:blipFill><a:blip r:embed="rId10"/></pic:blipFill></pic:pic></a:graphicData></a:graphic>` +
		`</wp:inline></w:drawing>` +
		`</w:r></w:p>`

	path := createTestDOCX(t, docxFixture{
		body: twoImages,
		rels: pngRel,
		media: map[string][]byte{
			"word/media/image1.png": tinyPNG,
		},
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks[0].Images) != 2 {
		t.Fatalf("got %d images, want 2", len(blocks[0].Images))
	}
	if blocks[0].Images[0].IndexInBlock != 0 || blocks[0].Images[1].IndexInBlock != 1 {
		t.Errorf("IndexInBlock sequence wrong: %+v", blocks[0].Images)
	}
	if blocks[0].Images[1].WidthEMU != 200 {
		t.Errorf("second image width = %d, want 200", blocks[0].Images[1].WidthEMU)
	}
}

func TestBlocksAnchoredImage(t *testing.T) {
	anchored := `<w:p><w:r><w:drawing><wp:anchor>` +
		`<wp:extent cx="300" cy="300"/><wp:docPr id="1" name="float"/>` +
		`<a:graphic><a:graphicData><pic:pic><pic:blipFill><a:blip r:embed="rId10"/></pic:blipFill></pic:pic></a:graphicData></a:graphic>` +
		`</wp:anchor></w:drawing></w:r></w:p>`

	path := createTestDOCX(t, docxFixture{
		body: anchored,
		rels: pngRel,
		media: map[string][]byte{
			"word/media/image1.png": tinyPNG,
		},
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks[0].Images) != 1 {
		t.Fatalf("anchored image not extracted")
	}
	if blocks[0].Images[0].WidthEMU != 300 {
		t.Errorf("width = %d, want 300", blocks[0].Images[0].WidthEMU)
	}
}

func TestBlocksImageInsideTable(t *testing.T) {
	path := createTestDOCX(t, docxFixture{
		body: `<w:tbl><w:tr><w:tc>` + imageParagraph("rId10", "500", "500") + `</w:tc></w:tr></w:tbl>`,
		rels: pngRel,
		media: map[string][]byte{
			"word/media/image1.png": tinyPNG,
		},
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Kind != model.BlockKindTable {
		t.Fatalf("expected one table block, got %+v", blocks)
	}
	if len(blocks[0].Images) != 1 {
		t.Fatalf("image inside table cell not extracted")
	}
	if blocks[0].Images[0].BlockPosition != 0 {
		t.Errorf("image BlockPosition = %d, want 0", blocks[0].Images[0].BlockPosition)
	}
}

func TestBlocksHyperlinkText(t *testing.T) {
	path := createTestDOCX(t, docxFixture{
		body: `<w:p><w:r><w:t>see </w:t></w:r><w:hyperlink r:id="rId5"><w:r><w:t>the site</w:t></w:r></w:hyperlink></w:p>`,
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if blocks[0].Text != "see the site" {
		t.Errorf("text = %q, want %q", blocks[0].Text, "see the site")
	}
}

func TestBlocksHeadingDetection(t *testing.T) {
	path := createTestDOCX(t, docxFixture{
		body: `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Section</w:t></w:r></w:p>` +
			`<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Doc Title</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t>Body text</w:t></w:r></w:p>`,
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if !blocks[0].IsHeading || !blocks[1].IsHeading {
		t.Error("heading styles not detected")
	}
	if blocks[2].IsHeading {
		t.Error("plain paragraph marked as heading")
	}
}

func TestBlocksUnresolvedRelationship(t *testing.T) {
	// The drawing references a relationship that does not exist; the
	// image is still reported, with an empty media path.
	path := createTestDOCX(t, docxFixture{
		body: imageParagraph("rId99", "100", "100"),
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	blocks, err := r.Blocks()
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks[0].Images) != 1 {
		t.Fatalf("image with broken relationship dropped")
	}
	if blocks[0].Images[0].MediaPath != "" {
		t.Errorf("MediaPath = %q, want empty", blocks[0].Images[0].MediaPath)
	}
}
