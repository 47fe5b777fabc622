package model

// BlockKind represents the kind of a content block.
type BlockKind int

const (
	BlockKindUnknown BlockKind = iota
	BlockKindParagraph
	BlockKindTable
	BlockKindOther
)

func (bk BlockKind) String() string {
	switch bk {
	case BlockKindParagraph:
		return "paragraph"
	case BlockKindTable:
		return "table"
	case BlockKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Block is one linear unit of document content: a paragraph or a table,
// in document order. Blocks are created once by the parser and never
// mutated by the grouping engine.
type Block struct {
	// Kind is the block kind (paragraph, table, other)
	Kind BlockKind

	// Position is the block's index in the document body, monotonically
	// increasing and dense (0, 1, 2, ...)
	Position int

	// Text is the block's visible text, possibly empty. For tables this
	// is the joined text of all cells.
	Text string

	// Images are the embedded images found inside this block, in
	// occurrence order
	Images []ImageRef

	// IsHeading indicates the block uses a heading or title style
	IsHeading bool
}

// ImageRef is a reference to one embedded image occurrence.
type ImageRef struct {
	// AssetID is the stable content-derived identifier, assigned during
	// asset resolution. Empty until resolved.
	AssetID string

	// BlockPosition is the position of the owning block
	BlockPosition int

	// IndexInBlock is the 0-based index when multiple images share one block
	IndexInBlock int

	// WidthEMU and HeightEMU are the rendered dimensions in English
	// Metric Units (914400 EMU per inch). Zero when unknown.
	WidthEMU  int64
	HeightEMU int64

	// RelID is the OOXML relationship ID (r:embed) of the image
	RelID string

	// MediaPath is the media part path inside the archive (e.g.
	// "media/image1.png"). Empty when the relationship could not be
	// resolved.
	MediaPath string

	// AltText is the image description from the drawing properties
	AltText string

	// Unresolved is set by the grouping engine when no asset could be
	// attached to this reference. The image is still grouped.
	Unresolved bool
}

// Asset describes one extracted media file.
type Asset struct {
	// AssetID is the content-hash derived identifier (img_ prefix plus
	// the first 12 hex digits of the SHA-256)
	AssetID string `json:"asset_id"`

	// Filename is the extracted file path relative to the assets
	// directory parent
	Filename string `json:"filename"`

	// SHA256 is the full content hash in hex
	SHA256 string `json:"sha256"`
}
