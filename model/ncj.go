package model

// ContentDoc is the normalized content JSON (NCJ) document: metadata,
// the linear output block list with figure groups interleaved in
// document order, the asset table, and the processing report.
type ContentDoc struct {
	Doc    DocMeta       `json:"doc"`
	Blocks []OutputBlock `json:"blocks"`
	Assets []Asset       `json:"assets"`
	Report Report        `json:"report"`
}

// DocMeta holds document-level metadata.
type DocMeta struct {
	// ID is a generated identifier for this conversion of the document
	ID string `json:"id"`

	// Title is the clean document title (date prefix removed), empty if
	// no document heading was detected
	Title string `json:"title,omitempty"`

	// Date is the ISO date parsed from the document heading (YYMMDD
	// prefix), empty if absent
	Date string `json:"date,omitempty"`

	// Locale is the document locale
	Locale string `json:"locale"`

	// Version is the NCJ schema version
	Version string `json:"version"`

	// SourceFile is the base name of the input file
	SourceFile string `json:"source_file,omitempty"`
}

// OutputBlock is one block of the NCJ output: a text paragraph or a
// single figure belonging to a group.
type OutputBlock struct {
	// Type is "paragraph" or "figure"
	Type string `json:"type"`

	// Text is the paragraph text (paragraph blocks only)
	Text string `json:"text,omitempty"`

	// Image references the figure's asset (figure blocks only)
	Image *ImageAsset `json:"image,omitempty"`

	// Title is set on the first figure of a group only
	Title string `json:"title,omitempty"`

	// Credit is set on the last figure of a group only
	Credit string `json:"credit,omitempty"`

	// GroupID, GroupSeq (1-based), and GroupLen describe the figure's
	// place within its group
	GroupID  string `json:"group_id,omitempty"`
	GroupSeq int    `json:"group_seq,omitempty"`
	GroupLen int    `json:"group_len,omitempty"`

	// Layout is the group layout (row or column)
	Layout Layout `json:"layout,omitempty"`
}

// ImageAsset is the asset reference carried by a figure block.
type ImageAsset struct {
	AssetID string `json:"asset_id"`
}

// Report carries non-fatal diagnostics alongside the output.
type Report struct {
	// Warnings are non-fatal issues encountered during conversion
	Warnings []string `json:"warnings"`

	// Debug holds the grouping reasoning log, populated only when debug
	// mode is enabled
	Debug []string `json:"debug"`
}
