// Package group implements the figure grouping and attribution engine.
// It decides which embedded images belong together as a visual group,
// what layout (row or column) each group renders with, and which nearby
// text blocks serve as a group's title and credit line.
//
// Grouping runs in two phases over the ordered block sequence. Phase 1
// merges images that share a block into row groups. Phase 2 folds over
// the remaining singleton-image blocks and merges adjacent ones into
// column groups when the paragraph gap and intervening text volume stay
// within configured bounds. A separate attribution pass then assigns
// titles and credits without touching membership or layout.
//
// The whole engine is a deterministic pure function of the block
// sequence and configuration; every grouping decision is recorded in a
// run-scoped reasoning log.
package group
