// Package model defines the shared data model for the figura library:
// the linear block representation of a parsed document, image references,
// figure groups produced by the grouping engine, and the normalized
// content JSON (NCJ) output structures.
package model
