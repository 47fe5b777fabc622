// Package figura converts DOCX documents into a normalized content JSON
// (NCJ) representation with figure grouping: images that belong together
// are merged into row or column groups, and nearby text is attributed to
// each group as its title and credit line.
//
// Basic usage:
//
//	doc, warnings, err := figura.Open("report.docx").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", figura.FormatWarnings(warnings))
//	}
//
// With options:
//
//	data, _, err := figura.Open("report.docx").
//	    MaxGapParas(2).
//	    ExtractAssets("assets/media").
//	    Debug().
//	    JSON()
//
// For advanced use cases, the lower-level docx and group packages are
// also available.
package figura

import (
	"github.com/jclermont/figura/docx"
)

// Open opens a DOCX file and returns a Converter for fluent
// configuration. The returned Converter must be closed when done, either
// explicitly via Close() or implicitly when calling a terminal operation
// like Document().
//
// Example:
//
//	doc, warnings, err := figura.Open("report.docx").Document()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Converter from an already-opened docx.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
func FromReader(r *docx.Reader) *Converter {
	return &Converter{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	doc := figura.MustConvert(figura.Open("report.docx").Document())
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
