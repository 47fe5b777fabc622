// Package docx provides DOCX (Office Open XML) document parsing for the
// figura converter: the ordered block walk over paragraphs and tables,
// embedded image discovery, and media asset resolution.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// defaultPageWidthEMU is used when the document carries no section
// properties. It corresponds to an A4 page.
const defaultPageWidthEMU = 7559675

// emuPerTwip converts twentieths of a point to English Metric Units.
const emuPerTwip = 635

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.ReadCloser
	zr        *zip.Reader
	document  *documentXML
	coreProps *corePropsXML
	imageRels map[string]string // rId -> media path
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr, zr: &zr.Reader}
	if err := r.parse(); err != nil {
		zr.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads a DOCX document from an io.ReaderAt. The caller keeps
// ownership of the underlying data.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zr: zr}
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases resources associated with the Reader. It is a no-op
// for readers created with NewReader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// parse validates the archive and parses the document parts.
func (r *Reader) parse() error {
	if err := r.validate(); err != nil {
		return err
	}
	if err := r.parseRelationships(); err != nil {
		return fmt.Errorf("parsing relationships: %w", err)
	}
	if err := r.parseDocument(); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	r.parseCoreProperties()
	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zr.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseRelationships builds the rId to media path map from the document
// relationships file. Only image relationships are kept.
func (r *Reader) parseRelationships() error {
	r.imageRels = make(map[string]string)

	data, err := r.getFileContent("word/_rels/document.xml.rels")
	if err != nil {
		// Relationships file is optional
		return nil
	}

	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return err
	}

	for _, rel := range rels.Relationships {
		if strings.HasSuffix(rel.Type, "/image") {
			r.imageRels[rel.ID] = rel.Target
		}
	}
	return nil
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	if r.document.Body == nil {
		return fmt.Errorf("document.xml has no body")
	}
	return nil
}

// parseCoreProperties reads docProps/core.xml. The part is optional and
// malformed metadata is ignored.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	props := &corePropsXML{}
	if err := xml.Unmarshal(data, props); err != nil {
		return
	}
	r.coreProps = props
}

// CoreProperties returns the document's Dublin Core title and creation
// date (ISO form), either possibly empty. Used as a metadata fallback
// when the document body carries no dated heading.
func (r *Reader) CoreProperties() (title, created string) {
	if r.coreProps == nil {
		return "", ""
	}
	return strings.TrimSpace(r.coreProps.Title), isoDate(r.coreProps.Created)
}

// isoDate extracts the YYYY-MM-DD prefix of a W3CDTF timestamp,
// returning "" when the value does not start with one.
func isoDate(s string) string {
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return ""
	}
	for i, c := range s[:10] {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return ""
		}
	}
	return s[:10]
}

// PageWidthEMU returns the page's usable width in EMUs, taken from the
// body's section properties, or an A4 default when absent.
func (r *Reader) PageWidthEMU() int64 {
	if r.document == nil || r.document.Body == nil || r.document.Body.SectPr == nil {
		return defaultPageWidthEMU
	}
	twips := parseInt64(r.document.Body.SectPr.PgSz.W)
	if twips <= 0 {
		return defaultPageWidthEMU
	}
	return twips * emuPerTwip
}

// Text extracts and returns all text content from the document.
func (r *Reader) Text() (string, error) {
	blocks, err := r.Blocks()
	if err != nil {
		return "", err
	}

	var result strings.Builder
	for i, b := range blocks {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(b.Text)
	}
	return result.String(), nil
}

// parseInt64 parses a decimal attribute value, returning 0 on failure.
func parseInt64(s string) int64 {
	var v int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		v = v*10 + int64(c-'0')
	}
	return v
}
