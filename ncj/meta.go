// Package ncj assembles the normalized content JSON document: figure
// groups interleaved back into the original block order, document
// metadata, the asset table, and the processing report.
package ncj

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jclermont/figura/model"
)

// docTitleRE matches a document heading of the form "YYMMDD - Title".
var docTitleRE = regexp.MustCompile(`^\s*(\d{6})\s*-\s*(.+)`)

// Meta is the document-level metadata detected from the block sequence.
type Meta struct {
	// FullTitle is the raw text of the document's title block, used to
	// exclude it from figure title attribution and from the output
	FullTitle string

	// TitlePos is the position of the title block, -1 when absent
	TitlePos int

	// Title is the clean title with the date prefix removed
	Title string

	// Date is the ISO date parsed from the YYMMDD prefix
	Date string
}

// DetectMeta inspects the first non-empty text block for a document
// heading. Documents without one yield a zero Meta with TitlePos -1.
func DetectMeta(blocks []model.Block) Meta {
	meta := Meta{TitlePos: -1}

	for _, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		m := docTitleRE.FindStringSubmatch(text)
		if m == nil {
			return meta
		}
		meta.FullTitle = text
		meta.TitlePos = b.Position
		meta.Title = strings.TrimSpace(m[2])
		meta.Date = parseDateYYMMDD(m[1])
		return meta
	}
	return meta
}

// parseDateYYMMDD converts a six-digit date prefix to ISO form,
// assuming the 2000s. Implausible month or day values yield "".
func parseDateYYMMDD(s string) string {
	if len(s) != 6 {
		return ""
	}
	yy, err1 := strconv.Atoi(s[0:2])
	mm, err2 := strconv.Atoi(s[2:4])
	dd, err3 := strconv.Atoi(s[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", 2000+yy, mm, dd)
}
