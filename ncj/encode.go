package ncj

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/jclermont/figura/model"
)

// Encode writes the document as indented JSON. HTML escaping is
// disabled so CJK text and URLs stay readable.
func Encode(w io.Writer, doc *model.ContentDoc) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Marshal returns the document as indented JSON bytes.
func Marshal(doc *model.ContentDoc) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
