package figura

import "strings"

// Warning describes a non-fatal issue encountered during conversion.
// Warnings never interrupt processing; they are surfaced alongside the
// result of terminal operations.
type Warning struct {
	// Stage identifies where the issue arose: "assets" or "group"
	Stage string

	// Message is the human-readable description
	Message string
}

// String returns the warning as "stage: message".
func (w Warning) String() string {
	return w.Stage + ": " + w.Message
}

// FormatWarnings joins warnings into a single semicolon-separated
// string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
