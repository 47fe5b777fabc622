package group

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// creditRE matches a credit/source line: a 来源 or Source prefix followed
// by a half- or full-width colon. Matching is case-insensitive.
var creditRE = regexp.MustCompile(`(?i)^\s*(来源|source)\s*[:：]\s*`)

// textLength returns the character count of s. Text is NFC-normalized
// first so decomposed accent sequences count as single characters.
func textLength(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// IsCreditLine reports whether text is a credit/source line.
func IsCreditLine(text string) bool {
	return creditRE.MatchString(text)
}

// CreditRemainder strips the credit prefix from text and normalizes the
// remainder: surrounding whitespace and trailing punctuation removed.
// The second return value is false when text is not a credit line.
func CreditRemainder(text string) (string, bool) {
	loc := creditRE.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := strings.TrimSpace(text[loc[1]:])
	rest = strings.TrimRight(rest, ".,;，。；")
	return rest, true
}

// isTitleCandidate reports whether text can serve as a figure title:
// non-empty, within maxLen characters, and not a credit line. Credit
// lines are never titles, even when short enough.
func isTitleCandidate(text string, maxLen int) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if textLength(trimmed) > maxLen {
		return false
	}
	return !IsCreditLine(text)
}
