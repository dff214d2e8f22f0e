package deptscrape

import (
	"regexp"
	"strings"
)

// Invisible characters that survive HTML text extraction and corrupt
// downstream comparisons. Zero-width spaces in particular show up all
// over hand-authored CMS content.
var invisibleReplacer = strings.NewReplacer(
	"\u200b", "", // zero-width space
	"\u200c", "", // zero-width non-joiner
	"\u200d", "", // zero-width joiner
	"\ufeff", "", // byte order mark
	"\u00a0", " ", // non-breaking space
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize cleans raw extracted text: strips zero-width and other
// invisible characters, collapses whitespace runs (including newlines
// and tabs) to single spaces, and trims leading/trailing whitespace.
// It is total over all string inputs; the empty string maps to itself.
func Normalize(raw string) string {
	s := invisibleReplacer.Replace(raw)
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// WordCount returns the number of whitespace-separated tokens in s.
// It is zero exactly when the normalized text is empty.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

var unsafeFilenameRE = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename converts a page title to a safe filename component.
// Unsafe characters are dropped, spaces become underscores, and the
// result is capped at 100 characters. An empty title yields "page".
func SanitizeFilename(title string) string {
	s := unsafeFilenameRE.ReplaceAllString(title, "")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.Trim(s, ". ")
	if s == "" {
		return "page"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

var (
	slugStripRE    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRE = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts a title to a URL-safe slug capped at maxLen runes.
// Returns an empty string if nothing usable remains; callers decide on
// a fallback slug.
func Slugify(s string, maxLen int) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStripRE.ReplaceAllString(s, "")
	s = slugCollapseRE.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if maxLen > 0 && len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	return s
}
