package slug

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\w-]+`)

// Derive builds a URL-safe identifier from a title: lowercase, trim,
// spaces to hyphens, then strip everything that is not a word character
// or hyphen. A title of only punctuation derives to the empty string;
// callers must reject that as a validation failure.
//
// Derive is idempotent: Derive(Derive(s)) == Derive(s).
func Derive(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	return nonWord.ReplaceAllString(s, "")
}
