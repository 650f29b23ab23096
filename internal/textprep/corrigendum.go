package textprep

import "strings"

// corrigendumKeywords flag amendment notices. Matched case-insensitively
// against the leading portion of the text.
var corrigendumKeywords = []string{
	"corrigendum",
	"amendment",
	"correction",
	"erratum",
	"modification",
	"revised",
	"addendum",
	"notice no",
}

const minCorrigendumLen = 20

// IsCorrigendum reports whether the text looks like an amendment or
// correction to a previously published notification rather than a fresh
// one. Short or empty text is never flagged.
func IsCorrigendum(text string) bool {
	if len(text) < minCorrigendumLen {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range corrigendumKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
