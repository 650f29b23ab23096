// Package textprep prepares raw scraped notification text for extraction:
// deterministic cleanup, token-budgeted chunking, and corrigendum detection.
package textprep

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reDecorative = regexp.MustCompile(`[=\-#*]{4,}`)
	reHSpace     = regexp.MustCompile(`[ \t]{2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reCurrency   = regexp.MustCompile(`(?:Rs\.|\bINR\b)\s*`)
	reDateSep    = regexp.MustCompile(`(\d{1,2})[.\-](\d{1,2})[.\-](\d{4})`)
)

// Normalize collapses noisy whitespace and OCR junk from a scraped
// notification. Conservative: keeps line breaks, collapses 3+ newlines into
// a single blank line. Idempotent, so re-normalizing stored text is safe.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := reCRLF.ReplaceAllString(raw, "\n")
	s = stripUnprintable(s)
	s = reDecorative.ReplaceAllString(s, "")
	s = reCurrency.ReplaceAllString(s, "₹")
	s = reDateSep.ReplaceAllString(s, "$1/$2/$3")
	s = reHSpace.ReplaceAllString(s, " ")
	// trim trailing whitespace per line first, so whitespace-only lines
	// count as blank when runs of newlines are collapsed
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	s = strings.Join(lines, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// stripUnprintable drops every rune outside the allow-list: newline, tab,
// printable ASCII, the Devanagari block (notifications are frequently
// bilingual), and the rupee sign produced by currency canonicalization.
func stripUnprintable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r >= 0x20 && r <= 0x7e:
			b.WriteRune(r)
		case r >= 0x0900 && r <= 0x097f:
			b.WriteRune(r)
		case r == '₹':
			b.WriteRune(r)
		}
	}
	return b.String()
}
