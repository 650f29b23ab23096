package textprep

import (
	"strings"
	"unicode/utf8"
)

// CharsPerToken is the fixed character budget assumed per completion token.
// Notification text is dense ASCII/Devanagari prose, so 4 is a safe bound.
const CharsPerToken = 4

// Chunk splits normalized text into ordered, overlapping segments that each
// fit the completion service's input budget. Text within budget is returned
// unchanged as a single chunk. When slicing, a paragraph break past the
// midpoint of the slice is preferred over a hard cut so that logical
// sections (vacancy tables, fee tables) stay intact. Each chunk after the
// first starts overlapChars before the previous chunk's end, so a field
// straddling a boundary is fully visible to at least one chunk. Cuts never
// land inside a multi-byte rune.
func Chunk(text string, maxTokens, overlapChars int) []string {
	maxChars := maxTokens * CharsPerToken
	if maxChars <= 0 || len(text) <= maxChars {
		return []string{text}
	}
	if overlapChars < 0 || overlapChars >= maxChars {
		overlapChars = 0
	}

	var chunks []string
	offset := 0
	for {
		end := offset + maxChars
		if end >= len(text) {
			chunks = append(chunks, text[offset:])
			return chunks
		}
		end = runeStart(text, end)
		if end <= offset {
			end = offset + maxChars
		}
		slice := text[offset:end]
		if i := strings.LastIndex(slice, "\n\n"); i > len(slice)/2 {
			end = offset + i
		}
		chunks = append(chunks, text[offset:end])

		next := runeStart(text, end-overlapChars)
		if next <= offset {
			next = end
		}
		offset = next
	}
}

// Truncate cuts s to at most max bytes without splitting a rune.
func Truncate(s string, max int) string {
	if max < 0 || len(s) <= max {
		return s
	}
	return s[:runeStart(s, max)]
}

// runeStart backs i up to the start of the rune containing s[i].
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
