package textprep

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkUnderBudgetReturnsInputUnchanged(t *testing.T) {
	text := "Short notification that fits in one chunk."
	chunks := Chunk(text, 100, 20)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Fatalf("chunk differs from input: %q", chunks[0])
	}
}

func TestChunkOverBudgetBoundsAndOrder(t *testing.T) {
	// ~50k chars with regular paragraph breaks
	para := strings.Repeat("Vacancy details for the advertised post. ", 12) + "\n\n"
	text := strings.Repeat(para, 100)

	maxTokens, overlap := 2000, 500
	maxChars := maxTokens * CharsPerToken
	chunks := Chunk(text, maxTokens, overlap)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks for %d chars, got %d", len(text), len(chunks))
	}
	for i, c := range chunks {
		if len(c) > maxChars+overlap {
			t.Errorf("chunk %d length %d exceeds budget %d", i, len(c), maxChars+overlap)
		}
	}
	// chunks appear in source order and jointly cover the text
	offset := 0
	for i, c := range chunks {
		idx := strings.Index(text[offset:], c[:80])
		if idx < 0 {
			t.Fatalf("chunk %d not found in source order", i)
		}
		offset += idx
	}
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Errorf("last chunk does not reach end of text")
	}
}

func TestChunkPrefersParagraphBreak(t *testing.T) {
	// paragraph break sits past the midpoint of the first slice
	first := strings.Repeat("a", 300) + "\n\n" + strings.Repeat("b", 300)
	chunks := Chunk(first, 100, 50) // 400-char budget
	if len(chunks) < 2 {
		t.Fatalf("expected split, got %d chunks", len(chunks))
	}
	if !strings.HasSuffix(chunks[0], "a") {
		t.Errorf("expected first chunk to end at the paragraph break, got suffix %q", chunks[0][len(chunks[0])-5:])
	}
	if len(chunks[0]) != 300 {
		t.Errorf("expected first chunk to stop at the break (300 chars), got %d", len(chunks[0]))
	}
}

func TestChunkNeverSplitsRunes(t *testing.T) {
	// Devanagari runes are 3 bytes; the 50-byte overlap steps later chunk
	// offsets onto mid-rune positions unless cuts get boundary-corrected.
	text := strings.Repeat("भर्ती ", 200) // 16 bytes per repeat
	chunks := Chunk(text, 100, 50)
	if len(chunks) < 2 {
		t.Fatalf("expected split, got %d chunks", len(chunks))
	}
	for i, c := range chunks {
		if !utf8.ValidString(c) {
			t.Errorf("chunk %d is not valid UTF-8: %q", i, c[:12])
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"under limit", "abc", 10, "abc"},
		{"exact limit", "abcd", 4, "abcd"},
		{"ascii cut", "abcdef", 4, "abcd"},
		{"backs up to rune boundary", "abभ", 3, "ab"},
		{"multibyte kept when whole", "abभ", 5, "abभ"},
		{"zero", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestChunkOverlap(t *testing.T) {
	text := strings.Repeat("x", 1000)
	chunks := Chunk(text, 100, 50) // 400-char budget, no paragraph breaks
	if len(chunks) < 2 {
		t.Fatalf("expected split, got %d chunks", len(chunks))
	}
	// every later chunk starts 50 chars before the previous end
	if len(chunks[0]) != 400 {
		t.Fatalf("unexpected first chunk length %d", len(chunks[0]))
	}
}
