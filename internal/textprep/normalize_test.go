package textprep

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t  \n ",
			want:  "",
		},
		{
			name:  "collapses excess newlines to one blank line",
			input: "Recruitment Notice\n\n\n\n\nApply online",
			want:  "Recruitment Notice\n\nApply online",
		},
		{
			name:  "whitespace-only lines count as blank when collapsing",
			input: "a\n \n \n \nb",
			want:  "a\n\nb",
		},
		{
			name:  "tab-only lines count as blank when collapsing",
			input: "a\n\t\n\t\n\t\nb",
			want:  "a\n\nb",
		},
		{
			name:  "strips decorative rules",
			input: "Title\n==========\nBody\n*****",
			want:  "Title\n\nBody",
		},
		{
			name:  "keeps short decoration",
			input: "pre-matric scholarship ***",
			want:  "pre-matric scholarship ***",
		},
		{
			name:  "collapses horizontal whitespace but keeps newlines",
			input: "Post    Name\t\tClerk\nGrade   II",
			want:  "Post Name Clerk\nGrade II",
		},
		{
			name:  "canonicalizes currency markers",
			input: "Fee: Rs. 500 or INR 250",
			want:  "Fee: \u20b9500 or \u20b9250",
		},
		{
			name:  "canonicalizes date separators",
			input: "Last date 15-08-2025 or 20.09.2025",
			want:  "Last date 15/08/2025 or 20/09/2025",
		},
		{
			name:  "drops control bytes and keeps devanagari",
			input: "Clerk \u0000\u0007\u092d\u0930\u094d\u0924\u0940 notice",
			want:  "Clerk \u092d\u0930\u094d\u0924\u0940 notice",
		},
		{
			name:  "normalizes CRLF",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Title\n=====\n\n\n\nFee Rs. 100   paid by 01-02-2025\r\n\tdone",
		"\u0928\u094c\u0915\u0930\u0940 \u0905\u0927\u093f\u0938\u0942\u091a\u0928\u093e INR 500",
		"a\n \n \n \nb",
		"header\n\t \n  \n\t\n\t \nbody",
		strings.Repeat("a ", 500) + "\n\n\n" + strings.Repeat("#", 40),
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}
