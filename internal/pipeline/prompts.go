package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jobsarthi/notification-parser/internal/jobextract"
)

const extractionSystem = "You are a parser for Indian government job notifications. " +
	"Return ONLY a JSON object that matches the provided JSON Schema. " +
	"Use null for any field the text does not state and empty arrays for list " +
	"fields with no entries; never invent values. " +
	"All dates must be ISO-8601 (YYYY-MM-DD). Amounts are integers in rupees. " +
	"selectionProcess stages are numbered as printed in the notification. " +
	"Set multipleJobs to true only if the notification advertises more than one distinct post."

const splitSystem = "You are a parser for Indian government job notifications. " +
	"The notification advertises multiple posts. Return ONLY a JSON object " +
	"matching the provided JSON Schema: an array under \"posts\" with one " +
	"record per distinct post. Use null for unknown fields; never invent values."

// buildExtractionPrompt renders the per-chunk user prompt. For multi-chunk
// documents a position note tells the model it is looking at a fragment, so
// it fills only what its fragment supports.
func buildExtractionPrompt(chunk string, chunkIndex, totalChunks int) string {
	var b strings.Builder
	if totalChunks > 1 {
		fmt.Fprintf(&b, "This is part %d of %d of a long notification. ", chunkIndex+1, totalChunks)
		b.WriteString("Extract only what this part states; use null elsewhere.\n\n")
	}
	b.WriteString("JSON Schema:\n")
	b.WriteString(mustJSON(jobextract.JSONSchema()))
	b.WriteString("\n\nNotification text:\n")
	b.WriteString(chunk)
	b.WriteString("\n\nReturn ONLY JSON that matches the schema.")
	return b.String()
}

func buildSplitPrompt(text string) string {
	var b strings.Builder
	b.WriteString("JSON Schema:\n")
	b.WriteString(mustJSON(jobextract.PostsJSONSchema()))
	b.WriteString("\n\nNotification text:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn ONLY JSON that matches the schema.")
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
