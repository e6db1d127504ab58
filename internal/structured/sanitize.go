// Package structured contains the defensive cleanup applied to model output
// before it is parsed as JSON. Responses requested with a strict schema
// response format should already be pure JSON, but some models still wrap
// their answer in a markdown code fence.
package structured

import "strings"

const fenceMarker = "```"

// CleanModelOutput normalizes raw model text for JSON parsing.
//
// Leading/trailing whitespace is trimmed. If the text opens with a triple
// backtick fence, everything through the first line break is dropped (this
// discards a language tag such as "json" on the fence line), then any
// remaining fence markers are removed and the result is trimmed again.
// A fence marker with no following newline keeps the surrounding text intact
// and only loses the backticks. Text without a fence is returned unchanged.
func CleanModelOutput(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}

	if !strings.HasPrefix(cleaned, fenceMarker) {
		return cleaned
	}

	if idx := strings.Index(cleaned, "\n"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}
	cleaned = strings.ReplaceAll(cleaned, fenceMarker, "")
	return strings.TrimSpace(cleaned)
}
