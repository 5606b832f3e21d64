// Package extract pulls JSON payloads out of free-form model output.
// Responses routinely arrive wrapped in markdown fences or surrounded by
// prose, so extraction works on the raw text rather than trusting the
// provider to return bare JSON.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?i)```json|```|'''json|'''")

// Object returns the JSON object embedded in text, or ok=false if none
// exists. The span is taken from the first '{' to the last '}' after fence
// stripping. This is deliberately not balanced-brace scanning: a literal
// '}' in trailing prose after the true closing brace corrupts the span and
// the parse then fails. That matches the behaviour the prompts were tuned
// against; callers treat ok=false as "provider failed".
func Object(text string) (json.RawMessage, bool) {
	span, ok := span(text, '{', '}')
	if !ok {
		return nil, false
	}
	return json.RawMessage(span), true
}

// Array returns the JSON array embedded in text, used for list-shaped
// payloads such as city suggestions.
func Array(text string) (json.RawMessage, bool) {
	span, ok := span(text, '[', ']')
	if !ok {
		return nil, false
	}
	return json.RawMessage(span), true
}

func span(text string, open, closing byte) (string, bool) {
	if text == "" {
		return "", false
	}
	clean := strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))

	start := strings.IndexByte(clean, open)
	end := strings.LastIndexByte(clean, closing)
	if start == -1 || end == -1 || end < start {
		return "", false
	}

	candidate := clean[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", false
	}
	return candidate, true
}
