package ai

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON object or array out of free-form model output.
// Models sometimes wrap their payload in markdown fences or surrounding
// prose; this strips fences, tries a direct parse, and falls back to the
// largest brace- or bracket-delimited substring that parses. Returns nil if
// no well-formed JSON is found.
func ExtractJSON(text string) json.RawMessage {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	if json.Valid([]byte(text)) {
		return json.RawMessage(text)
	}

	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(text, pair[0])
		end := strings.LastIndexByte(text, pair[1])
		if start == -1 || end <= start {
			continue
		}
		chunk := text[start : end+1]
		if json.Valid([]byte(chunk)) {
			return json.RawMessage(chunk)
		}
	}
	return nil
}
