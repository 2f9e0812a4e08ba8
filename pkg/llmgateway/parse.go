package llmgateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON strips Markdown code-fencing from a raw LLM completion (if
// any) and unmarshals the remaining text into out. Schema-level
// validation (required keys, ranges, enums) is the caller's
// responsibility, per spec.md §4.3 ("Response parsing").
func ParseJSON(raw string, out any) error {
	stripped := StripFence(raw)
	if err := json.Unmarshal([]byte(stripped), out); err != nil {
		return fmt.Errorf("llmgateway: parse response as JSON: %w", err)
	}
	return nil
}

// StripFence removes a single leading/trailing Markdown fence
// (```json ... ``` or ``` ... ```) from an LLM response, if present.
// Text outside a fence is returned trimmed and unmodified.
func StripFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}

	// Drop the opening fence line (``` or ```json, etc).
	lines = lines[1:]

	// Drop a trailing fence line, if present.
	last := len(lines) - 1
	if last >= 0 && strings.TrimSpace(lines[last]) == "```" {
		lines = lines[:last]
	} else {
		// Closing fence may appear mid-content on its own line.
		for i := len(lines) - 1; i >= 0; i-- {
			if strings.TrimSpace(lines[i]) == "```" {
				lines = lines[:i]
				break
			}
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
