package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParseFailed is returned when content is not valid JSON after any
// surrounding code fence has been removed.
var ErrParseFailed = errors.New("failed to parse response")

const (
	fence     = "```"
	jsonFence = "```json"
)

// StripFence removes at most one opening markdown fence (tagged "json" or
// untagged) and one closing fence from content. Surrounding whitespace is
// trimmed before and after stripping. Content without fences is returned
// trimmed and otherwise unchanged.
func StripFence(content string) string {
	s := strings.TrimSpace(content)

	if rest, ok := strings.CutPrefix(s, jsonFence); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, fence); ok {
		s = rest
	}

	s, _ = strings.CutSuffix(s, fence)

	return strings.TrimSpace(s)
}

// Parse unmarshals content into T after stripping a single enclosing code
// fence. Returns ErrParseFailed wrapping the decoder error on failure.
func Parse[T any](content string) (T, error) {
	var result T

	cleaned := StripFence(content)
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return result, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	return result, nil
}
