// Package parse extracts structured data from untrusted free-form generator
// output. Tolerance is limited to stripping markdown code fences; anything
// beyond that risks fabricating content, so structural errors surface as-is.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed means the text could not be parsed into the expected
	// shape even after fence stripping.
	ErrMalformed = errors.New("malformed response")

	// ErrInsufficient means a list-shaped response produced fewer usable
	// items than the section's minimum.
	ErrInsufficient = errors.New("insufficient content")
)

// StripFence removes a markdown code fence wrapped around the payload.
// Generators commonly answer with "```json\n{...}\n```" even when asked for
// bare JSON. Unfenced input is returned trimmed.
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Structured parses raw generator output into T after fence stripping.
func Structured[T any](raw string) (T, error) {
	var v T
	payload := StripFence(raw)
	if payload == "" {
		return v, fmt.Errorf("%w: empty payload", ErrMalformed)
	}
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

// List splits raw text into usable lines: blanks, comment lines ("#"-prefixed)
// and lines of minLength characters or fewer are discarded. Fails when fewer
// than minItems lines survive. Never truncates; caps belong to the caller.
func List(raw string, minItems, minLength int) ([]string, error) {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) <= minLength {
			continue
		}
		items = append(items, line)
	}

	if len(items) < minItems {
		return nil, fmt.Errorf("%w: %d usable lines, need %d", ErrInsufficient, len(items), minItems)
	}
	return items, nil
}
