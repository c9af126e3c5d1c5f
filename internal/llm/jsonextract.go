package llm

import (
	"regexp"
	"strings"
)

// ParseError means no usable JSON object could be recovered from a model
// reply. It stays internal to this package's callers: the pipeline translates
// it into a generic user-facing message before it crosses the API boundary.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return "parse error: " + e.Reason }

var fencedJSONPattern = regexp.MustCompile("```(?:json)?\\s*(\\{[\\s\\S]*?\\})\\s*```")

// ExtractJSON recovers a JSON object from a free-form model reply. Models
// routinely wrap the object in markdown fences or surround it with prose, and
// that prose can itself contain stray braces, so a fence check is tried first
// and then a string-aware brace scan. Naive regex over the whole reply breaks
// on the stray-brace case.
func ExtractJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return "", &ParseError{Reason: "no JSON object found in response (missing opening brace)"}
	}

	// Scan for the matching close brace, ignoring braces inside string
	// literals and honoring backslash escapes.
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", &ParseError{Reason: "no valid JSON object found (unmatched braces)"}
}
