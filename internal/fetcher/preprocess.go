package fetcher

import (
	"regexp"
	"strings"
)

// Lines that are navigation or cookie-banner boilerplate on card pages.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(accept|manage) (all )?cookies?\b`),
	regexp.MustCompile(`(?i)^sign (in|up)\b`),
	regexp.MustCompile(`(?i)^log ?in\b`),
	regexp.MustCompile(`(?i)^subscribe\b`),
	regexp.MustCompile(`(?i)^advertiser disclosure\b`),
	regexp.MustCompile(`(?i)^skip to (main )?content\b`),
	regexp.MustCompile(`(?i)^share (this|on)\b`),
	regexp.MustCompile(`(?i)^(follow us|connect with us)\b`),
	regexp.MustCompile(`(?i)^©\s*\d{4}`),
	regexp.MustCompile(`(?i)^all rights reserved`),
}

var (
	imageMarkdownPattern = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkMarkdownPattern  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)
	spaceRunPattern      = regexp.MustCompile(`[ \t]{2,}`)
)

// Preprocess strips markdown image/link syntax and boilerplate lines from
// reader output and collapses whitespace, then truncates to maxChars on a
// line boundary when possible. maxChars <= 0 means no truncation.
func Preprocess(text string, maxChars int) string {
	text = imageMarkdownPattern.ReplaceAllString(text, "")
	text = linkMarkdownPattern.ReplaceAllString(text, "$1")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isBoilerplate(trimmed) {
			continue
		}
		kept = append(kept, spaceRunPattern.ReplaceAllString(trimmed, " "))
	}

	out := strings.Join(kept, "\n")
	out = blankRunPattern.ReplaceAllString(out, "\n\n")
	out = strings.TrimSpace(out)

	if maxChars > 0 && len(out) > maxChars {
		cut := out[:maxChars]
		// Prefer cutting at the last full line so the model never sees a
		// sentence sliced mid-word.
		if idx := strings.LastIndexByte(cut, '\n'); idx > maxChars/2 {
			cut = cut[:idx]
		}
		out = strings.TrimSpace(cut)
	}
	return out
}

func isBoilerplate(line string) bool {
	if line == "" {
		return false
	}
	for _, p := range boilerplatePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
