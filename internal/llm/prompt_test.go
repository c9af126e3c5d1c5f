package llm

import (
	"strings"
	"testing"
)

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt("The Amex Gold has a $250 annual fee.", 0)

	if !strings.Contains(prompt, "The Amex Gold has a $250 annual fee.") {
		t.Error("prompt missing the content")
	}
	if !strings.Contains(prompt, "annual_fee") || !strings.Contains(prompt, "signup_bonus") {
		t.Error("prompt missing the schema description")
	}
	if strings.Contains(prompt, "[Content truncated...]") {
		t.Error("short content should not be truncated")
	}
}

func TestBuildExtractionPromptTruncates(t *testing.T) {
	content := strings.Repeat("a", 500)
	prompt := BuildExtractionPrompt(content, 100)

	if !strings.Contains(prompt, "[Content truncated...]") {
		t.Error("expected truncation marker")
	}
	if !strings.Contains(prompt, strings.Repeat("a", 100)) {
		t.Error("expected the content prefix to survive")
	}
	if strings.Contains(prompt, strings.Repeat("a", 101)) {
		t.Error("content exceeds the configured cap")
	}
}
