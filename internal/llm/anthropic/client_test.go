package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteSendsMessagesRequest(t *testing.T) {
	var gotBody map[string]any
	var gotVersion, gotKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("x-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"content": [
				{"type": "text", "text": "{\"name\": "},
				{"type": "text", "text": "\"Gold\"}"}
			],
			"model": "claude-sonnet-4-20250514",
			"usage": {"input_tokens": 120, "output_tokens": 30}
		}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL}, nil)

	out, err := c.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
	if gotVersion != apiVersion {
		t.Errorf("anthropic-version = %q, want %q", gotVersion, apiVersion)
	}
	if gotBody["system"] != "system prompt" {
		t.Errorf("system = %v", gotBody["system"])
	}

	// Text blocks concatenate in order.
	if out.Text != `{"name": "Gold"}` {
		t.Errorf("Text = %q", out.Text)
	}
	if out.InputTokens != 120 || out.OutputTokens != 30 {
		t.Errorf("tokens = (%d, %d)", out.InputTokens, out.OutputTokens)
	}
	if out.Model != "claude-sonnet-4-20250514" {
		t.Errorf("Model = %q", out.Model)
	}
}

func TestCompleteNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"type":"error"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL}, nil)

	if _, err := c.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestCompleteWithoutKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, nil)

	if _, err := c.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error without an API key")
	}
}
