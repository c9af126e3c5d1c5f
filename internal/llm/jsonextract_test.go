package llm

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "fenced json block",
			raw:  "Here is the card data:\n```json\n{\"name\": \"Gold\"}\n```\nLet me know if you need more.",
			want: `{"name": "Gold"}`,
		},
		{
			name: "fenced block without language tag",
			raw:  "```\n{\"name\": \"Gold\"}\n```",
			want: `{"name": "Gold"}`,
		},
		{
			name: "fenced block with nested object",
			raw:  "```json\n{\"signup_bonus\": {\"points_or_cash\": \"60k\"}}\n```",
			want: `{"signup_bonus": {"points_or_cash": "60k"}}`,
		},
		{
			name: "bare object",
			raw:  `{"name": "Gold", "issuer": "Amex"}`,
			want: `{"name": "Gold", "issuer": "Amex"}`,
		},
		{
			name: "object surrounded by prose",
			raw:  `Sure! {"name": "Gold"} Hope that helps.`,
			want: `{"name": "Gold"}`,
		},
		{
			name: "brace inside string literal",
			raw:  `{"notes": "ends with } inside", "name": "Gold"}`,
			want: `{"notes": "ends with } inside", "name": "Gold"}`,
		},
		{
			name: "escaped quote inside string",
			raw:  `{"notes": "a \"quoted\" } brace", "name": "Gold"}`,
			want: `{"notes": "a \"quoted\" } brace", "name": "Gold"}`,
		},
		{
			name: "trailing prose with braces ignored",
			raw:  `{"name": "Gold"} and remember: {braces} in prose`,
			want: `{"name": "Gold"}`,
		},
		{
			name:    "no object at all",
			raw:     "I could not find any card information on that page.",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			raw:     `{"name": "Gold", "issuer": "Amex"`,
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
