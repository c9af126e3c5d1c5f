package catalog

import (
	"math"
	"testing"

	"github.com/churnpilot/churnpilot/internal/entity"
)

func TestMatchLibraryReflexive(t *testing.T) {
	// Every template must match its own exact name and issuer at 1.0.
	for _, tmpl := range Library {
		got := Match(tmpl.Name, tmpl.Issuer, DefaultMinConfidence)
		if got.TemplateID != tmpl.ID {
			t.Errorf("Match(%q, %q): got template %q, want %q", tmpl.Name, tmpl.Issuer, got.TemplateID, tmpl.ID)
		}
		if got.Confidence != 1.0 {
			t.Errorf("Match(%q, %q): confidence = %v, want 1.0", tmpl.Name, tmpl.Issuer, got.Confidence)
		}
	}
}

func TestMatchTiers(t *testing.T) {
	tests := []struct {
		name           string
		cardName       string
		issuer         string
		minConfidence  float64
		wantTemplate   string
		wantConfidence float64
	}{
		{
			name:           "exact name",
			cardName:       "Chase Sapphire Preferred Credit Card",
			issuer:         "Chase",
			minConfidence:  DefaultMinConfidence,
			wantTemplate:   "chase_sapphire_preferred",
			wantConfidence: 1.0,
		},
		{
			name:           "exact name with issuer alias",
			cardName:       "American Express Platinum",
			issuer:         "amex",
			minConfidence:  DefaultMinConfidence,
			wantTemplate:   "amex_platinum",
			wantConfidence: 1.0,
		},
		{
			name:           "simplified equality",
			cardName:       "Sapphire Preferred",
			issuer:         "Chase",
			minConfidence:  DefaultMinConfidence,
			wantTemplate:   "chase_sapphire_preferred",
			wantConfidence: 0.9,
		},
		{
			name:           "abbreviation expands to simplified name",
			cardName:       "csp",
			issuer:         "Chase",
			minConfidence:  DefaultMinConfidence,
			wantTemplate:   "chase_sapphire_preferred",
			wantConfidence: 0.9,
		},
		{
			name:           "abbreviation with issuer prefix",
			cardName:       "amex plat",
			issuer:         "American Express",
			minConfidence:  DefaultMinConfidence,
			wantTemplate:   "amex_platinum",
			wantConfidence: 0.9,
		},
		{
			name:           "all key words present",
			cardName:       "Sapphire Preferred Rewards",
			issuer:         "Chase",
			minConfidence:  DefaultMinConfidence,
			wantTemplate:   "chase_sapphire_preferred",
			wantConfidence: 0.85,
		},
		{
			name:           "two of three key words",
			cardName:       "Blue Cash Rewards",
			issuer:         "American Express",
			minConfidence:  DefaultMinConfidence,
			wantTemplate:   "amex_blue_cash_preferred",
			wantConfidence: 0.65 + (2.0/3.0-0.6)*0.5,
		},
		{
			name:          "wrong issuer is a hard filter",
			cardName:      "Chase Sapphire Preferred Credit Card",
			issuer:        "Citi",
			minConfidence: DefaultMinConfidence,
			wantTemplate:  "",
		},
		{
			name:          "below confidence floor",
			cardName:      "Sapphire Preferred Rewards",
			issuer:        "Chase",
			minConfidence: 0.9,
			wantTemplate:  "",
		},
		{
			name:          "unrelated name",
			cardName:      "Platinum Honors Checking",
			issuer:        "Chase",
			minConfidence: DefaultMinConfidence,
			wantTemplate:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.cardName, tt.issuer, tt.minConfidence)
			if got.TemplateID != tt.wantTemplate {
				t.Fatalf("TemplateID = %q, want %q (confidence %v)", got.TemplateID, tt.wantTemplate, got.Confidence)
			}
			if tt.wantTemplate == "" {
				if got.Matched() {
					t.Fatalf("expected no match, got %+v", got)
				}
				return
			}
			if math.Abs(got.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestMatchTieBreakIsFirstSeen(t *testing.T) {
	templates := []entity.CardTemplate{
		{ID: "first", Name: "Travel Plus Card", Issuer: "Chase"},
		{ID: "second", Name: "Travel Plus Rewards Card", Issuer: "Chase"},
	}
	m := NewMatcher(templates)

	// Both templates score identically on a name containing every key word;
	// the earlier template must win every time.
	for i := 0; i < 50; i++ {
		got := m.Match("Travel Plus Rewards Elite", "Chase", DefaultMinConfidence)
		if got.TemplateID != "first" {
			t.Fatalf("iteration %d: TemplateID = %q, want %q", i, got.TemplateID, "first")
		}
	}
}
