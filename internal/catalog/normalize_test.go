package catalog

import "testing"

func TestNormalizeIssuer(t *testing.T) {
	tests := []struct {
		name   string
		issuer string
		want   string
	}{
		{name: "amex shorthand", issuer: "amex", want: "American Express"},
		{name: "mixed case alias", issuer: "AMEX", want: "American Express"},
		{name: "full name passthrough", issuer: "American Express", want: "American Express"},
		{name: "chase bank", issuer: "Chase Bank", want: "Chase"},
		{name: "jpmorgan", issuer: "JPMorgan Chase", want: "Chase"},
		{name: "capitalone joined", issuer: "CapitalOne", want: "Capital One"},
		{name: "citibank", issuer: "citibank", want: "Citi"},
		{name: "bofa", issuer: "BofA", want: "Bank of America"},
		{name: "bilt rewards", issuer: "Bilt Rewards", want: "Bilt"},
		{name: "unknown issuer trimmed", issuer: "  Synchrony  ", want: "Synchrony"},
		{name: "empty", issuer: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIssuer(tt.issuer); got != tt.want {
				t.Errorf("NormalizeIssuer(%q) = %q, want %q", tt.issuer, got, tt.want)
			}
		})
	}
}

func TestSimplifyCardName(t *testing.T) {
	tests := []struct {
		name     string
		cardName string
		issuer   string
		want     string
	}{
		{
			name:     "issuer and generic words stripped",
			cardName: "Chase Sapphire Preferred Credit Card",
			issuer:   "Chase",
			want:     "Sapphire Preferred",
		},
		{
			name:     "trademark symbol stripped",
			cardName: "Capital One Venture X®",
			issuer:   "Capital One",
			want:     "Venture X",
		},
		{
			name:     "the and from stripped",
			cardName: "The Platinum Card from American Express",
			issuer:   "American Express",
			want:     "Platinum",
		},
		{
			name:     "issuer alias in name stripped",
			cardName: "Amex Gold",
			issuer:   "American Express",
			want:     "Gold",
		},
		{
			name:     "stripping everything falls back to original",
			cardName: "Chase Card",
			issuer:   "Chase",
			want:     "Chase Card",
		},
		{
			name:     "empty name",
			cardName: "",
			issuer:   "Chase",
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimplifyCardName(tt.cardName, tt.issuer); got != tt.want {
				t.Errorf("SimplifyCardName(%q, %q) = %q, want %q", tt.cardName, tt.issuer, got, tt.want)
			}
		})
	}
}

func TestExpandAbbreviations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "csp", input: "chase csp", want: "chase sapphire preferred"},
		{name: "csr", input: "csr", want: "sapphire reserve"},
		{name: "vx", input: "capital one vx", want: "capital one venture x"},
		{name: "plat", input: "amex plat", want: "amex platinum"},
		{name: "no abbreviation returns input", input: "chase sapphire preferred", want: "chase sapphire preferred"},
		{name: "partial token not expanded", input: "cspx", want: "cspx"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandAbbreviations(tt.input); got != tt.want {
				t.Errorf("ExpandAbbreviations(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
