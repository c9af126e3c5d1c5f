package entity

// CardTemplate is a catalog entry with canonical card details and the full
// list of published credits. Templates are loaded once at process start and
// never mutated afterwards.
type CardTemplate struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Issuer    string   `json:"issuer"`
	AnnualFee int      `json:"annual_fee"`
	Credits   []Credit `json:"credits"`
}

// MatchResult reports how confidently an extracted (name, issuer) pair was
// matched to a catalog template. A zero MatchResult means no match.
type MatchResult struct {
	TemplateID string
	Confidence float64
	Template   *CardTemplate
}

// Matched reports whether a template cleared the confidence floor.
func (m MatchResult) Matched() bool {
	return m.TemplateID != "" && m.Template != nil
}
