package entity

// Credit frequencies accepted from extraction and the catalog.
const (
	FrequencyMonthly    = "monthly"
	FrequencyQuarterly  = "quarterly"
	FrequencySemiAnnual = "semi-annual"
	FrequencyAnnual     = "annual"
)

// AnnualFeeUnknown is the sentinel the model is told to use when a page
// mentions a card but never states its fee.
const AnnualFeeUnknown = -1

// Credit is a recurring statement credit or perk attached to a card.
type Credit struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	Notes     string  `json:"notes,omitempty"`
}

// SignupBonus is a one-time reward for meeting a spend threshold within a
// qualification window.
type SignupBonus struct {
	PointsOrCash     string `json:"points_or_cash"`
	SpendRequirement int    `json:"spend_requirement"`
	TimePeriodDays   int    `json:"time_period_days"`
}

// CardData is one extracted card record. Instances are produced fresh per
// extraction and owned by the caller; the pipeline keeps no reference.
type CardData struct {
	Name        string       `json:"name"`
	Issuer      string       `json:"issuer"`
	AnnualFee   int          `json:"annual_fee"`
	SignupBonus *SignupBonus `json:"signup_bonus,omitempty"`
	Credits     []Credit     `json:"credits"`
}

// Clone returns a deep copy that shares no mutable structure with c.
func (c *CardData) Clone() *CardData {
	if c == nil {
		return nil
	}
	out := &CardData{
		Name:      c.Name,
		Issuer:    c.Issuer,
		AnnualFee: c.AnnualFee,
	}
	if c.SignupBonus != nil {
		sb := *c.SignupBonus
		out.SignupBonus = &sb
	}
	if c.Credits != nil {
		out.Credits = make([]Credit, len(c.Credits))
		copy(out.Credits, c.Credits)
	}
	return out
}
