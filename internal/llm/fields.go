package llm

import (
	"encoding/json"

	"github.com/churnpilot/churnpilot/internal/entity"
)

type rawBonus struct {
	PointsOrCash     string   `json:"points_or_cash"`
	SpendRequirement *float64 `json:"spend_requirement"`
	TimePeriodDays   *float64 `json:"time_period_days"`
}

type rawCredit struct {
	Name      string   `json:"name"`
	Amount    *float64 `json:"amount"`
	Frequency string   `json:"frequency"`
	Notes     *string  `json:"notes"`
}

type rawCard struct {
	Name        string      `json:"name"`
	Issuer      string      `json:"issuer"`
	AnnualFee   *float64    `json:"annual_fee"`
	SignupBonus *rawBonus   `json:"signup_bonus"`
	Credits     []rawCredit `json:"credits"`
}

// ParseCardJSON decodes a recovered JSON payload into a CardData, applying
// defensive defaults for every absent field: models drop fields freely, and
// no absence should surface as an error.
func ParseCardJSON(jsonText string) (*entity.CardData, error) {
	data := []byte(jsonText)

	if err := ValidateJSONAgainstSchema(BuildCardJSONSchema(), data); err != nil {
		return nil, &ParseError{Reason: "response did not match the card schema"}
	}

	var raw rawCard
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: "response was not valid JSON"}
	}

	card := &entity.CardData{
		Name:      raw.Name,
		Issuer:    raw.Issuer,
		AnnualFee: 0,
		Credits:   make([]entity.Credit, 0, len(raw.Credits)),
	}
	if card.Name == "" {
		card.Name = "Unknown Card"
	}
	if card.Issuer == "" {
		card.Issuer = "Unknown"
	}
	if raw.AnnualFee != nil {
		card.AnnualFee = int(*raw.AnnualFee)
	}

	if raw.SignupBonus != nil {
		bonus := &entity.SignupBonus{
			PointsOrCash:   raw.SignupBonus.PointsOrCash,
			TimePeriodDays: 90,
		}
		if raw.SignupBonus.SpendRequirement != nil {
			bonus.SpendRequirement = int(*raw.SignupBonus.SpendRequirement)
		}
		if raw.SignupBonus.TimePeriodDays != nil {
			bonus.TimePeriodDays = int(*raw.SignupBonus.TimePeriodDays)
		}
		card.SignupBonus = bonus
	}

	for _, rc := range raw.Credits {
		credit := entity.Credit{
			Name:      rc.Name,
			Frequency: rc.Frequency,
		}
		if credit.Name == "" {
			credit.Name = "Unknown Credit"
		}
		if credit.Frequency == "" {
			credit.Frequency = entity.FrequencyAnnual
		}
		if rc.Amount != nil {
			credit.Amount = *rc.Amount
		}
		if rc.Notes != nil {
			credit.Notes = *rc.Notes
		}
		card.Credits = append(card.Credits, credit)
	}

	return card, nil
}
