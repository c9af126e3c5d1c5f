// Package catalog holds the static card template library and the fuzzy
// matching used to enrich extracted cards with known benefits.
package catalog

import "github.com/churnpilot/churnpilot/internal/entity"

// Library is the built-in card template catalog. Order is significant: the
// matcher iterates in slice order and breaks score ties in favor of the
// first template seen.
var Library = []entity.CardTemplate{
	{
		ID:        "amex_platinum",
		Name:      "American Express Platinum",
		Issuer:    "American Express",
		AnnualFee: 895,
		Credits: []entity.Credit{
			{Name: "Uber Credit", Amount: 15, Frequency: entity.FrequencyMonthly, Notes: "$35 in December"},
			{Name: "Saks Fifth Avenue Credit", Amount: 50, Frequency: entity.FrequencySemiAnnual},
			{Name: "Airline Fee Credit", Amount: 200, Frequency: entity.FrequencyAnnual, Notes: "Incidental fees only"},
			{Name: "Digital Entertainment Credit", Amount: 20, Frequency: entity.FrequencyMonthly},
			{Name: "Hotel Credit", Amount: 200, Frequency: entity.FrequencyAnnual, Notes: "FHR or THC"},
			{Name: "CLEAR Plus Credit", Amount: 189, Frequency: entity.FrequencyAnnual},
			{Name: "Equinox Credit", Amount: 25, Frequency: entity.FrequencyMonthly, Notes: "Up to $300/year"},
			{Name: "Walmart+ Credit", Amount: 12.95, Frequency: entity.FrequencyMonthly},
		},
	},
	{
		ID:        "amex_gold",
		Name:      "American Express Gold",
		Issuer:    "American Express",
		AnnualFee: 250,
		Credits: []entity.Credit{
			{Name: "Uber Cash", Amount: 10, Frequency: entity.FrequencyMonthly, Notes: "US only"},
			{Name: "Dining Credit", Amount: 10, Frequency: entity.FrequencyMonthly, Notes: "Grubhub, Seamless, Cheesecake Factory, etc."},
			{Name: "Dunkin Credit", Amount: 7, Frequency: entity.FrequencyMonthly},
		},
	},
	{
		ID:        "amex_green",
		Name:      "American Express Green",
		Issuer:    "American Express",
		AnnualFee: 150,
		Credits: []entity.Credit{
			{Name: "LoungeBuddy Credit", Amount: 100, Frequency: entity.FrequencyAnnual},
			{Name: "CLEAR Plus Credit", Amount: 189, Frequency: entity.FrequencyAnnual},
		},
	},
	{
		ID:        "amex_blue_cash_preferred",
		Name:      "Blue Cash Preferred",
		Issuer:    "American Express",
		AnnualFee: 0,
		Credits: []entity.Credit{
			{Name: "Disney Bundle Credit", Amount: 7, Frequency: entity.FrequencyMonthly},
		},
	},
	{
		ID:        "chase_sapphire_preferred",
		Name:      "Chase Sapphire Preferred Credit Card",
		Issuer:    "Chase",
		AnnualFee: 95,
		Credits: []entity.Credit{
			{Name: "Chase Travel Hotel Credit", Amount: 50, Frequency: entity.FrequencyAnnual, Notes: "Statement credits for hotel stays purchased through Chase Travel"},
		},
	},
	{
		ID:        "chase_sapphire_reserve",
		Name:      "Chase Sapphire Reserve",
		Issuer:    "Chase",
		AnnualFee: 795,
		Credits: []entity.Credit{
			{Name: "Annual Travel Credit", Amount: 300, Frequency: entity.FrequencyAnnual, Notes: "Statement credits for travel purchases each account anniversary year"},
			{Name: "The Edit Credit", Amount: 500, Frequency: entity.FrequencyAnnual, Notes: "Up to $250 in statement credits each half of the year for prepaid bookings with The Edit. Two-night minimum."},
		},
	},
	{
		ID:        "chase_freedom_unlimited",
		Name:      "Chase Freedom Unlimited Credit Card",
		Issuer:    "Chase",
		AnnualFee: 0,
	},
	{
		ID:        "chase_freedom_flex",
		Name:      "Chase Freedom Flex Credit Card",
		Issuer:    "Chase",
		AnnualFee: 0,
	},
	{
		ID:        "chase_ink_preferred",
		Name:      "Ink Business Preferred Credit Card",
		Issuer:    "Chase",
		AnnualFee: 95,
	},
	{
		ID:        "capital_one_venture_x",
		Name:      "Capital One Venture X",
		Issuer:    "Capital One",
		AnnualFee: 395,
		Credits: []entity.Credit{
			{Name: "Capital One Travel Credit", Amount: 300, Frequency: entity.FrequencyAnnual, Notes: "Only on Capital One Travel portal"},
			{Name: "Global Entry/TSA PreCheck Credit", Amount: 100, Frequency: entity.FrequencyAnnual, Notes: "Once every 4 years"},
			{Name: "Anniversary Bonus", Amount: 10000, Frequency: entity.FrequencyAnnual, Notes: "10,000 miles on each account anniversary"},
		},
	},
	{
		ID:        "capital_one_venture",
		Name:      "Capital One Venture",
		Issuer:    "Capital One",
		AnnualFee: 95,
		Credits: []entity.Credit{
			{Name: "Global Entry/TSA PreCheck Credit", Amount: 100, Frequency: entity.FrequencyAnnual, Notes: "Once every 4 years"},
		},
	},
	{
		ID:        "capital_one_savor_one",
		Name:      "Capital One SavorOne",
		Issuer:    "Capital One",
		AnnualFee: 0,
	},
	{
		ID:        "citi_premier",
		Name:      "Citi Strata Premier Card",
		Issuer:    "Citi",
		AnnualFee: 95,
		Credits: []entity.Credit{
			{Name: "Annual Hotel Benefit", Amount: 100, Frequency: entity.FrequencyAnnual, Notes: "Once per calendar year, $100 off a single hotel stay of $500 or more when booked through cititravel.com"},
		},
	},
	{
		ID:        "citi_custom_cash",
		Name:      "Citi Custom Cash Card",
		Issuer:    "Citi",
		AnnualFee: 0,
	},
	{
		ID:        "citi_double_cash",
		Name:      "Citi Double Cash Card",
		Issuer:    "Citi",
		AnnualFee: 0,
	},
	{
		ID:        "us_bank_altitude_reserve",
		Name:      "US Bank Altitude Reserve",
		Issuer:    "US Bank",
		AnnualFee: 400,
		Credits: []entity.Credit{
			{Name: "Travel Credit", Amount: 325, Frequency: entity.FrequencyAnnual},
			{Name: "Global Entry/TSA PreCheck Credit", Amount: 100, Frequency: entity.FrequencyAnnual, Notes: "Once every 4 years"},
		},
	},
	{
		ID:        "wells_fargo_autograph",
		Name:      "Wells Fargo Autograph",
		Issuer:    "Wells Fargo",
		AnnualFee: 0,
		Credits: []entity.Credit{
			{Name: "Cell Phone Protection", Amount: 600, Frequency: entity.FrequencyAnnual, Notes: "Up to $600 per claim, 2 claims per year"},
		},
	},
	{
		ID:        "bilt_mastercard",
		Name:      "Bilt Mastercard",
		Issuer:    "Bilt",
		AnnualFee: 0,
		Credits: []entity.Credit{
			{Name: "Lyft Credit", Amount: 2.5, Frequency: entity.FrequencyMonthly, Notes: "5 rides per month"},
		},
	},
}

// GetTemplate returns a template by ID, or nil.
func GetTemplate(templateID string) *entity.CardTemplate {
	for i := range Library {
		if Library[i].ID == templateID {
			return &Library[i]
		}
	}
	return nil
}
