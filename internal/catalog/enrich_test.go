package catalog

import (
	"testing"

	"github.com/churnpilot/churnpilot/internal/entity"
)

func TestEnrichAppendsMissingCredits(t *testing.T) {
	card := &entity.CardData{
		Name:      "American Express Gold",
		Issuer:    "American Express",
		AnnualFee: 250,
		Credits: []entity.Credit{
			{Name: "Uber Cash", Amount: 10, Frequency: entity.FrequencyMonthly},
		},
	}

	enriched, match := Enrich(card, DefaultEnrichConfidence)
	if !match.Matched() || match.TemplateID != "amex_gold" {
		t.Fatalf("expected amex_gold match, got %+v", match)
	}

	// Template has Uber Cash, Dining Credit, and Dunkin Credit; only the two
	// the extraction missed should be appended.
	if len(enriched.Credits) != 3 {
		t.Fatalf("expected 3 credits, got %d: %+v", len(enriched.Credits), enriched.Credits)
	}
	if enriched.Credits[0].Name != "Uber Cash" || enriched.Credits[0].Amount != 10 {
		t.Errorf("extracted credit was altered: %+v", enriched.Credits[0])
	}
	names := map[string]bool{}
	for _, c := range enriched.Credits {
		names[c.Name] = true
	}
	if !names["Dining Credit"] || !names["Dunkin Credit"] {
		t.Errorf("missing template credits, got %v", names)
	}
}

func TestEnrichCreditCollisionIsCaseInsensitive(t *testing.T) {
	card := &entity.CardData{
		Name:   "American Express Gold",
		Issuer: "American Express",
		Credits: []entity.Credit{
			{Name: "UBER CASH", Amount: 5},
			{Name: "dining credit", Amount: 10},
		},
	}

	enriched, _ := Enrich(card, DefaultEnrichConfidence)
	if len(enriched.Credits) != 3 {
		t.Fatalf("expected 3 credits (only Dunkin added), got %d", len(enriched.Credits))
	}
	if enriched.Credits[0].Amount != 5 {
		t.Errorf("extracted credit amount was overwritten: %+v", enriched.Credits[0])
	}
}

func TestEnrichNeverTouchesAnnualFee(t *testing.T) {
	// Extracted fee differs from the template's 250; it must stand.
	card := &entity.CardData{
		Name:      "American Express Gold",
		Issuer:    "American Express",
		AnnualFee: 0,
	}

	enriched, match := Enrich(card, DefaultEnrichConfidence)
	if !match.Matched() {
		t.Fatal("expected a match")
	}
	if enriched.AnnualFee != 0 {
		t.Errorf("AnnualFee = %d, want extracted value 0", enriched.AnnualFee)
	}
}

func TestEnrichNoMatchReturnsInputUnchanged(t *testing.T) {
	card := &entity.CardData{
		Name:   "Obscure Rewards Card",
		Issuer: "Credit Union of Nowhere",
	}

	enriched, match := Enrich(card, DefaultEnrichConfidence)
	if match.Matched() {
		t.Fatalf("expected no match, got %+v", match)
	}
	if enriched != card {
		t.Error("no-match enrichment should return the input value itself")
	}
}

func TestEnrichReturnsDeepCopy(t *testing.T) {
	card := &entity.CardData{
		Name:        "American Express Gold",
		Issuer:      "American Express",
		SignupBonus: &entity.SignupBonus{PointsOrCash: "60000 points", SpendRequirement: 4000, TimePeriodDays: 180},
		Credits: []entity.Credit{
			{Name: "Uber Cash", Amount: 10},
		},
	}

	enriched, _ := Enrich(card, DefaultEnrichConfidence)
	if enriched == card {
		t.Fatal("enriched record must be a copy")
	}

	enriched.Credits[0].Amount = 999
	enriched.SignupBonus.SpendRequirement = 1

	if card.Credits[0].Amount != 10 {
		t.Error("mutating the enriched credits changed the input")
	}
	if card.SignupBonus.SpendRequirement != 4000 {
		t.Error("mutating the enriched bonus changed the input")
	}

	// Template credits must also be insulated from caller mutation.
	for i, c := range enriched.Credits {
		if c.Name == "Dining Credit" {
			enriched.Credits[i].Amount = 12345
		}
	}
	if tmpl := GetTemplate("amex_gold"); tmpl != nil {
		for _, c := range tmpl.Credits {
			if c.Name == "Dining Credit" && c.Amount == 12345 {
				t.Error("mutating enriched credits changed the catalog template")
			}
		}
	}
}
