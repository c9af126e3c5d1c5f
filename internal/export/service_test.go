package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/churnpilot/churnpilot/internal/entity"
)

func TestExportCardsXLSX(t *testing.T) {
	cards := []*entity.CardData{
		{
			Name:      "American Express Gold",
			Issuer:    "American Express",
			AnnualFee: 250,
			SignupBonus: &entity.SignupBonus{
				PointsOrCash:     "60000 points",
				SpendRequirement: 4000,
				TimePeriodDays:   180,
			},
			Credits: []entity.Credit{
				{Name: "Uber Cash", Amount: 10, Frequency: entity.FrequencyMonthly},
				{Name: "Dining Credit", Amount: 10, Frequency: entity.FrequencyMonthly},
			},
		},
		{
			Name:      "Mystery Card",
			Issuer:    "Chase",
			AnnualFee: entity.AnnualFeeUnknown,
		},
		nil, // skipped without panicking
	}

	data, err := NewService(nil).ExportCardsXLSX(cards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Cards")
	if err != nil {
		t.Fatalf("read Cards sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Cards rows = %d, want 3 (header + 2 cards)", len(rows))
	}
	if rows[0][0] != "Card Name" {
		t.Errorf("header = %q, want Card Name", rows[0][0])
	}
	if rows[1][0] != "American Express Gold" || rows[1][2] != "250" {
		t.Errorf("card row wrong: %v", rows[1])
	}
	if rows[2][2] != "unknown" {
		t.Errorf("unknown fee should render as %q, got %q", "unknown", rows[2][2])
	}

	credits, err := f.GetRows("Credits")
	if err != nil {
		t.Fatalf("read Credits sheet: %v", err)
	}
	if len(credits) != 3 {
		t.Fatalf("Credits rows = %d, want 3 (header + 2 credits)", len(credits))
	}
	if credits[1][0] != "American Express Gold" || credits[1][1] != "Uber Cash" {
		t.Errorf("credit row wrong: %v", credits[1])
	}
}

func TestExportCardsXLSXEmpty(t *testing.T) {
	data, err := NewService(nil).ExportCardsXLSX(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Cards")
	if err != nil {
		t.Fatalf("read Cards sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Cards rows = %d, want header only", len(rows))
	}
}
