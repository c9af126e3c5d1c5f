// Package export renders extracted card data as XLSX workbooks.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/churnpilot/churnpilot/internal/entity"
)

// Service produces XLSX bytes from extracted cards.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportCardsXLSX returns a workbook with a Cards sheet (one row per card)
// and a Credits sheet (one row per credit, keyed back to the card name).
func (s *Service) ExportCardsXLSX(cards []*entity.CardData) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const cardsSheet = "Cards"
	const creditsSheet = "Credits"

	if err := renameDefaultSheet(f, cardsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(creditsSheet); err != nil {
		return nil, err
	}

	cardHeaders := []string{
		"Card Name",
		"Issuer",
		"Annual Fee",
		"Bonus Value",
		"Bonus Spend Requirement",
		"Bonus Period (Days)",
		"Credits Count",
	}
	for i, h := range cardHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(cardsSheet, cell, h)
	}

	creditHeaders := []string{
		"Card Name",
		"Credit",
		"Amount",
		"Frequency",
		"Notes",
	}
	for i, h := range creditHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(creditsSheet, cell, h)
	}

	cardRow, creditRow := 2, 2
	for _, card := range cards {
		if card == nil {
			continue
		}
		write := func(sheet string, row, col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(cardsSheet, cardRow, 1, card.Name)
		write(cardsSheet, cardRow, 2, card.Issuer)
		if card.AnnualFee == entity.AnnualFeeUnknown {
			write(cardsSheet, cardRow, 3, "unknown")
		} else {
			write(cardsSheet, cardRow, 3, card.AnnualFee)
		}
		if b := card.SignupBonus; b != nil {
			write(cardsSheet, cardRow, 4, b.PointsOrCash)
			write(cardsSheet, cardRow, 5, b.SpendRequirement)
			write(cardsSheet, cardRow, 6, b.TimePeriodDays)
		}
		write(cardsSheet, cardRow, 7, len(card.Credits))
		cardRow++

		for _, credit := range card.Credits {
			write(creditsSheet, creditRow, 1, card.Name)
			write(creditsSheet, creditRow, 2, credit.Name)
			write(creditsSheet, creditRow, 3, credit.Amount)
			write(creditsSheet, creditRow, 4, credit.Frequency)
			write(creditsSheet, creditRow, 5, credit.Notes)
			creditRow++
		}
	}

	_ = f.SetColWidth(cardsSheet, "A", "A", 36)
	_ = f.SetColWidth(cardsSheet, "B", "B", 22)
	_ = f.SetColWidth(cardsSheet, "C", "F", 14)
	_ = f.SetColWidth(creditsSheet, "A", "B", 36)
	_ = f.SetColWidth(creditsSheet, "E", "E", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"cards", cardRow-2,
		"credits", creditRow-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func renameDefaultSheet(f *excelize.File, name string) error {
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	index, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	return nil
}
