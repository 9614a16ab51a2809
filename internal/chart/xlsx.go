package chart

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Loading chart"

var xlsxHeaders = []string{"Required (lb)", "Achieved (lb)", "Short (lb)", "Per side", "Message"}

// WriteXLSX writes rows to an Excel workbook at path.
func WriteXLSX(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header %s: %w", cell, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 14); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "E", "E", 90); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, r int, row Row) error {
	values := []struct {
		col   string
		value any
	}{
		{"A", row.Required},
		{"B", row.Result.WeightAchieved},
		{"C", row.Result.Shortfall(row.Required)},
		{"D", perSideLabel(row.Result)},
		{"E", row.Message},
	}
	for _, v := range values {
		cell := fmt.Sprintf("%s%d", v.col, r)
		if err := f.SetCellValue(sheetName, cell, v.value); err != nil {
			return fmt.Errorf("write %s: %w", cell, err)
		}
	}
	return nil
}
