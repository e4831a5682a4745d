package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetTrain  = "Training Data"
	sheetVerify = "Testing Data"
)

// writeExcel writes one workbook at basePath with the training table on the
// "Training Data" sheet and the verification table on "Testing Data".
func writeExcel(train, verify Table, basePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetTrain); err != nil {
		return fmt.Errorf("failed to name training sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetVerify); err != nil {
		return fmt.Errorf("failed to create testing sheet: %w", err)
	}

	if err := writeSheet(f, sheetTrain, train); err != nil {
		return err
	}
	if err := writeSheet(f, sheetVerify, verify); err != nil {
		return err
	}

	if err := f.SaveAs(basePath); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", basePath, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t Table) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header on %q: %w", sheet, err)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d on %q: %w", i, sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %q: %w", i, sheet, err)
		}
	}
	return nil
}
