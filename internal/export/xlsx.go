package export

import (
	"fmt"
	"io"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes records and relationships into one XLSX workbook with
// a sheet per dataset.
func WriteWorkbook(w io.Writer, records []directory.PersonRecord, rels []directory.Relationship) error {
	f := excelize.NewFile()

	recordRows := make([][]string, 0, len(records))
	for _, rec := range records {
		recordRows = append(recordRows, rec.Row())
	}
	if err := writeSheet(f, "Records", directory.RecordColumns, recordRows); err != nil {
		return err
	}

	relRows := make([][]string, 0, len(rels))
	for _, rel := range rels {
		relRows = append(relRows, rel.Row())
	}
	if err := writeSheet(f, "Relationships", directory.RelationshipColumns, relRows); err != nil {
		return err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	if idx, _ := f.GetSheetIndex("Records"); idx != -1 {
		f.SetActiveSheet(idx)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header cell: %w", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell: %w", err)
			}
		}
	}

	// Widen the name-ish leading columns.
	_ = f.SetColWidth(sheet, "A", "D", 24)
	_ = f.SetColWidth(sheet, "E", "H", 18)
	return nil
}
