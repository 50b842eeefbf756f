package mapping

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/aretw0/veil/pkg/core"
)

const xlsxSheet = "Mapping"

// ExportXLSX writes the mapping as a single-sheet workbook using the
// same column contract as ExportCSV.
func (s *Store) ExportXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := setStringRow(f, 1, tabularHeader); err != nil {
		return err
	}
	for i, e := range s.doc.Entities {
		if err := setStringRow(f, i+2, entityRow(e)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// ImportXLSX reads the first sheet of a workbook using the same row
// semantics as ImportCSV.
func (s *Store) ImportXLSX(r io.Reader, overwrite bool) (core.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return core.ImportResult{}, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return core.ImportResult{}, fmt.Errorf("xlsx file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return core.ImportResult{}, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}
	if len(rows) == 0 {
		return core.ImportResult{}, fmt.Errorf("xlsx sheet has no header row")
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return core.ImportResult{}, err
	}

	result := core.ImportResult{}
	for _, row := range rows[1:] {
		s.importRow(row, cols, overwrite, &result)
	}
	return result, nil
}

func setStringRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to set row %d: %w", row, err)
	}
	return nil
}
