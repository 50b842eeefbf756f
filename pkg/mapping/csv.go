package mapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/veil/pkg/core"
)

// tabularHeader is the shared column contract for CSV and XLSX
// export/import.
var tabularHeader = []string{"Original", "Alias", "Type", "Variations", "Notes"}

// ExportCSV writes the mapping in tabular form. Variations are joined
// with "; ". This encoding is lossy for a variation that itself
// contains a semicolon; the limitation is inherited from the document
// interchange format and deliberately not papered over with escaping.
func (s *Store) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tabularHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range s.doc.Entities {
		if err := cw.Write(entityRow(e)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads tabular rows into the store. Rows are processed
// independently: a malformed row is recorded in the result's Errors
// and the batch continues. When overwrite is set, an existing entity
// with the same original is removed before the row is re-added.
func (s *Store) ImportCSV(r io.Reader, overwrite bool) (core.ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return core.ImportResult{}, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols, err := headerIndex(header)
	if err != nil {
		return core.ImportResult{}, err
	}

	result := core.ImportResult{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		s.importRow(row, cols, overwrite, &result)
	}
	return result, nil
}

// columnIndex maps the tabular columns to their positions in a header
// row. Original and Alias are required; the rest default to absent.
type columnIndex struct {
	original   int
	alias      int
	typ        int
	variations int
	notes      int
}

func headerIndex(header []string) (columnIndex, error) {
	cols := columnIndex{original: -1, alias: -1, typ: -1, variations: -1, notes: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Original":
			cols.original = i
		case "Alias":
			cols.alias = i
		case "Type":
			cols.typ = i
		case "Variations":
			cols.variations = i
		case "Notes":
			cols.notes = i
		}
	}
	if cols.original < 0 || cols.alias < 0 {
		return cols, fmt.Errorf("tabular header missing Original/Alias columns: %v", header)
	}
	return cols, nil
}

func (s *Store) importRow(row []string, cols columnIndex, overwrite bool, result *core.ImportResult) {
	original := cell(row, cols.original)
	alias := cell(row, cols.alias)
	if original == "" || alias == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("row %v: empty original or alias", row))
		return
	}

	if overwrite {
		s.Remove(original)
	}

	ok := s.Add(original, alias,
		core.EntityType(cell(row, cols.typ)),
		splitVariations(cell(row, cols.variations)),
		cell(row, cols.notes))
	if ok {
		result.Added++
	} else {
		result.Skipped++
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func joinVariations(variations []string) string {
	return strings.Join(variations, "; ")
}

func splitVariations(field string) []string {
	if field == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(field, ";") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func entityRow(e core.Entity) []string {
	return []string{
		e.Original,
		e.Alias,
		string(e.Type),
		joinVariations(e.Variations),
		e.Notes,
	}
}
