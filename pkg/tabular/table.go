package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/praxiotech/resto-insights/pkg/apperrors"
)

// Row maps a header name to the cell value for one record.
type Row map[string]string

// Table is an in-memory tabular dataset as loaded from a CSV or XLSX export.
// Headers preserve the source spelling and order; Rows are keyed by the exact
// header strings.
type Table struct {
	Headers []string
	Rows    []Row
}

// ReadFile loads a table from path, dispatching on the file extension.
// Only .csv and .xlsx are supported.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV loads a table from a CSV file. The first record is the header row.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", apperrors.ErrUnreadableFile, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged exports

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", apperrors.ErrUnreadableFile, path, err)
	}

	t := &Table{Headers: header}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrUnreadableFile, path, err)
		}
		t.Rows = append(t.Rows, rowFromRecord(header, rec))
	}
	return t, nil
}

// ReadXLSX loads a table from the first sheet of an XLSX workbook.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", apperrors.ErrUnreadableFile, path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet of %s: %v", apperrors.ErrUnreadableFile, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", apperrors.ErrUnreadableFile, path)
	}

	t := &Table{Headers: rows[0]}
	for _, rec := range rows[1:] {
		t.Rows = append(t.Rows, rowFromRecord(rows[0], rec))
	}
	return t, nil
}

// rowFromRecord zips a record against the header, padding short records with
// empty strings and dropping cells beyond the header width.
func rowFromRecord(header, rec []string) Row {
	row := make(Row, len(header))
	for i, h := range header {
		if i < len(rec) {
			row[h] = rec[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// FindColumn returns the actual header spelling for the first candidate that
// has a case-insensitive match among the table's headers. The candidate order
// is the caller's priority order. The second return is false when no candidate
// matches; callers are expected to fall back to a default rather than fail.
func FindColumn(t *Table, candidates ...string) (string, bool) {
	byLower := make(map[string]string, len(t.Headers))
	for _, h := range t.Headers {
		lower := strings.ToLower(h)
		if _, seen := byLower[lower]; !seen {
			byLower[lower] = h
		}
	}
	for _, c := range candidates {
		if actual, ok := byLower[strings.ToLower(c)]; ok {
			return actual, true
		}
	}
	return "", false
}

// Column returns all values of the named column in row order. Missing cells
// come back as empty strings.
func (t *Table) Column(name string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out
}
