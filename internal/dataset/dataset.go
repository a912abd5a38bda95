package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table is an in-memory comma-delimited dataset: a header row naming the
// columns and the data rows in their original order. Cells are strings; every
// row has exactly len(Header) fields.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnNotFoundError reports a header lookup miss along with the columns
// that are actually present.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found. Available columns: [%s]",
		e.Column, strings.Join(e.Available, ", "))
}

// Load reads a CSV file whose first record is the header. A UTF-8 BOM on the
// first header cell is stripped. Ragged rows are rejected by the reader.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: no header row", path)
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	return &Table{Header: header, Rows: records[1:]}, nil
}

// Save writes the table back as CSV, header first, preserving column and row
// order.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Header {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// RequireColumn is ColumnIndex for columns the caller cannot proceed without.
func (t *Table) RequireColumn(name string) (int, error) {
	if i, ok := t.ColumnIndex(name); ok {
		return i, nil
	}
	return 0, &ColumnNotFoundError{Column: name, Available: append([]string(nil), t.Header...)}
}

// EnsureColumn returns the index of the named column, appending it to the
// header and padding every row with an empty cell when it does not exist yet.
func (t *Table) EnsureColumn(name string) int {
	if i, ok := t.ColumnIndex(name); ok {
		return i
	}
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], "")
	}
	return len(t.Header) - 1
}
