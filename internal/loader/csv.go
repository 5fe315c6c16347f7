package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// table is a raw delimited file held in memory with a header index.
type table struct {
	file   string
	header map[string]int
	rows   [][]string
}

// readTable reads a delimited file and indexes its header row. A missing or
// unparsable file is a fatal configuration error for the run.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse source file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("source file %s has no header row", path)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[name] = i
	}

	return &table{file: path, header: header, rows: records[1:]}, nil
}

// column resolves a canonical field to a raw column index via the schema,
// reporting both the file and column name on failure.
func (t *table) column(ds DataSetSchema, canonical string) (int, error) {
	raw, err := ds.Column(canonical)
	if err != nil {
		return 0, err
	}
	idx, ok := t.header[raw]
	if !ok {
		return 0, fmt.Errorf("source file %s is missing column %q (field %q)", t.file, raw, canonical)
	}
	return idx, nil
}

// field returns the raw cell value for a row, empty when the row is short
func (t *table) field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseInt(file, column, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: column %q: invalid integer %q: %w", file, column, value, err)
	}
	return n, nil
}

func parseTime(file, column, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: column %q: invalid timestamp %q: %w", file, column, value, err)
	}
	return ts, nil
}

// parseTenthsCost converts a raw cost in tenths (e.g. 55 for 5.5) to a decimal
func parseTenthsCost(file, column, value string) (decimal.Decimal, error) {
	raw, err := parseInt(file, column, value)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(raw)).Div(decimal.NewFromInt(10)), nil
}
