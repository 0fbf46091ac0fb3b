// Package csv reads the CSV form of the scheduling exports into raw rows
// keyed by header, so the same transformer handles CSV and JSON sources.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/mfiguera/torn"
)

// ReadRows reads an entire CSV table. The first record is the header; every
// following record becomes a Row keyed by it. Cells beyond the header width
// are dropped; short records leave the trailing columns absent. Empty cells
// are omitted from the row so they read as missing fields, matching the
// JSON exports.
func ReadRows(r io.Reader) ([]torn.Row, error) {
	reader := bomAwareReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file contains no rows")
	} else if err != nil {
		return nil, err
	}
	var rows []torn.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		row := torn.Row{}
		for i, cell := range record {
			if i >= len(header) || cell == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
}

// bomAwareReader strips a leading UTF byte order mark if present; the
// spreadsheet exports often carry one.
func bomAwareReader(r io.Reader) *csv.Reader {
	t := unicode.BOMOverride(encoding.Nop.NewDecoder())
	return csv.NewReader(transform.NewReader(r, t))
}
