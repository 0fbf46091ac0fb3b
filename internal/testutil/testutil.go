// Package testutil builds raw row fixtures for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/mfiguera/torn"
)

// ShiftRow builds a raw shift row. Each block is a {service, start, end}
// triple placed in the next column group; empty strings leave the column
// absent.
func ShiftRow(id, line, zone string, blocks ...[3]string) torn.Row {
	row := torn.Row{}
	if id != "" {
		row["Torn"] = id
	}
	if line != "" {
		row["Línia"] = line
	}
	if zone != "" {
		row["Zona"] = zone
	}
	for i, block := range blocks {
		if block[0] != "" {
			row[fmt.Sprintf("Servei %d", i+1)] = block[0]
		}
		if block[1] != "" {
			row[fmt.Sprintf("Inici S%d", i+1)] = block[1]
		}
		if block[2] != "" {
			row[fmt.Sprintf("Final S%d", i+1)] = block[2]
		}
	}
	return row
}

// CalendarRow builds a raw calendar row.
func CalendarRow(date, service string) torn.Row {
	row := torn.Row{}
	if date != "" {
		row["Data"] = date
	}
	if service != "" {
		row["Servei BV"] = service
	}
	return row
}

// MustBuild builds a Dataset and fails the test if any row was skipped.
func MustBuild(t *testing.T, shiftRows, calendarRows []torn.Row) *torn.Dataset {
	t.Helper()
	dataset, warns := torn.BuildDataset(shiftRows, calendarRows)
	for _, warn := range warns {
		t.Errorf("unexpected warning building dataset: %s", warn.Error())
	}
	return dataset
}
