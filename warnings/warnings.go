// Package warnings describes rows the transformer skipped. Skips are
// deliberate (upstream data quality varies) and never fail a load; callers
// that care can log or surface them.
package warnings

import (
	"fmt"

	"github.com/mfiguera/torn/constants"
)

type Warning interface {
	Table() constants.SourceTable
	Error() string
}

// ShiftMissingID is reported for a shift row without a Torn identifier.
type ShiftMissingID struct {
	RowNumber int
}

func (w ShiftMissingID) Table() constants.SourceTable {
	return constants.ShiftTable
}

func (w ShiftMissingID) Error() string {
	return fmt.Sprintf("skipping shift row %d because it has no %q value", w.RowNumber, constants.TornColumn)
}

// ShiftWithoutBlocks is reported for a shift row none of whose four column
// groups had all of service code, start time and end time.
type ShiftWithoutBlocks struct {
	ShiftID   string
	RowNumber int
}

func (w ShiftWithoutBlocks) Table() constants.SourceTable {
	return constants.ShiftTable
}

func (w ShiftWithoutBlocks) Error() string {
	return fmt.Sprintf("skipping shift %q (row %d) because it has no complete service block", w.ShiftID, w.RowNumber)
}

// CalendarMissingDate is reported for a calendar row without a date.
type CalendarMissingDate struct {
	RowNumber int
}

func (w CalendarMissingDate) Table() constants.SourceTable {
	return constants.CalendarTable
}

func (w CalendarMissingDate) Error() string {
	return fmt.Sprintf("skipping calendar row %d because it has no %q value", w.RowNumber, constants.DateColumn)
}
