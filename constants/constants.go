// Package constants holds the raw column names of the scheduling exports.
package constants

// SourceTable identifies one of the two raw tables a load consumes.
type SourceTable string

const (
	ShiftTable    SourceTable = "torn"
	CalendarTable SourceTable = "calendari"
)

// Shift row columns. The line column appears both with and without the
// accent depending on which tool produced the export.
const (
	TornColumn      = "Torn"
	LineColumn      = "Línia"
	LineAsciiColumn = "Linia"
	ZoneColumn      = "Zona"
)

// Per-block shift row columns, to be formatted with the 1-based block
// position (e.g. "Servei 2", "Inici S2", "Final S2").
const (
	ServiceColumnFormat = "Servei %d"
	StartColumnFormat   = "Inici S%d"
	EndColumnFormat     = "Final S%d"
)

// Calendar row columns.
const (
	DateColumn       = "Data"
	DayServiceColumn = "Servei BV"
	WeekdayColumn    = "Dia_Set"
	MonthDayColumn   = "Dia_Mes"
	DayNumColumn     = "Dia_Num"
)
