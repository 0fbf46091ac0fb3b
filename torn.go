// Package torn resolves transit shift ("torn") schedules: given a calendar
// date and a shift identifier, it determines which service code runs that day
// and which of the shift's service blocks are active under it.
package torn

// Dataset contains the two indexed tables produced by a single data load.
//
// A Dataset is built whole by BuildDataset and never mutated afterwards;
// reloads produce a new Dataset and swap it in atomically (see Store).
type Dataset struct {
	// Shifts is keyed by the uppercase shift identifier.
	Shifts map[string]Shift
	// Calendar is keyed by ISO date (YYYY-MM-DD).
	Calendar map[string]CalendarDay
}

// Shift is a work schedule with up to four service blocks.
type Shift struct {
	// ID is the shift identifier, canonicalized to uppercase.
	ID   string
	Line string
	Zone string
	// Blocks is ordered by column position (1-4). A shift always has at
	// least one block; rows that yield none are dropped at build time.
	Blocks []ServiceBlock
}

// MaxBlocks is the number of service-block column groups per shift row.
const MaxBlocks = 4

// ServiceBlock is one scheduled span of a shift. A block can be valid under
// several service codes (e.g. "800,801").
type ServiceBlock struct {
	// Position is the 1-based column group the block came from. It is kept
	// for traceability only and plays no role in matching.
	Position int
	// Codes holds the block's normalized service codes.
	Codes []string
	// Start and End are canonical HH:MM, 24-hour.
	Start string
	End   string
}

// CalendarDay records which service code runs on a date, plus descriptive
// fields used only for display.
type CalendarDay struct {
	// Date is the ISO form the day is indexed under.
	Date string
	// Service is the day's normalized service code, or "" when the source
	// row carried none.
	Service  string
	Weekday  string
	MonthDay string
	DayNum   string
}
