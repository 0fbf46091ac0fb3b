package torn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mfiguera/torn/constants"
	"github.com/mfiguera/torn/warnings"
)

// Row is a single raw record keyed by column name. Values are whatever the
// source decoder produced; the spreadsheet exports mix strings and numbers
// for the same column, so fields are coerced to strings on access.
type Row map[string]any

// Field returns the first non-empty value among the given columns, coerced
// to a string. Missing columns read as the empty string.
func (r Row) Field(columns ...string) string {
	for _, column := range columns {
		if s := coerce(r[column]); s != "" {
			return s
		}
	}
	return ""
}

func coerce(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON numbers decode as float64. Service codes and day numbers
		// are integral, so format without an exponent or trailing zeros.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// BuildDataset transforms raw shift and calendar rows into a fresh Dataset.
// Rows with missing required fields are skipped and reported as warnings;
// the build itself never fails. Later rows overwrite earlier ones that
// repeat a shift identifier or a date.
func BuildDataset(shiftRows, calendarRows []Row) (*Dataset, []warnings.Warning) {
	dataset := &Dataset{
		Shifts:   map[string]Shift{},
		Calendar: map[string]CalendarDay{},
	}
	var warns []warnings.Warning
	for i, row := range shiftRows {
		id := row.Field(constants.TornColumn)
		if id == "" {
			warns = append(warns, warnings.ShiftMissingID{RowNumber: i + 1})
			continue
		}
		var blocks []ServiceBlock
		for position := 1; position <= MaxBlocks; position++ {
			service := row.Field(fmt.Sprintf(constants.ServiceColumnFormat, position))
			start := row.Field(fmt.Sprintf(constants.StartColumnFormat, position))
			end := row.Field(fmt.Sprintf(constants.EndColumnFormat, position))
			// A block exists only when all three of its fields are present.
			if service == "" || start == "" || end == "" {
				continue
			}
			blocks = append(blocks, ServiceBlock{
				Position: position,
				Codes:    SplitCodes(service),
				Start:    FormatTime(start),
				End:      FormatTime(end),
			})
		}
		if len(blocks) == 0 {
			warns = append(warns, warnings.ShiftWithoutBlocks{ShiftID: id, RowNumber: i + 1})
			continue
		}
		key := strings.ToUpper(id)
		dataset.Shifts[key] = Shift{
			ID:     key,
			Line:   row.Field(constants.LineColumn, constants.LineAsciiColumn),
			Zone:   row.Field(constants.ZoneColumn),
			Blocks: blocks,
		}
	}
	for i, row := range calendarRows {
		date := row.Field(constants.DateColumn)
		if date == "" {
			warns = append(warns, warnings.CalendarMissingDate{RowNumber: i + 1})
			continue
		}
		iso := NormalizeDate(date)
		dataset.Calendar[iso] = CalendarDay{
			Date:     iso,
			Service:  NormalizeCode(strings.TrimSpace(row.Field(constants.DayServiceColumn))),
			Weekday:  row.Field(constants.WeekdayColumn),
			MonthDay: row.Field(constants.MonthDayColumn),
			DayNum:   row.Field(constants.DayNumColumn),
		}
	}
	return dataset, warns
}

var (
	hourMinute       = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	hourMinuteSecond = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	isoDate          = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// FormatTime canonicalizes a raw time value to HH:MM. Empty input yields
// "00:00"; H:MM gains a leading zero; H:MM:SS and HH:MM:SS are cut to their
// first five characters. Anything else passes through trimmed but otherwise
// unchanged, since upstream data quality varies and an odd-looking cell is
// better shown than dropped.
func FormatTime(raw string) string {
	if raw == "" {
		return "00:00"
	}
	t := strings.TrimSpace(raw)
	switch {
	case hourMinute.MatchString(t):
		if strings.IndexByte(t, ':') == 1 {
			return "0" + t
		}
		return t
	case hourMinuteSecond.MatchString(t):
		return t[:5]
	}
	return t
}

// NormalizeDate converts a raw date to ISO YYYY-MM-DD. ISO input passes
// through; three slash-separated parts are read as D/M/Y and reassembled
// with day and month padded to two digits. Any other form passes through
// unchanged and will simply never match a calendar lookup.
func NormalizeDate(raw string) string {
	if isoDate.MatchString(raw) {
		return raw
	}
	parts := strings.Split(raw, "/")
	if len(parts) == 3 {
		return parts[2] + "-" + padDatePart(parts[1]) + "-" + padDatePart(parts[0])
	}
	return raw
}

func padDatePart(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
