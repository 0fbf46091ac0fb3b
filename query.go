package torn

import "strings"

// NoService is the sentinel returned when a date has no resolvable service
// code. It is an expected outcome, not an error.
const NoService = "N/A"

// substitutionLine is the one line with a service substitution table:
// service 800 runs as 200 and 900 as 300 on line LA.
const substitutionLine = "LA"

// Result is one matching service block projected for display.
type Result struct {
	Torn  string `json:"torn"`
	Inici string `json:"inici"`
	Fi    string `json:"fi"`
	Linia string `json:"linia"`
	Zona  string `json:"zona"`
}

// EffectiveService computes the service code a shift's blocks must be
// matched against on a day. For line LA a day service matching 800 becomes
// 200 and one matching 900 becomes 300; every other line gets the
// normalized day service unchanged.
//
// The substitution applies to the query side only: stored block codes are
// never rewritten, so an LA block coded "800" does not run on an 800 day.
func EffectiveService(dayService, line string) string {
	service := NormalizeCode(dayService)
	if line == substitutionLine {
		if CodesMatch(service, "800") {
			return NormalizeCode("200")
		}
		if CodesMatch(service, "900") {
			return NormalizeCode("300")
		}
	}
	return service
}

// Match returns the shift's blocks active under the effective service, in
// stored position order. A block matches when any of its codes matches.
func Match(shift Shift, effectiveService string) []Result {
	var results []Result
	for _, block := range shift.Blocks {
		for _, code := range block.Codes {
			if CodesMatch(code, effectiveService) {
				results = append(results, Result{
					Torn:  shift.ID,
					Inici: block.Start,
					Fi:    block.End,
					Linia: shift.Line,
					Zona:  shift.Zone,
				})
				break
			}
		}
	}
	return results
}

// ServiceOn returns the service code in effect on a date, or NoService when
// the date is unknown or its row carried no code. The date is normalized
// first, so both ISO and D/M/Y input resolve.
func (d *Dataset) ServiceOn(date string) string {
	day, ok := d.Calendar[NormalizeDate(date)]
	if !ok || day.Service == "" {
		return NoService
	}
	return day.Service
}

// Lookup resolves a full query: the day's service (for display) and the
// matching blocks of the identified shift. The shift identifier is
// case-insensitive. Unknown dates, unknown shifts and shifts with no
// matching block all yield an empty result list.
func (d *Dataset) Lookup(date, shiftID string) ([]Result, string) {
	dayService := d.ServiceOn(date)
	if dayService == NoService {
		return nil, dayService
	}
	shift, ok := d.Shifts[strings.ToUpper(strings.TrimSpace(shiftID))]
	if !ok {
		return nil, dayService
	}
	return Match(shift, EffectiveService(dayService, shift.Line)), dayService
}
