package torn

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`^(#+)\s+(.*)`)

// ExtractSection returns the part of a markdown presence map that belongs to
// a shift: the first heading whose text contains the identifier
// (case-insensitively) opens the section, which runs through any deeper
// sub-headings and ends just before the next heading of equal or shallower
// level. Only the first matching section is returned; no match yields "".
func ExtractSection(markdown, shiftID string) string {
	if shiftID == "" {
		return ""
	}
	query := strings.ToLower(shiftID)
	var section []string
	capturing := false
	openLevel := 0
	for _, line := range strings.Split(markdown, "\n") {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			if capturing {
				section = append(section, line)
			}
			continue
		}
		level := len(m[1])
		if capturing {
			if level <= openLevel {
				break
			}
			section = append(section, line)
			continue
		}
		if strings.Contains(strings.ToLower(m[2]), query) {
			capturing = true
			openLevel = level
			section = append(section, line)
		}
	}
	return strings.Join(section, "\n")
}
