package torn

import "strings"

// codeWidth is the canonical width of a service code. Shorter raw tokens are
// right-padded with spaces; the third character is a sub-variant digit that
// is not significant for matching.
const codeWidth = 3

// NormalizeCode canonicalizes a raw service-code token: trim, then right-pad
// with spaces to three characters. Empty input yields the empty string, the
// sentinel for "no code". Tokens longer than three characters are returned
// as-is; splitting multi-code fields is SplitCodes' job.
func NormalizeCode(raw string) string {
	if raw == "" {
		return ""
	}
	code := strings.TrimSpace(raw)
	for len(code) < codeWidth {
		code += " "
	}
	return code
}

// SplitCodes splits a raw service field into individual normalized codes.
// Comma-separated fields are split on the comma, dropping pieces that are
// blank after normalization. Fields without a comma are sliced into
// fixed-width groups of three; a trailing partial group is still emitted,
// padded. An empty field yields no codes.
func SplitCodes(raw string) []string {
	if raw == "" {
		return nil
	}
	if strings.Contains(raw, ",") {
		var codes []string
		for _, piece := range strings.Split(raw, ",") {
			code := NormalizeCode(piece)
			if strings.TrimSpace(code) == "" {
				continue
			}
			codes = append(codes, code)
		}
		return codes
	}
	var codes []string
	for i := 0; i < len(raw); i += codeWidth {
		end := i + codeWidth
		if end > len(raw) {
			end = len(raw)
		}
		codes = append(codes, NormalizeCode(raw[i:end]))
	}
	return codes
}

// CodesMatch reports whether two service codes identify the same schedule.
// Both sides are normalized and compared on their first two characters only.
// This is the single comparison primitive used throughout the package.
func CodesMatch(a, b string) bool {
	return matchKey(a) == matchKey(b)
}

func matchKey(code string) string {
	c := NormalizeCode(code)
	if len(c) > 2 {
		c = c[:2]
	}
	return c
}
