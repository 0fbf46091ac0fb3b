// Package jsonutil decodes the JSON exports the scheduling tools produce,
// which occasionally carry trailing commas before a closing bracket.
package jsonutil

import "encoding/json"

// Unmarshal decodes b into v. If strict decoding fails, it retries once
// with trailing commas removed.
func Unmarshal(b []byte, v any) error {
	if err := json.Unmarshal(b, v); err == nil {
		return nil
	}
	return json.Unmarshal(stripTrailingCommas(b), v)
}

// stripTrailingCommas removes commas directly preceding a closing ] or },
// ignoring anything inside string literals.
func stripTrailingCommas(b []byte) []byte {
	out := make([]byte, 0, len(b))
	inString := false
	escaped := false
	for _, c := range b {
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case ']', '}':
			// Drop a comma that ends up adjacent to the closer once
			// intervening whitespace is skipped back over.
			i := len(out) - 1
			for i >= 0 && (out[i] == ' ' || out[i] == '\t' || out[i] == '\n' || out[i] == '\r') {
				i--
			}
			if i >= 0 && out[i] == ',' {
				out = append(out[:i], out[i+1:]...)
			}
		}
		out = append(out, c)
	}
	return out
}
