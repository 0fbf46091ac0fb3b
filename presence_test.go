package torn

import "testing"

const presenceMap = `# Mapa de presència

Introducció general.

## Torn A1

Presència al vestíbul.

### Matí

Andana 1.

## Torn B2

Presència a taquilles.

## Torn A1 bis

Variant de reforç.
`

func TestExtractSection(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		shiftID string
		want    string
	}{
		{
			desc:    "section with nested sub-heading",
			shiftID: "A1",
			want:    "## Torn A1\n\nPresència al vestíbul.\n\n### Matí\n\nAndana 1.\n",
		},
		{
			desc:    "case-insensitive heading match",
			shiftID: "b2",
			want:    "## Torn B2\n\nPresència a taquilles.\n",
		},
		{
			desc:    "no matching heading",
			shiftID: "C3",
			want:    "",
		},
		{
			desc:    "empty identifier",
			shiftID: "",
			want:    "",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			if got := ExtractSection(presenceMap, tc.shiftID); got != tc.want {
				t.Errorf("ExtractSection(%q) = %q, want %q", tc.shiftID, got, tc.want)
			}
		})
	}
}

func TestExtractSectionFirstMatchOnly(t *testing.T) {
	// "A1" also appears in the later "Torn A1 bis" heading; only the first
	// matching section is returned.
	got := ExtractSection(presenceMap, "A1")
	if want := "## Torn A1\n\nPresència al vestíbul.\n\n### Matí\n\nAndana 1.\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractSectionStopsAtShallowerHeading(t *testing.T) {
	md := "### Torn X9\ncontent\n# Chapter\nmore"
	if got, want := ExtractSection(md, "X9"), "### Torn X9\ncontent"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
