package torn

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mfiguera/torn/warnings"
)

func TestBuildShiftTable(t *testing.T) {
	for _, tc := range []struct {
		desc      string
		rows      []Row
		want      map[string]Shift
		wantWarns []warnings.Warning
	}{
		{
			desc: "shift with one complete block",
			rows: []Row{{
				"Torn": "a1", "Línia": "L1", "Zona": "Z2",
				"Servei 1": "800", "Inici S1": "6:00", "Final S1": "14:00",
			}},
			want: map[string]Shift{
				"A1": {
					ID: "A1", Line: "L1", Zone: "Z2",
					Blocks: []ServiceBlock{
						{Position: 1, Codes: []string{"800"}, Start: "06:00", End: "14:00"},
					},
				},
			},
		},
		{
			desc: "row without identifier is skipped",
			rows: []Row{{
				"Servei 1": "800", "Inici S1": "06:00", "Final S1": "14:00",
			}},
			want:      map[string]Shift{},
			wantWarns: []warnings.Warning{warnings.ShiftMissingID{RowNumber: 1}},
		},
		{
			desc: "row with no complete block is excluded entirely",
			rows: []Row{{
				"Torn": "B2", "Servei 1": "800", "Inici S1": "06:00",
			}},
			want:      map[string]Shift{},
			wantWarns: []warnings.Warning{warnings.ShiftWithoutBlocks{ShiftID: "B2", RowNumber: 1}},
		},
		{
			desc: "incomplete column groups are dropped, complete ones kept",
			rows: []Row{{
				"Torn":     "C3",
				"Servei 1": "800", "Inici S1": "06:00",
				"Servei 2": "900", "Inici S2": "14:00", "Final S2": "22:00",
			}},
			want: map[string]Shift{
				"C3": {
					ID: "C3",
					Blocks: []ServiceBlock{
						{Position: 2, Codes: []string{"900"}, Start: "14:00", End: "22:00"},
					},
				},
			},
		},
		{
			desc: "accentless line column and numeric service codes",
			rows: []Row{{
				"Torn": "D4", "Linia": "LA",
				"Servei 1": float64(800), "Inici S1": "05:30", "Final S1": "13:00",
			}},
			want: map[string]Shift{
				"D4": {
					ID: "D4", Line: "LA",
					Blocks: []ServiceBlock{
						{Position: 1, Codes: []string{"800"}, Start: "05:30", End: "13:00"},
					},
				},
			},
		},
		{
			desc: "multi-code block and four groups",
			rows: []Row{{
				"Torn":     "E5",
				"Servei 1": "800,801", "Inici S1": "05:00", "Final S1": "09:00",
				"Servei 2": "200", "Inici S2": "09:00", "Final S2": "13:00",
				"Servei 3": "300", "Inici S3": "13:00", "Final S3": "17:00",
				"Servei 4": "455450", "Inici S4": "17:00", "Final S4": "21:00",
			}},
			want: map[string]Shift{
				"E5": {
					ID: "E5",
					Blocks: []ServiceBlock{
						{Position: 1, Codes: []string{"800", "801"}, Start: "05:00", End: "09:00"},
						{Position: 2, Codes: []string{"200"}, Start: "09:00", End: "13:00"},
						{Position: 3, Codes: []string{"300"}, Start: "13:00", End: "17:00"},
						{Position: 4, Codes: []string{"455", "450"}, Start: "17:00", End: "21:00"},
					},
				},
			},
		},
		{
			desc: "repeated identifier: last row wins",
			rows: []Row{
				{"Torn": "F6", "Servei 1": "100", "Inici S1": "06:00", "Final S1": "14:00"},
				{"Torn": "f6", "Servei 1": "200", "Inici S1": "07:00", "Final S1": "15:00"},
			},
			want: map[string]Shift{
				"F6": {
					ID: "F6",
					Blocks: []ServiceBlock{
						{Position: 1, Codes: []string{"200"}, Start: "07:00", End: "15:00"},
					},
				},
			},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			dataset, warns := BuildDataset(tc.rows, nil)
			if diff := cmp.Diff(tc.want, dataset.Shifts); diff != "" {
				t.Errorf("shift table diff (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantWarns, warns); diff != "" {
				t.Errorf("warnings diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildCalendarTable(t *testing.T) {
	rows := []Row{
		{"Data": "2024-03-04", "Servei BV": "800", "Dia_Set": "Dilluns", "Dia_Mes": "Març", "Dia_Num": float64(4)},
		{"Data": "05/03/2024", "Servei BV": "9"},
		{"Servei BV": "100"},
		{"Data": "2024-03-04", "Servei BV": "900"},
		{"Data": "2024-03-06"},
	}
	dataset, warns := BuildDataset(nil, rows)
	want := map[string]CalendarDay{
		"2024-03-04": {Date: "2024-03-04", Service: "900"},
		"2024-03-05": {Date: "2024-03-05", Service: "9  "},
		"2024-03-06": {Date: "2024-03-06"},
	}
	if diff := cmp.Diff(want, dataset.Calendar); diff != "" {
		t.Errorf("calendar table diff (-want +got):\n%s", diff)
	}
	wantWarns := []warnings.Warning{warnings.CalendarMissingDate{RowNumber: 3}}
	if diff := cmp.Diff(wantWarns, warns); diff != "" {
		t.Errorf("warnings diff (-want +got):\n%s", diff)
	}
}

func TestFormatTime(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want string
	}{
		{"", "00:00"},
		{"6:00", "06:00"},
		{"06:00", "06:00"},
		{"23:45", "23:45"},
		{"06:00:30", "06:00"},
		{"7:05:30", "7:05:"},
		{"7:5", "7:5"},
		{" 8:15 ", "08:15"},
		{"whenever", "whenever"},
	} {
		if got := FormatTime(tc.raw); got != tc.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want string
	}{
		{"2024-03-05", "2024-03-05"},
		{"05/03/2024", "2024-03-05"},
		{"5/3/2024", "2024-03-05"},
		{"5/3", "5/3"},
		{"yesterday", "yesterday"},
		{"", ""},
	} {
		if got := NormalizeDate(tc.raw); got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
