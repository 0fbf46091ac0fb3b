package weather

import (
	"strings"

	"github.com/mfiguera/torn/internal/jsonutil"
)

// Station is one entry of the station directory.
type Station struct {
	ID   string `json:"ID"`
	Name string `json:"Nom"`
}

// Directory is the searchable station list.
type Directory struct {
	stations []Station
}

// minQueryLength avoids flooding the caller with matches on one-character
// queries.
const minQueryLength = 2

// LoadDirectory decodes the station directory, dropping entries without an
// ID or a name. The file is hand-maintained, so trailing commas are
// tolerated.
func LoadDirectory(b []byte) (*Directory, error) {
	var raw []Station
	if err := jsonutil.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	d := &Directory{}
	for _, s := range raw {
		if s.ID == "" || s.Name == "" {
			continue
		}
		d.stations = append(d.stations, s)
	}
	return d, nil
}

// Len returns the number of valid stations.
func (d *Directory) Len() int {
	return len(d.stations)
}

// Search returns up to limit stations whose name or ID contains the query,
// case-insensitively. Queries shorter than two characters match nothing.
func (d *Directory) Search(query string, limit int) []Station {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minQueryLength {
		return nil
	}
	var matches []Station
	for _, s := range d.stations {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.ID), query) {
			matches = append(matches, s)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
