// Package weather reads meteoclimatic station RSS feeds: the current
// observation travels inside the feed text as a packed bracket block, with
// coordinates in the usual georss/geo elements.
package weather

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Observation is one station reading.
type Observation struct {
	StationCode string    `json:"station_code"`
	StationName string    `json:"station_name"`
	PublishedAt time.Time `json:"published_at"`
	Temperature Range     `json:"temperature"`
	Humidity    Range     `json:"humidity"`
	Pressure    Range     `json:"pressure"`
	Wind        Wind      `json:"wind"`
	// Precipitation is the accumulated rainfall in mm, as published.
	Precipitation string `json:"precipitation"`
	Latitude      string `json:"latitude,omitempty"`
	Longitude     string `json:"longitude,omitempty"`
}

// Range is a current/maximum/minimum triple, kept as published (the feed
// mixes decimal formats, so no numeric parsing is attempted).
type Range struct {
	Current string `json:"current"`
	Max     string `json:"max"`
	Min     string `json:"min"`
}

type Wind struct {
	Current string `json:"current"`
	Max     string `json:"max"`
	// Direction is in degrees.
	Direction string `json:"direction"`
}

type rssDocument struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	PubDate string `xml:"pubDate"`
	Point   string `xml:"http://www.georss.org/georss point"`
	Lat     string `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# lat"`
	Long    string `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# long"`
}

// observationPattern matches the packed block, e.g.
// [[<ESCAT08...;(12.3;15.0;8.1);(60;80;40);(1013;1015;1009);(10;30;270);(0.2);Molins de Rei>]]
var observationPattern = regexp.MustCompile(`\[\[<([A-Z0-9]+);\(([^)]+)\);\(([^)]+)\);\(([^)]+)\);\(([^)]+)\);\(([^)]+)\);(.+?)>\]\]`)

// ParseFeed extracts the observation from a station's RSS feed.
func ParseFeed(feed []byte) (*Observation, error) {
	match := observationPattern.FindSubmatch(feed)
	if match == nil {
		return nil, fmt.Errorf("feed contains no observation block")
	}
	obs := &Observation{
		StationCode:   string(match[1]),
		Temperature:   parseRange(string(match[2])),
		Humidity:      parseRange(string(match[3])),
		Pressure:      parseRange(string(match[4])),
		Wind:          parseWind(string(match[5])),
		Precipitation: strings.TrimSpace(string(match[6])),
		StationName:   strings.TrimSpace(string(match[7])),
	}
	// The XML envelope is best-effort: a malformed channel still yields the
	// observation, just without timestamp and coordinates.
	var doc rssDocument
	if err := xml.Unmarshal(feed, &doc); err == nil && len(doc.Items) > 0 {
		item := doc.Items[0]
		obs.PublishedAt = parsePubDate(item.PubDate)
		if point := strings.Fields(item.Point); len(point) == 2 {
			obs.Latitude, obs.Longitude = point[0], point[1]
		} else if item.Lat != "" && item.Long != "" {
			obs.Latitude = strings.TrimSpace(item.Lat)
			obs.Longitude = strings.TrimSpace(item.Long)
		}
	}
	return obs, nil
}

func parseRange(raw string) Range {
	parts := splitReadings(raw)
	return Range{Current: parts[0], Max: parts[1], Min: parts[2]}
}

func parseWind(raw string) Wind {
	parts := splitReadings(raw)
	return Wind{Current: parts[0], Max: parts[1], Direction: parts[2]}
}

func splitReadings(raw string) [3]string {
	var out [3]string
	for i, part := range strings.SplitN(raw, ";", 3) {
		out[i] = strings.TrimSpace(part)
	}
	return out
}

func parsePubDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
