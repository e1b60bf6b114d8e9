// Package sheet handles the scouting spreadsheet: CSV import/export and
// coordinate extraction from shared map links.
package sheet

import (
	"regexp"
	"strconv"

	"scout/internal/domain/entity"
)

// coordPattern pairs a compiled expression with a short name for logging.
type coordPattern struct {
	name string
	re   *regexp.Regexp
}

// coordPatterns is the ordered matcher ladder for shared map URLs. Order
// matters: the specific formats run first so e.g. a directions link with both
// an address slug and a !3d!4d blob resolves through the intended pattern.
var coordPatterns = []coordPattern{
	// https://www.google.com/maps/place/Somewhere/@47.3774241,8.5331746,17z/
	{"at", regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)},
	// https://www.google.com/maps?q=47.3774241,8.5331746
	{"q", regexp.MustCompile(`[?&]q=(-?\d+\.\d+),(-?\d+\.\d+)`)},
	// https://www.google.com/maps?daddr=47.3774241,8.5331746 (or saddr=)
	{"addr", regexp.MustCompile(`[?&][ds]addr=(-?\d+\.\d+),(-?\d+\.\d+)`)},
	// https://www.google.com/maps/dir//Place/data=!3d47.3774241!4d8.5331746
	{"data", regexp.MustCompile(`!3d(-?\d+\.\d+)!4d(-?\d+\.\d+)`)},
	// https://www.google.com/maps?ll=47.3774241,8.5331746
	{"ll", regexp.MustCompile(`[?&]ll=(-?\d+\.\d+),(-?\d+\.\d+)`)},
	// https://www.google.com/maps/search/47.030515,+8.295879?entry=tts
	{"search", regexp.MustCompile(`/maps/search/(-?\d+\.\d+),[+\s]*(-?\d+\.\d+)`)},
}

// genericPattern catches a bare decimal pair anywhere in the URL.
var genericPattern = regexp.MustCompile(`\b(-?\d+\.\d+),\s*(-?\d+\.\d+)\b`)

// ExtractCoords pulls a coordinate out of a shared map URL. It walks the
// matcher ladder in order and returns nil when nothing matches. Every
// extracted pair must pass the coordinate bounds gate before it is accepted,
// so version numbers and similar noise never become coordinates; a pattern
// whose match fails the gate falls through to the next rung.
func ExtractCoords(rawURL string) *entity.Coordinate {
	if rawURL == "" {
		return nil
	}

	for _, pattern := range coordPatterns {
		if coord := matchCoord(pattern.re, rawURL); coord != nil && coord.Valid() {
			return coord
		}
	}

	if coord := matchCoord(genericPattern, rawURL); coord != nil && coord.Valid() {
		return coord
	}

	return nil
}

func matchCoord(re *regexp.Regexp, rawURL string) *entity.Coordinate {
	match := re.FindStringSubmatch(rawURL)
	if len(match) < 3 {
		return nil
	}

	lat, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return nil
	}

	return &entity.Coordinate{Lat: lat, Lng: lng}
}
