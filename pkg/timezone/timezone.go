// Package timezone answers "where in the world is it H o'clock right now"
// by brute-force scanning the IANA zone list. At ~400 zones per tick this is
// cheap; time.LoadLocation caches parsed zone data after the first hit.
package timezone

import (
	"time"
	_ "time/tzdata"
)

// ZonesAtHour returns the identifiers whose local wall-clock hour equals the
// given hour at the given instant. The comparison is plain hour equality, so
// daylight-saving transitions can match a zone twice in one day (fall back)
// or skip it (spring forward).
func ZonesAtHour(now time.Time, hour int) []string {
	var matched []string
	for _, name := range Identifiers {
		loc, err := time.LoadLocation(name)
		if err != nil {
			continue
		}
		if now.In(loc).Hour() == hour {
			matched = append(matched, name)
		}
	}
	return matched
}

// LocalDayRange returns the local midnight-to-midnight instant range
// containing the given instant in the named zone.
func LocalDayRange(now time.Time, name string) (start, end time.Time, err error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	local := now.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}
