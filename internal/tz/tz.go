// Package tz holds the fixed timezone hammer records times in.
package tz

import "time"

const (
	// Offset is the fixed distance from UTC. There is no daylight adjustment.
	Offset = -5 * time.Hour

	// Name is the zone abbreviation reported by times in Location.
	Name = "UTC-5"
)

// Location is the fixed-offset zone built from Offset.
var Location = time.FixedZone(Name, int(Offset/time.Second))

// Now returns the current time in Location.
func Now() time.Time {
	return time.Now().In(Location)
}

// In converts t to Location.
func In(t time.Time) time.Time {
	return t.In(Location)
}
