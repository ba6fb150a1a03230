// Package cityindex tracks which cities currently have at least one active
// route, so the nightly scrapers only fetch weather and events for cities
// actually in use instead of every city ever seen.
package cityindex

import "time"

// Record is a single city's row in the city index table. PK is
// "CITY#<cityKey>", SK is a constant "INDEX" sort key, matching the
// single-item-per-partition shape used throughout this store.
type Record struct {
	CityKey           string
	City              string
	CountryCode       string
	CityLat           float64
	CityLng           float64
	ActiveRouteCount  int
	FirstRegisteredAt time.Time
	LastActiveAt      time.Time
}
