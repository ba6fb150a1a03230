// Package request holds the route lifecycle API's wire-level DTOs,
// validated at the boundary and never persisted directly.
package request

type LatLng struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

type Location struct {
	LatLng LatLng `json:"latLng" validate:"required"`
}

// Waypoint matches the place-picker's pre-resolved coordinate shape:
// { location: { latLng: { latitude, longitude } }, label, placeId? }.
type Waypoint struct {
	Location Location `json:"location" validate:"required"`
	Label    string   `json:"label" validate:"required"`
	PlaceID  string   `json:"placeId,omitempty"`
}
