// Package entity holds the route store's persisted record shapes: one
// user profile, and per-route ROUTE#, SCHEDULE#, and FORECAST# records,
// all sharing partition key userId, following the composite-key layout
// the data model is built around.
package entity

import "time"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Latitude  float64 `dynamodbav:"latitude"`
	Longitude float64 `dynamodbav:"longitude"`
}

// Waypoint is a pre-resolved place: the core never geocodes, it only
// accepts coordinates and a label from the upstream place picker.
type Waypoint struct {
	Location LatLng `dynamodbav:"location"`
	Label    string `dynamodbav:"label"`
	PlaceID  string `dynamodbav:"placeId,omitempty"`
}

// TravelMode enumerates the modes the mobile client can request.
type TravelMode string

const (
	TravelModeDrive      TravelMode = "DRIVE"
	TravelModeTransit    TravelMode = "TRANSIT"
	TravelModeWalk       TravelMode = "WALK"
	TravelModeTwoWheeler TravelMode = "TWO_WHEELER"
	TravelModeBicycle    TravelMode = "BICYCLE"
)

func ValidTravelModes() []TravelMode {
	return []TravelMode{TravelModeDrive, TravelModeTransit, TravelModeWalk, TravelModeTwoWheeler, TravelModeBicycle}
}

// Route is the ROUTE#<routeId> item.
type Route struct {
	UserID          string     `dynamodbav:"userId"`
	RouteID         string     `dynamodbav:"routeId"`
	Title           string     `dynamodbav:"title"`
	Origin          Waypoint   `dynamodbav:"origin"`
	Destination     Waypoint   `dynamodbav:"destination"`
	Intermediates   []Waypoint `dynamodbav:"intermediates,omitempty"`
	TravelMode      TravelMode `dynamodbav:"travelMode"`
	StaticDuration  int        `dynamodbav:"staticDuration"`
	TrafficDuration *int       `dynamodbav:"trafficDuration,omitempty"`
	DistanceMeters  *int       `dynamodbav:"distanceMeters,omitempty"`
	CityKey         string     `dynamodbav:"cityKey"`
	CityLat         float64    `dynamodbav:"cityLat"`
	CityLng         float64    `dynamodbav:"cityLng"`
	UserActive      bool       `dynamodbav:"userActive"`
	Geometry        string     `dynamodbav:"geometry,omitempty"`
	CreatedAt       time.Time  `dynamodbav:"createdAt"`
	UpdatedAt       time.Time  `dynamodbav:"updatedAt"`
}

// ForecastAffectingFields lists the Route fields whose change must
// invalidate any existing forecast.
func ForecastAffectingRouteFields() map[string]struct{} {
	return map[string]struct{}{
		"origin":          {},
		"destination":     {},
		"intermediates":   {},
		"travelMode":      {},
		"staticDuration":  {},
		"trafficDuration": {},
	}
}
