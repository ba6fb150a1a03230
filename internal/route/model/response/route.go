// Package response holds the route lifecycle API's wire-level response
// shapes, rendered from entity.* records.
package response

import "time"

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Waypoint struct {
	Location struct {
		LatLng LatLng `json:"latLng"`
	} `json:"location"`
	Label   string `json:"label"`
	PlaceID string `json:"placeId,omitempty"`
}

// Route is the full route shape returned inline by create and fetch, so
// the client can render without a follow-up request.
type Route struct {
	RouteID         string     `json:"routeId"`
	Title           string     `json:"title"`
	Origin          Waypoint   `json:"origin"`
	Destination     Waypoint   `json:"destination"`
	Intermediates   []Waypoint `json:"intermediates,omitempty"`
	TravelMode      string     `json:"travelMode"`
	StaticDuration  int        `json:"staticDuration"`
	TrafficDuration *int       `json:"trafficDuration,omitempty"`
	DistanceMeters  *int       `json:"distanceMeters,omitempty"`
	CityKey         string     `json:"cityKey"`
	UserActive      bool       `json:"userActive"`
	Geometry        string     `json:"geometry,omitempty"`

	ArriveBy   string   `json:"arriveBy"`
	Timezone   string   `json:"timezone"`
	DaysOfWeek []string `json:"daysOfWeek"`

	ForecastStatus string                 `json:"forecastStatus"`
	Forecast       map[string]DayForecast `json:"forecast,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DayForecast struct {
	ForecastDate     string `json:"forecastDate"`
	AdjustedDepartBy string `json:"adjustedDepartBy"`
	ExtraBufferMins  int    `json:"extraBufferMins"`
	Reasoning        string `json:"reasoning"`
	HasWeatherData   bool   `json:"hasWeatherData"`
	HasEventData     bool   `json:"hasEventData"`
}
