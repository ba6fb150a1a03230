package request

// ReqUpdateRoute carries only the fields the caller wants to change;
// pointer fields distinguish "not provided" from the zero value. Fields
// are partitioned into the route set and the schedule set, and the
// transaction only touches the item whose set has at least one entry.
type ReqUpdateRoute struct {
	RouteID string `json:"routeId" validate:"required"`

	Title           *string     `json:"title,omitempty"`
	Origin          *Waypoint   `json:"origin,omitempty"`
	Destination     *Waypoint   `json:"destination,omitempty"`
	Intermediates   *[]Waypoint `json:"intermediates,omitempty"`
	TravelMode      *string     `json:"travelMode,omitempty"`
	StaticDuration  *string     `json:"staticDuration,omitempty"`
	TrafficDuration *string     `json:"trafficDuration,omitempty"`
	DistanceMeters  *int        `json:"distanceMeters,omitempty"`
	Geometry        *string     `json:"geometry,omitempty"`
	UserActive      *bool       `json:"userActive,omitempty"`

	ArriveBy   *string   `json:"arriveBy,omitempty"`
	Timezone   *string   `json:"timezone,omitempty"`
	DaysOfWeek *[]string `json:"daysOfWeek,omitempty"`
}
