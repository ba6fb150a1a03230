package response

import "time"

type Profile struct {
	Email      string    `json:"email"`
	RouteCount int       `json:"routeCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ResFetchRoutes struct {
	UserID           string  `json:"userId"`
	Profile          Profile `json:"profile"`
	RouteCount       int     `json:"routeCount"`
	ActiveRouteCount int     `json:"activeRouteCount"`
	MaxRoutes        int     `json:"maxRoutes"`
	Routes           []Route `json:"routes"`
}
