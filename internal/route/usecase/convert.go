package usecase

import (
	"github.com/commutecast/backend/internal/route/model/entity"
	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/internal/route/model/response"
)

func toEntityWaypoint(w request.Waypoint) entity.Waypoint {
	return entity.Waypoint{
		Location: entity.LatLng{
			Latitude:  w.Location.LatLng.Latitude,
			Longitude: w.Location.LatLng.Longitude,
		},
		Label:   w.Label,
		PlaceID: w.PlaceID,
	}
}

func toEntityWaypoints(ws []request.Waypoint) []entity.Waypoint {
	out := make([]entity.Waypoint, 0, len(ws))
	for _, w := range ws {
		out = append(out, toEntityWaypoint(w))
	}
	return out
}

func toResponseWaypoint(w entity.Waypoint) response.Waypoint {
	var out response.Waypoint
	out.Location.LatLng = response.LatLng{Latitude: w.Location.Latitude, Longitude: w.Location.Longitude}
	out.Label = w.Label
	out.PlaceID = w.PlaceID
	return out
}

func toResponseWaypoints(ws []entity.Waypoint) []response.Waypoint {
	out := make([]response.Waypoint, 0, len(ws))
	for _, w := range ws {
		out = append(out, toResponseWaypoint(w))
	}
	return out
}

func daysToStrings(days []entity.DayOfWeek) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, string(d))
	}
	return out
}

func forecastStatus(schedule *entity.Schedule, forecast *entity.Forecast) string {
	if forecast != nil {
		return string(entity.ForecastStatusActive)
	}
	if schedule != nil && len(schedule.DaysOfWeek) > 0 {
		return string(entity.ForecastStatusPending)
	}
	return string(entity.ForecastStatusEmpty)
}

func toResponseForecast(f *entity.Forecast) map[string]response.DayForecast {
	if f == nil {
		return nil
	}
	out := make(map[string]response.DayForecast, len(f.Days))
	for day, d := range f.Days {
		out[day] = response.DayForecast{
			ForecastDate:     d.ForecastDate,
			AdjustedDepartBy: d.Recommendation.AdjustedDepartBy.UTC().Format("2006-01-02T15:04:05Z"),
			ExtraBufferMins:  d.Recommendation.ExtraBufferMins,
			Reasoning:        d.Recommendation.Reasoning,
			HasWeatherData:   d.HasWeatherData,
			HasEventData:     d.HasEventData,
		}
	}
	return out
}

func toResponseRoute(route entity.Route, schedule *entity.Schedule, forecast *entity.Forecast) response.Route {
	out := response.Route{
		RouteID:         route.RouteID,
		Title:           route.Title,
		Origin:          toResponseWaypoint(route.Origin),
		Destination:     toResponseWaypoint(route.Destination),
		Intermediates:   toResponseWaypoints(route.Intermediates),
		TravelMode:      string(route.TravelMode),
		StaticDuration:  route.StaticDuration,
		TrafficDuration: route.TrafficDuration,
		DistanceMeters:  route.DistanceMeters,
		CityKey:         route.CityKey,
		UserActive:      route.UserActive,
		Geometry:        route.Geometry,
		ForecastStatus:  forecastStatus(schedule, forecast),
		Forecast:        toResponseForecast(forecast),
		CreatedAt:       route.CreatedAt,
		UpdatedAt:       route.UpdatedAt,
	}
	if schedule != nil {
		out.ArriveBy = schedule.ArriveBy
		out.Timezone = schedule.Timezone
		out.DaysOfWeek = daysToStrings(schedule.DaysOfWeek)
	}
	return out
}
