package usecase

import (
	"context"
	"fmt"

	"github.com/commutecast/backend/internal/route/model/entity"
	_interface "github.com/commutecast/backend/internal/route/model/interface"
	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/internal/route/model/response"
	apperrors "github.com/commutecast/backend/shared/errors"
)

func (u *RouteUseCase) UpdateRoute(c context.Context, userID string, req *request.ReqUpdateRoute) (*response.ResUpdateRoute, error) {
	ctx, cancel := context.WithTimeout(c, u.ContextTimeout)
	defer cancel()

	route, schedule, _, err := u.Repository.GetRoute(ctx, userID, req.RouteID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if route == nil {
		return nil, apperrors.NotFound("route not found")
	}

	routeUpdates, invalidatesFromRoute, err := buildRouteUpdates(req)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	scheduleUpdates, invalidatesFromSchedule, err := buildScheduleUpdates(req)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	if len(routeUpdates) == 0 && len(scheduleUpdates) == 0 {
		return nil, apperrors.BadRequest("update must include at least one route or schedule field")
	}

	if schedule == nil && len(scheduleUpdates) > 0 {
		return nil, apperrors.NotFound("schedule not found for route")
	}

	params := _interface.UpdateRouteParams{
		UserID:              userID,
		RouteID:             req.RouteID,
		RouteUpdates:        routeUpdates,
		ScheduleUpdates:      scheduleUpdates,
		InvalidatesForecast: invalidatesFromRoute || invalidatesFromSchedule,
	}

	if err := u.Repository.UpdateRoute(ctx, params); err != nil {
		return nil, apperrors.Internal(err)
	}

	updates := make(map[string]interface{}, len(routeUpdates)+len(scheduleUpdates))
	for k, v := range routeUpdates {
		updates[k] = v
	}
	for k, v := range scheduleUpdates {
		updates[k] = v
	}

	return &response.ResUpdateRoute{RouteID: req.RouteID, Updates: updates}, nil
}

// buildRouteUpdates partitions ReqUpdateRoute's route-side fields,
// re-validates each provided one, and reports whether any is
// forecast-affecting per entity.ForecastAffectingRouteFields.
func buildRouteUpdates(req *request.ReqUpdateRoute) (map[string]interface{}, bool, error) {
	updates := make(map[string]interface{})
	affecting := entity.ForecastAffectingRouteFields()
	invalidates := false

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, false, err
		}
		updates["title"] = *req.Title
	}
	if req.Origin != nil {
		if err := validateWaypoint(*req.Origin); err != nil {
			return nil, false, fmt.Errorf("origin: %w", err)
		}
		updates["origin"] = toEntityWaypoint(*req.Origin)
		invalidates = invalidates || has(affecting, "origin")
	}
	if req.Destination != nil {
		if err := validateWaypoint(*req.Destination); err != nil {
			return nil, false, fmt.Errorf("destination: %w", err)
		}
		updates["destination"] = toEntityWaypoint(*req.Destination)
		invalidates = invalidates || has(affecting, "destination")
	}
	if req.Intermediates != nil {
		for i, wp := range *req.Intermediates {
			if err := validateWaypoint(wp); err != nil {
				return nil, false, fmt.Errorf("intermediates[%d]: %w", i, err)
			}
		}
		updates["intermediates"] = toEntityWaypoints(*req.Intermediates)
		invalidates = invalidates || has(affecting, "intermediates")
	}
	if req.TravelMode != nil {
		mode, err := validateTravelMode(*req.TravelMode)
		if err != nil {
			return nil, false, err
		}
		updates["travelMode"] = mode
		invalidates = invalidates || has(affecting, "travelMode")
	}
	if req.StaticDuration != nil {
		minutes, err := parseDurationMinutes(*req.StaticDuration)
		if err != nil {
			return nil, false, fmt.Errorf("staticDuration: %w", err)
		}
		updates["staticDuration"] = minutes
		invalidates = invalidates || has(affecting, "staticDuration")
	}
	if req.TrafficDuration != nil {
		minutes, err := parseDurationMinutes(*req.TrafficDuration)
		if err != nil {
			return nil, false, fmt.Errorf("trafficDuration: %w", err)
		}
		updates["trafficDuration"] = minutes
		invalidates = invalidates || has(affecting, "trafficDuration")
	}
	if req.DistanceMeters != nil {
		updates["distanceMeters"] = *req.DistanceMeters
	}
	if req.Geometry != nil {
		updates["geometry"] = *req.Geometry
	}
	if req.UserActive != nil {
		updates["userActive"] = *req.UserActive
	}

	return updates, invalidates, nil
}

func buildScheduleUpdates(req *request.ReqUpdateRoute) (map[string]interface{}, bool, error) {
	updates := make(map[string]interface{})
	invalidates := false

	if req.ArriveBy != nil {
		if err := validateArriveBy(*req.ArriveBy); err != nil {
			return nil, false, err
		}
		updates["arriveBy"] = *req.ArriveBy
		invalidates = true
	}
	if req.Timezone != nil {
		if err := validateTimezone(*req.Timezone); err != nil {
			return nil, false, err
		}
		updates["timezone"] = *req.Timezone
		invalidates = true
	}
	if req.DaysOfWeek != nil {
		days, err := validateDaysOfWeek(*req.DaysOfWeek)
		if err != nil {
			return nil, false, err
		}
		updates["daysOfWeek"] = days
		invalidates = true
	}

	return updates, invalidates, nil
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
