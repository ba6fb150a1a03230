package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/commutecast/backend/internal/route/model/entity"
	_interface "github.com/commutecast/backend/internal/route/model/interface"
	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/internal/route/model/response"
	apperrors "github.com/commutecast/backend/shared/errors"
)

type RouteUseCase struct {
	Repository     _interface.IRouteRepository
	ContextTimeout time.Duration
}

func NewRouteUseCase(repo _interface.IRouteRepository, timeout time.Duration) _interface.IRouteUseCase {
	return &RouteUseCase{Repository: repo, ContextTimeout: timeout}
}

func (u *RouteUseCase) CreateRoute(c context.Context, userID string, req *request.ReqCreateRoute) (*response.ResCreateRoute, error) {
	ctx, cancel := context.WithTimeout(c, u.ContextTimeout)
	defer cancel()

	route, schedule, err := u.buildCreateEntities(userID, req)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	err = u.Repository.CreateRoute(ctx, _interface.CreateRouteParams{Route: route, Schedule: schedule})
	if err != nil {
		if errors.Is(err, _interface.ErrMaxRoutesReached) {
			return nil, apperrors.BadRequest("Maximum of 20 routes reached for this account")
		}
		return nil, apperrors.Internal(err)
	}

	resRoute := toResponseRoute(route, &schedule, nil)
	return &response.ResCreateRoute{Route: resRoute}, nil
}

func (u *RouteUseCase) buildCreateEntities(userID string, req *request.ReqCreateRoute) (entity.Route, entity.Schedule, error) {
	if err := validateTitle(req.Title); err != nil {
		return entity.Route{}, entity.Schedule{}, err
	}
	if err := validateWaypoint(req.Origin); err != nil {
		return entity.Route{}, entity.Schedule{}, fmt.Errorf("origin: %w", err)
	}
	if err := validateWaypoint(req.Destination); err != nil {
		return entity.Route{}, entity.Schedule{}, fmt.Errorf("destination: %w", err)
	}
	for i, wp := range req.Intermediates {
		if err := validateWaypoint(wp); err != nil {
			return entity.Route{}, entity.Schedule{}, fmt.Errorf("intermediates[%d]: %w", i, err)
		}
	}

	travelMode, err := validateTravelMode(req.TravelMode)
	if err != nil {
		return entity.Route{}, entity.Schedule{}, err
	}

	days, err := validateDaysOfWeek(req.DaysOfWeek)
	if err != nil {
		return entity.Route{}, entity.Schedule{}, err
	}

	if err := validateArriveBy(req.ArriveBy); err != nil {
		return entity.Route{}, entity.Schedule{}, err
	}
	if err := validateTimezone(req.Timezone); err != nil {
		return entity.Route{}, entity.Schedule{}, err
	}

	staticDuration, err := parseDurationMinutes(req.StaticDuration)
	if err != nil {
		return entity.Route{}, entity.Schedule{}, fmt.Errorf("staticDuration: %w", err)
	}

	var trafficDuration *int
	if req.TrafficDuration != "" {
		td, err := parseDurationMinutes(req.TrafficDuration)
		if err != nil {
			return entity.Route{}, entity.Schedule{}, fmt.Errorf("trafficDuration: %w", err)
		}
		trafficDuration = &td
	}

	if req.CountryCode == "" || req.City == "" {
		return entity.Route{}, entity.Schedule{}, fmt.Errorf("countryCode and city are required")
	}
	cityKey := normalizeCityKey(req.CountryCode, req.City)

	routeID := uuid.NewString()

	route := entity.Route{
		UserID:          userID,
		RouteID:         routeID,
		Title:           req.Title,
		Origin:          toEntityWaypoint(req.Origin),
		Destination:     toEntityWaypoint(req.Destination),
		Intermediates:   toEntityWaypoints(req.Intermediates),
		TravelMode:      travelMode,
		StaticDuration:  staticDuration,
		TrafficDuration: trafficDuration,
		DistanceMeters:  req.DistanceMeters,
		CityKey:         cityKey,
		CityLat:         req.Origin.Location.LatLng.Latitude,
		CityLng:         req.Origin.Location.LatLng.Longitude,
		UserActive:      true,
		Geometry:        req.Geometry,
	}

	schedule := entity.Schedule{
		UserID:     userID,
		RouteID:    routeID,
		ArriveBy:   req.ArriveBy,
		Timezone:   req.Timezone,
		DaysOfWeek: days,
	}

	return route, schedule, nil
}
