package usecase

import (
	"context"

	"github.com/commutecast/backend/internal/route/model/entity"
	"github.com/commutecast/backend/internal/route/model/response"
	apperrors "github.com/commutecast/backend/shared/errors"
)

func (u *RouteUseCase) FetchRoutes(c context.Context, userID string) (*response.ResFetchRoutes, error) {
	ctx, cancel := context.WithTimeout(c, u.ContextTimeout)
	defer cancel()

	profile, err := u.Repository.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("profile not found")
	}

	routes, schedules, forecasts, err := u.Repository.ListRoutes(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	resRoutes := make([]response.Route, 0, len(routes))
	activeCount := 0
	for _, route := range routes {
		var schedule *entity.Schedule
		if s, ok := schedules[route.RouteID]; ok {
			schedule = &s
		}
		var forecast *entity.Forecast
		if f, ok := forecasts[route.RouteID]; ok {
			forecast = &f
		}
		if route.UserActive {
			activeCount++
		}
		resRoutes = append(resRoutes, toResponseRoute(route, schedule, forecast))
	}

	return &response.ResFetchRoutes{
		UserID: userID,
		Profile: response.Profile{
			Email:      profile.Email,
			RouteCount: profile.RouteCount,
			CreatedAt:  profile.CreatedAt,
		},
		RouteCount:       len(routes),
		ActiveRouteCount: activeCount,
		MaxRoutes:        entity.MaxRoutesPerUser,
		Routes:           resRoutes,
	}, nil
}
