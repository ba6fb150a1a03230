package usecase

import (
	"context"

	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/internal/route/model/response"
	apperrors "github.com/commutecast/backend/shared/errors"
)

func (u *RouteUseCase) DeleteRoute(c context.Context, userID string, req *request.ReqDeleteRoute) (*response.ResDeleteRoute, error) {
	ctx, cancel := context.WithTimeout(c, u.ContextTimeout)
	defer cancel()

	route, _, _, err := u.Repository.GetRoute(ctx, userID, req.RouteID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if route == nil {
		return nil, apperrors.NotFound("route not found")
	}

	if err := u.Repository.DeleteRoute(ctx, userID, req.RouteID, route.CityKey); err != nil {
		return nil, apperrors.Internal(err)
	}

	return &response.ResDeleteRoute{RouteID: req.RouteID}, nil
}
