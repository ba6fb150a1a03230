package _interface

import (
	"context"

	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/internal/route/model/response"
)

type IRouteUseCase interface {
	CreateRoute(ctx context.Context, userID string, req *request.ReqCreateRoute) (*response.ResCreateRoute, error)
	UpdateRoute(ctx context.Context, userID string, req *request.ReqUpdateRoute) (*response.ResUpdateRoute, error)
	DeleteRoute(ctx context.Context, userID string, req *request.ReqDeleteRoute) (*response.ResDeleteRoute, error)
	FetchRoutes(ctx context.Context, userID string) (*response.ResFetchRoutes, error)
}
