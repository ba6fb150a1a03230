package _interface

import (
	"context"
	"errors"

	"github.com/commutecast/backend/internal/route/model/entity"
)

// ErrMaxRoutesReached is returned by CreateRoute when the profile's
// routeCount condition fails because the user is already at
// entity.MaxRoutesPerUser.
var ErrMaxRoutesReached = errors.New("repository: maximum of 20 routes")

// ErrProfileAlreadyExists is returned by CreateProfile when a PROFILE
// item already exists for the user.
var ErrProfileAlreadyExists = errors.New("repository: profile already exists")

// CreateRouteParams bundles the already-validated route and schedule
// entities the repository needs to run the four-item create transaction.
type CreateRouteParams struct {
	Route    entity.Route
	Schedule entity.Schedule
}

// UpdateRouteParams carries only the entity fields that changed, matched
// against the fixed route/schedule field partition from the usecase.
type UpdateRouteParams struct {
	UserID  string
	RouteID string

	RouteUpdates    map[string]interface{}
	ScheduleUpdates map[string]interface{}

	InvalidatesForecast bool
}

type IRouteRepository interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	CreateProfile(ctx context.Context, userID, email string) error

	CreateRoute(ctx context.Context, params CreateRouteParams) error
	UpdateRoute(ctx context.Context, params UpdateRouteParams) error
	DeleteRoute(ctx context.Context, userID, routeID, cityKey string) error

	GetRoute(ctx context.Context, userID, routeID string) (*entity.Route, *entity.Schedule, *entity.Forecast, error)
	ListRoutes(ctx context.Context, userID string) ([]entity.Route, map[string]entity.Schedule, map[string]entity.Forecast, error)
}
