package usecase

import (
	"context"
	"errors"
	"time"

	_interface "github.com/commutecast/backend/internal/route/model/interface"
	apperrors "github.com/commutecast/backend/shared/errors"
	"github.com/commutecast/backend/shared/logger"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	Repository     _interface.IRouteRepository
	ContextTimeout time.Duration
}

func NewProfileUseCase(repo _interface.IRouteRepository, timeout time.Duration) _interface.IProfileUseCase {
	return &ProfileUseCase{Repository: repo, ContextTimeout: timeout}
}

// ConfirmUser is invoked once per identity-provider post-confirmation
// trigger. Missing attributes block confirmation outright; a duplicate
// hook delivery for a userId that already has a profile is logged and
// otherwise ignored, since the identity provider can retry this hook.
func (u *ProfileUseCase) ConfirmUser(c context.Context, userID, email string) error {
	ctx, cancel := context.WithTimeout(c, u.ContextTimeout)
	defer cancel()

	if userID == "" || email == "" {
		return apperrors.BadRequest("userId and email are required to confirm a user")
	}

	err := u.Repository.CreateProfile(ctx, userID, email)
	if err != nil {
		if errors.Is(err, _interface.ErrProfileAlreadyExists) {
			logger.Warn("duplicate post-confirmation hook, profile already exists", zap.String("userId", userID))
			return nil
		}
		return apperrors.Internal(err)
	}
	return nil
}
