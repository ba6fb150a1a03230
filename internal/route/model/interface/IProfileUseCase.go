package _interface

import "context"

// IProfileUseCase backs the identity-provider post-confirmation hook.
type IProfileUseCase interface {
	ConfirmUser(ctx context.Context, userID, email string) error
}
