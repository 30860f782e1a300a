package in

import (
	"context"

	"cfdash/internal/modules/session/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error)
	Logout(ctx context.Context) error
	Resume(ctx context.Context) (dto.SessionOutput, error)
}
