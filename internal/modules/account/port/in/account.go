package in

import (
	"context"

	"cfdash/internal/modules/account/dto"
)

type Usecase interface {
	Register(ctx context.Context, input dto.RegisterInput) (dto.RegisterOutput, error)
	Plans(ctx context.Context) ([]dto.PlanOutput, error)
	CreateAccount(ctx context.Context, planID string) (dto.AccountOutput, error)
}
