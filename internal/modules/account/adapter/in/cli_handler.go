package in

import (
	"context"

	"cfdash/internal/modules/account/dto"
	accountin "cfdash/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Register(ctx context.Context, name, email, password string) (dto.RegisterOutput, error) {
	return h.usecase.Register(ctx, dto.RegisterInput{Name: name, Email: email, Password: password})
}

func (h CLIHandler) Plans(ctx context.Context) ([]dto.PlanOutput, error) {
	return h.usecase.Plans(ctx)
}

func (h CLIHandler) CreateAccount(ctx context.Context, planID string) (dto.AccountOutput, error) {
	return h.usecase.CreateAccount(ctx, planID)
}
