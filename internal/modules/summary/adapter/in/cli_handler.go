package in

import (
	"context"

	"cfdash/internal/modules/summary/dto"
	summaryin "cfdash/internal/modules/summary/port/in"
)

type CLIHandler struct {
	usecase summaryin.Usecase
}

func NewCLIHandler(usecase summaryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Health(ctx context.Context) (dto.HealthOutput, error) {
	return h.usecase.Health(ctx)
}

func (h CLIHandler) Card(ctx context.Context) (dto.CardOutput, error) {
	return h.usecase.Card(ctx)
}

func (h CLIHandler) Monthly(ctx context.Context) ([]dto.MonthOutput, error) {
	return h.usecase.Monthly(ctx)
}
