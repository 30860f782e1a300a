package in

import (
	"context"

	"cfdash/internal/modules/summary/dto"
)

type Usecase interface {
	Health(ctx context.Context) (dto.HealthOutput, error)
	Card(ctx context.Context) (dto.CardOutput, error)
	Monthly(ctx context.Context) ([]dto.MonthOutput, error)
}
