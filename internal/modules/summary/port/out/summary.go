package out

import (
	"context"

	"cfdash/internal/modules/summary/domain"
)

type SummaryAPI interface {
	Health(ctx context.Context) (domain.Health, error)
	Card(ctx context.Context) (domain.CardInfo, error)
	Monthly(ctx context.Context) ([]domain.MonthPoint, error)
}
