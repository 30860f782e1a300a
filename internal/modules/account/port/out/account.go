package out

import (
	"context"

	"cfdash/internal/modules/account/domain"
)

type AccountAPI interface {
	Register(ctx context.Context, reg domain.Registration) (id, name, email string, err error)
	Plans(ctx context.Context) ([]domain.Plan, error)
	CreateAccount(ctx context.Context, planID string) error
}
