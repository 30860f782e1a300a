package out

import (
	"context"

	"cfdash/internal/modules/ledger/domain"
)

type TransactionAPI interface {
	List(ctx context.Context, limit int) ([]domain.Transaction, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	Update(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}
