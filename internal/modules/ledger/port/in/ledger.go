package in

import (
	"context"

	"cfdash/internal/modules/ledger/dto"
)

type Usecase interface {
	List(ctx context.Context, limit int) ([]dto.TransactionOutput, error)
	Categories(ctx context.Context) ([]dto.CategoryOutput, error)
	Create(ctx context.Context, input dto.TransactionInput) (dto.TransactionOutput, error)
	Update(ctx context.Context, id string, input dto.TransactionInput) (dto.TransactionOutput, error)
	Remove(ctx context.Context, id string) error
}
