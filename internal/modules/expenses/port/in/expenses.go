package in

import (
	"context"

	"cfdash/internal/modules/expenses/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.ExpenseOutput, error)
	Create(ctx context.Context, input dto.ExpenseInput) (dto.ExpenseOutput, error)
	Update(ctx context.Context, id string, input dto.ExpenseInput) (dto.ExpenseOutput, error)
	Remove(ctx context.Context, id string) error
}
