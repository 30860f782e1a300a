package out

import (
	"context"

	"cfdash/internal/modules/expenses/domain"
)

type ExpenseAPI interface {
	List(ctx context.Context) ([]domain.FutureExpense, error)
	Create(ctx context.Context, expense domain.FutureExpense) (domain.FutureExpense, error)
	Update(ctx context.Context, expense domain.FutureExpense) (domain.FutureExpense, error)
	Delete(ctx context.Context, id string) error
}
