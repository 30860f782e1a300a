package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/expenses/domain"
	"cfdash/internal/modules/expenses/dto"
	expensesin "cfdash/internal/modules/expenses/port/in"
	expensesout "cfdash/internal/modules/expenses/port/out"
)

type Interactor struct {
	api expensesout.ExpenseAPI
}

func NewInteractor(api expensesout.ExpenseAPI) expensesin.Usecase {
	return &Interactor{api: api}
}

func (i *Interactor) List(ctx context.Context) ([]dto.ExpenseOutput, error) {
	expenses, err := i.api.List(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.ExpenseOutput, 0, len(expenses))
	for _, e := range expenses {
		outputs = append(outputs, toOutput(e))
	}
	return outputs, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.ExpenseInput) (dto.ExpenseOutput, error) {
	expense := domain.FutureExpense{Description: input.Description, Amount: decimal.NewFromFloat(input.Amount)}
	if err := expense.Validate(); err != nil {
		return dto.ExpenseOutput{}, err
	}
	created, err := i.api.Create(ctx, expense)
	if err != nil {
		return dto.ExpenseOutput{}, err
	}
	return toOutput(created), nil
}

func (i *Interactor) Update(ctx context.Context, id string, input dto.ExpenseInput) (dto.ExpenseOutput, error) {
	expense := domain.FutureExpense{ID: id, Description: input.Description, Amount: decimal.NewFromFloat(input.Amount)}
	if err := expense.Validate(); err != nil {
		return dto.ExpenseOutput{}, err
	}
	updated, err := i.api.Update(ctx, expense)
	if err != nil {
		return dto.ExpenseOutput{}, err
	}
	return toOutput(updated), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.api.Delete(ctx, id)
}

func toOutput(e domain.FutureExpense) dto.ExpenseOutput {
	return dto.ExpenseOutput{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Initials:    e.Initials(),
	}
}
