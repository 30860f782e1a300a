package in

import (
	"context"

	"cfdash/internal/modules/expenses/dto"
	expensesin "cfdash/internal/modules/expenses/port/in"
)

type CLIHandler struct {
	usecase expensesin.Usecase
}

func NewCLIHandler(usecase expensesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ExpenseOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Create(ctx context.Context, description string, amount float64) (dto.ExpenseOutput, error) {
	return h.usecase.Create(ctx, dto.ExpenseInput{Description: description, Amount: amount})
}

func (h CLIHandler) Update(ctx context.Context, id, description string, amount float64) (dto.ExpenseOutput, error) {
	return h.usecase.Update(ctx, id, dto.ExpenseInput{Description: description, Amount: amount})
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}
