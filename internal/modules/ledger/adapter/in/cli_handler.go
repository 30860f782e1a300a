package in

import (
	"context"

	"cfdash/internal/modules/ledger/dto"
	ledgerin "cfdash/internal/modules/ledger/port/in"
)

type CLIHandler struct {
	usecase ledgerin.Usecase
}

func NewCLIHandler(usecase ledgerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]dto.TransactionOutput, error) {
	return h.usecase.List(ctx, limit)
}

func (h CLIHandler) Categories(ctx context.Context) ([]dto.CategoryOutput, error) {
	return h.usecase.Categories(ctx)
}

func (h CLIHandler) Create(ctx context.Context, description string, amount float64, kind, categoryID string) (dto.TransactionOutput, error) {
	return h.usecase.Create(ctx, dto.TransactionInput{Description: description, Amount: amount, Kind: kind, CategoryID: categoryID})
}

func (h CLIHandler) Update(ctx context.Context, id, description string, amount float64, kind, categoryID string) (dto.TransactionOutput, error) {
	return h.usecase.Update(ctx, id, dto.TransactionInput{Description: description, Amount: amount, Kind: kind, CategoryID: categoryID})
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}
