package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/ledger/domain"
	"cfdash/internal/modules/ledger/dto"
	ledgerin "cfdash/internal/modules/ledger/port/in"
	ledgerout "cfdash/internal/modules/ledger/port/out"
)

const defaultListLimit = 5

// Interactor is thin CRUD over the transactions endpoints. Validation is
// client-side fail-fast; state always reflects server-confirmed records.
type Interactor struct {
	api ledgerout.TransactionAPI
}

func NewInteractor(api ledgerout.TransactionAPI) ledgerin.Usecase {
	return &Interactor{api: api}
}

func (i *Interactor) List(ctx context.Context, limit int) ([]dto.TransactionOutput, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	txs, err := i.api.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.TransactionOutput, 0, len(txs))
	for _, tx := range txs {
		outputs = append(outputs, toOutput(tx))
	}
	return outputs, nil
}

func (i *Interactor) Categories(ctx context.Context) ([]dto.CategoryOutput, error) {
	categories, err := i.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.CategoryOutput, 0, len(categories))
	for _, c := range categories {
		outputs = append(outputs, dto.CategoryOutput{ID: c.ID, Name: c.Name})
	}
	return outputs, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.TransactionInput) (dto.TransactionOutput, error) {
	tx := fromInput("", input)
	if err := tx.Validate(); err != nil {
		return dto.TransactionOutput{}, err
	}
	created, err := i.api.Create(ctx, tx)
	if err != nil {
		return dto.TransactionOutput{}, err
	}
	return toOutput(created), nil
}

func (i *Interactor) Update(ctx context.Context, id string, input dto.TransactionInput) (dto.TransactionOutput, error) {
	tx := fromInput(id, input)
	if err := tx.Validate(); err != nil {
		return dto.TransactionOutput{}, err
	}
	updated, err := i.api.Update(ctx, tx)
	if err != nil {
		return dto.TransactionOutput{}, err
	}
	return toOutput(updated), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.api.Delete(ctx, id)
}

func fromInput(id string, input dto.TransactionInput) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Description: input.Description,
		Amount:      decimal.NewFromFloat(input.Amount),
		Kind:        domain.Kind(input.Kind),
		CategoryID:  input.CategoryID,
	}
}

func toOutput(tx domain.Transaction) dto.TransactionOutput {
	return dto.TransactionOutput{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount.InexactFloat64(),
		Signed:      tx.Signed().InexactFloat64(),
		Time:        tx.Time,
		Kind:        string(tx.Kind),
		Category:    tx.Category,
	}
}
