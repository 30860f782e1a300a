package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "cfdash/internal/platform/errors"
)

type Kind string

const (
	KindIn  Kind = "ENTRADA"
	KindOut Kind = "SAIDA"
)

type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Time        string
	Kind        Kind
	Category    string
	CategoryID  string
}

type Category struct {
	ID   string
	Name string
}

// Signed returns the amount with the sign implied by the kind: outgoing
// transactions are negative.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindOut {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

func (k Kind) Validate() error {
	switch k {
	case KindIn, KindOut:
		return nil
	default:
		v := apperrors.NewValidation()
		v.Add("kind", "kind must be ENTRADA or SAIDA")
		return v
	}
}

func (t Transaction) Validate() error {
	v := apperrors.NewValidation()
	if strings.TrimSpace(t.Description) == "" {
		v.Add("description", "description is required")
	}
	if !t.Amount.Abs().IsPositive() {
		v.Add("amount", "amount must be non-zero")
	}
	if t.Kind != KindIn && t.Kind != KindOut {
		v.Add("kind", "kind must be ENTRADA or SAIDA")
	}
	if !v.Empty() {
		return v
	}
	return nil
}
