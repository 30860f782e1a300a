package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "cfdash/internal/platform/errors"
)

// FutureExpense is a planned spend that has not happened yet.
type FutureExpense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
}

func (e FutureExpense) Validate() error {
	v := apperrors.NewValidation()
	if strings.TrimSpace(e.Description) == "" {
		v.Add("description", "description is required")
	}
	if !e.Amount.IsPositive() {
		v.Add("amount", "amount must be greater than zero")
	}
	if !v.Empty() {
		return v
	}
	return nil
}

// Initials is the avatar label the dashboard renders for an expense: first
// letters of up to two words.
func (e FutureExpense) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(e.Description) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
