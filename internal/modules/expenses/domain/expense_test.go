package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/expenses/domain"
)

func TestInitials(t *testing.T) {
	t.Parallel()
	cases := []struct {
		description string
		want        string
	}{
		{"Viagem Europa", "VE"},
		{"iphone", "I"},
		{"troca de pneus", "TD"},
		{"", ""},
	}
	for _, tc := range cases {
		e := domain.FutureExpense{Description: tc.description}
		if got := e.Initials(); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.description, tc.want, got)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	t.Parallel()
	bad := domain.FutureExpense{Description: "", Amount: decimal.Zero}
	if err := bad.Validate(); err == nil {
		t.Fatalf("empty expense should be rejected")
	}
	good := domain.FutureExpense{Description: "Seguro", Amount: decimal.NewFromInt(900)}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}
}
