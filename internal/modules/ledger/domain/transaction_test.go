package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/ledger/domain"
	apperrors "cfdash/internal/platform/errors"
)

func TestSignedFollowsKind(t *testing.T) {
	t.Parallel()
	out := domain.Transaction{Amount: decimal.NewFromInt(120), Kind: domain.KindOut}
	if got := out.Signed(); !got.Equal(decimal.NewFromInt(-120)) {
		t.Fatalf("outgoing should be negative, got %s", got)
	}
	in := domain.Transaction{Amount: decimal.NewFromInt(120), Kind: domain.KindIn}
	if got := in.Signed(); !got.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("incoming should be positive, got %s", got)
	}
}

func TestSignedNormalizesNegativeInput(t *testing.T) {
	t.Parallel()
	tx := domain.Transaction{Amount: decimal.NewFromInt(-80), Kind: domain.KindIn}
	if got := tx.Signed(); !got.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("sign comes from the kind, not the stored amount: got %s", got)
	}
}

func TestTransactionValidate(t *testing.T) {
	t.Parallel()
	tx := domain.Transaction{Description: " ", Amount: decimal.Zero, Kind: "TRANSFER"}
	err := tx.Validate()
	v, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"description", "amount", "kind"} {
		if _, present := v.Fields[field]; !present {
			t.Fatalf("expected a message for %q, got %v", field, v.Fields)
		}
	}

	good := domain.Transaction{Description: "Mercado", Amount: decimal.NewFromInt(50), Kind: domain.KindOut}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}
}

func TestKindValidate(t *testing.T) {
	t.Parallel()
	if err := domain.KindIn.Validate(); err != nil {
		t.Fatalf("ENTRADA should be valid: %v", err)
	}
	if err := domain.Kind("PIX").Validate(); err == nil {
		t.Fatalf("unknown kind should be rejected")
	}
}
