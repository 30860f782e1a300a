package domain_test

import (
	"testing"

	"cfdash/internal/modules/account/domain"
	apperrors "cfdash/internal/platform/errors"
)

func TestRegistrationValidate(t *testing.T) {
	t.Parallel()
	good := domain.Registration{Name: "Maria", Email: "maria@example.com", Password: "senha1234"}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}
}

func TestRegistrationPasswordRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		password string
	}{
		{"too short", "ab1"},
		{"letters only", "abcdefgh"},
		{"digits only", "12345678"},
	}
	for _, tc := range cases {
		r := domain.Registration{Name: "Maria", Email: "maria@example.com", Password: tc.password}
		err := r.Validate()
		v, ok := apperrors.AsValidation(err)
		if !ok {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if _, present := v.Fields["password"]; !present {
			t.Fatalf("%s: expected password message, got %v", tc.name, v.Fields)
		}
	}
}

func TestRegistrationEmailRule(t *testing.T) {
	t.Parallel()
	r := domain.Registration{Name: "Maria", Email: "not-an-email", Password: "senha1234"}
	err := r.Validate()
	v, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, present := v.Fields["email"]; !present {
		t.Fatalf("expected email message, got %v", v.Fields)
	}
}
