package domain

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	apperrors "cfdash/internal/platform/errors"
)

// Plan is a subscription tier offered during onboarding.
type Plan struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Description string
}

// Registration is a new user before the backend has seen them.
type Registration struct {
	Name     string
	Email    string
	Password string
}

func (r Registration) Validate() error {
	v := apperrors.NewValidation()
	if strings.TrimSpace(r.Name) == "" {
		v.Add("name", "name is required")
	}
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		v.Add("email", "a valid email is required")
	}
	if msg := passwordWeakness(r.Password); msg != "" {
		v.Add("password", msg)
	}
	if !v.Empty() {
		return v
	}
	return nil
}

// passwordWeakness mirrors the signup form's strength rule: at least eight
// characters containing a letter and a digit.
func passwordWeakness(password string) string {
	if len(password) < 8 {
		return "password must be at least 8 characters"
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return "password must mix letters and digits"
	}
	return ""
}
