package out

import (
	"context"

	"cfdash/internal/modules/session/domain"
)

// TokenStore persists the session credential in exactly one of the two
// storage scopes. Saving into one scope clears the other; Clear wipes both.
type TokenStore interface {
	Save(ctx context.Context, scope domain.Scope, creds domain.Credentials) error
	Load(ctx context.Context) (domain.Scope, domain.Credentials, error)
	Clear(ctx context.Context) error
}

// AuthAPI is the slice of the backend the gate needs: credential exchange
// and the idempotent account-status probe.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	AccountStatus(ctx context.Context) (domain.AccountProbe, error)
}
