package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cfdash/internal/modules/session/domain"
	"cfdash/internal/modules/session/dto"
	sessionin "cfdash/internal/modules/session/port/in"
	sessionout "cfdash/internal/modules/session/port/out"
	"cfdash/internal/modules/session/service"
	apperrors "cfdash/internal/platform/errors"
)

type Interactor struct {
	gate  service.GateService
	api   sessionout.AuthAPI
	store sessionout.TokenStore
}

func NewInteractor(gate service.GateService, api sessionout.AuthAPI, store sessionout.TokenStore) sessionin.Usecase {
	return &Interactor{gate: gate, api: api, store: store}
}

// Login exchanges credentials for a token, persists it into the chosen
// storage scope, then probes account status to pick the next onboarding step.
// A failed status probe discards the fresh credential: a stuck gate is worse
// than forcing a re-login.
func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	if err := validateCredentials(input.Email, input.Password); err != nil {
		return dto.LoginOutput{}, err
	}

	token, err := i.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return dto.LoginOutput{}, apperrors.ErrInvalidCredentials
		}
		return dto.LoginOutput{}, err
	}

	scope := domain.ScopeEphemeral
	if input.Remember {
		scope = domain.ScopeDurable
	}
	if err := i.store.Save(ctx, scope, domain.Credentials{Token: token, Email: input.Email}); err != nil {
		return dto.LoginOutput{}, fmt.Errorf("persist session: %w", err)
	}

	status, err := i.gate.StatusFrom(i.api.AccountStatus(ctx))
	if err != nil {
		_ = i.store.Clear(ctx)
		return dto.LoginOutput{}, fmt.Errorf("account status check failed: %w", err)
	}

	return dto.LoginOutput{
		Email:    input.Email,
		Status:   string(status),
		NextStep: string(i.gate.NextStep(status)),
	}, nil
}

// Logout clears both storage scopes unconditionally. It always succeeds
// locally, even when no session existed.
func (i *Interactor) Logout(ctx context.Context) error {
	_ = i.store.Clear(ctx)
	return nil
}

// Resume restores a persisted session and re-derives the routing status. Any
// probe failure degrades to logged-out; there are no automatic retries.
func (i *Interactor) Resume(ctx context.Context) (dto.SessionOutput, error) {
	loggedOut := dto.SessionOutput{NextStep: string(domain.StepLogin)}

	scope, creds, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotAuthenticated) {
			return loggedOut, nil
		}
		return loggedOut, fmt.Errorf("load session: %w", err)
	}

	status, err := i.gate.StatusFrom(i.api.AccountStatus(ctx))
	if err != nil {
		_ = i.store.Clear(ctx)
		return loggedOut, nil
	}

	return dto.SessionOutput{
		Authenticated: true,
		Email:         creds.Email,
		Scope:         string(scope),
		Status:        string(status),
		NextStep:      string(i.gate.NextStep(status)),
	}, nil
}

func validateCredentials(email, password string) error {
	v := apperrors.NewValidation()
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		v.Add("email", "a valid email is required")
	}
	if password == "" {
		v.Add("password", "password is required")
	}
	if !v.Empty() {
		return v
	}
	return nil
}
