package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cfdash/internal/modules/session/domain"
	"cfdash/internal/modules/session/dto"
	sessionin "cfdash/internal/modules/session/port/in"
	"cfdash/internal/modules/session/service"
	"cfdash/internal/modules/session/usecase"
	apperrors "cfdash/internal/platform/errors"
)

// ─── fakes ───────────────────────────────────────────────────────────────────

type fakeTokenStore struct {
	scope domain.Scope
	creds domain.Credentials
	held  bool

	saveCalls  int
	clearCalls int
}

func (f *fakeTokenStore) Save(_ context.Context, scope domain.Scope, creds domain.Credentials) error {
	f.saveCalls++
	f.scope, f.creds, f.held = scope, creds, true
	return nil
}

func (f *fakeTokenStore) Load(context.Context) (domain.Scope, domain.Credentials, error) {
	if !f.held {
		return "", domain.Credentials{}, apperrors.ErrNotAuthenticated
	}
	return f.scope, f.creds, nil
}

func (f *fakeTokenStore) Clear(context.Context) error {
	f.clearCalls++
	f.held = false
	return nil
}

type fakeAuthAPI struct {
	token      string
	loginErr   error
	loginCalls int

	probe    domain.AccountProbe
	probeErr error
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (string, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthAPI) AccountStatus(context.Context) (domain.AccountProbe, error) {
	return f.probe, f.probeErr
}

func newInteractor(api *fakeAuthAPI, store *fakeTokenStore) sessionin.Usecase {
	return usecase.NewInteractor(service.NewGateService(), api, store)
}

// ─── tests ───────────────────────────────────────────────────────────────────

func TestLoginRememberPicksDurableScope(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: "tok-1", probe: domain.AccountProbe{HasAccount: true, Active: true}}
	store := &fakeTokenStore{}
	uc := newInteractor(api, store)

	out, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.com", Password: "pw", Remember: true})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if store.scope != domain.ScopeDurable {
		t.Fatalf("remember should persist durably, got scope %s", store.scope)
	}
	if out.NextStep != string(domain.StepDashboard) {
		t.Fatalf("active account should route to dashboard, got %s", out.NextStep)
	}
}

func TestLoginWithoutRememberPicksEphemeralScope(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: "tok-1", probe: domain.AccountProbe{HasAccount: true, Active: true}}
	store := &fakeTokenStore{}
	uc := newInteractor(api, store)

	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.com", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if store.scope != domain.ScopeEphemeral {
		t.Fatalf("expected ephemeral scope, got %s", store.scope)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{loginErr: apperrors.ErrUnauthorized}
	store := &fakeTokenStore{}
	uc := newInteractor(api, store)

	_, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.com", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.saveCalls != 0 {
		t.Fatalf("rejected login must not persist anything")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: "tok-1"}
	store := &fakeTokenStore{}
	uc := newInteractor(api, store)

	_, err := uc.Login(context.Background(), dto.LoginInput{Email: "not-an-email", Password: ""})
	if _, ok := apperrors.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.loginCalls != 0 {
		t.Fatalf("invalid input must not reach the server")
	}
}

func TestLoginClearsTokenWhenProbeFails(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: "tok-1", probeErr: apperrors.ErrTransient}
	store := &fakeTokenStore{}
	uc := newInteractor(api, store)

	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.com", Password: "pw"}); err == nil {
		t.Fatalf("expected failure when the status probe fails")
	}
	if store.held {
		t.Fatalf("a failed probe must discard the fresh token")
	}
}

func TestLoginRoutesNoAccountToSetup(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: "tok-1", probeErr: apperrors.ErrNotFound}
	store := &fakeTokenStore{}
	uc := newInteractor(api, store)

	out, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.Status != string(domain.StatusNoAccount) || out.NextStep != string(domain.StepAccountSetup) {
		t.Fatalf("404 probe should mean account setup, got status=%s next=%s", out.Status, out.NextStep)
	}
	if !store.held {
		t.Fatalf("no-account is still a valid login; the token must stay")
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	t.Parallel()
	store := &fakeTokenStore{}
	uc := newInteractor(&fakeAuthAPI{}, store)

	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("logout with no session should succeed: %v", err)
	}
	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("repeated logout should succeed: %v", err)
	}
	if store.clearCalls != 2 {
		t.Fatalf("each logout must clear storage, got %d clears", store.clearCalls)
	}
}

func TestResumeWithoutSession(t *testing.T) {
	t.Parallel()
	uc := newInteractor(&fakeAuthAPI{}, &fakeTokenStore{})

	out, err := uc.Resume(context.Background())
	if err != nil {
		t.Fatalf("resume without session should not error: %v", err)
	}
	if out.Authenticated || out.NextStep != string(domain.StepLogin) {
		t.Fatalf("expected logged-out output, got %+v", out)
	}
}

func TestResumeRestoresSession(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{probe: domain.AccountProbe{HasAccount: true, Active: true}}
	store := &fakeTokenStore{
		scope: domain.ScopeDurable,
		creds: domain.Credentials{Token: "tok-1", Email: "a@b.com"},
		held:  true,
	}
	uc := newInteractor(api, store)

	out, err := uc.Resume(context.Background())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !out.Authenticated || out.Email != "a@b.com" || out.Scope != string(domain.ScopeDurable) {
		t.Fatalf("unexpected session output: %+v", out)
	}
	if out.NextStep != string(domain.StepDashboard) {
		t.Fatalf("expected dashboard, got %s", out.NextStep)
	}
}

func TestResumeDegradesOnProbeFailure(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{probeErr: apperrors.ErrTransient}
	store := &fakeTokenStore{
		scope: domain.ScopeEphemeral,
		creds: domain.Credentials{Token: "tok-1", Email: "a@b.com"},
		held:  true,
	}
	uc := newInteractor(api, store)

	out, err := uc.Resume(context.Background())
	if err != nil {
		t.Fatalf("resume should degrade, not fail: %v", err)
	}
	if out.Authenticated {
		t.Fatalf("failed probe should leave the user logged out")
	}
	if store.held {
		t.Fatalf("failed probe should clear the stored credential")
	}
}
