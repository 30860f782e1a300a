package bootstrap_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"cfdash/internal/bootstrap"
	"cfdash/internal/devserver"
	"cfdash/internal/platform/config"
	apperrors "cfdash/internal/platform/errors"
)

// The full stack against the dev backend: real transport, real token files,
// real JWT auth on the other side.

func newApp(t *testing.T) (*bootstrap.App, string) {
	t.Helper()
	srv := devserver.NewServer("test-secret")
	if err := srv.SeedUser("Maria", "maria@example.com", "senha12345", "plus", true); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	cfg := config.Config{
		APIBaseURL:           ts.URL,
		WebBaseURL:           "http://web.local",
		TimeoutSeconds:       5,
		ConfigDir:            dir,
		DurableSessionPath:   filepath.Join(dir, "session.json"),
		EphemeralSessionPath: filepath.Join(dir, "tmp", "session.json"),
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return app, cfg.DurableSessionPath
}

func TestLoginResumeLogoutRoundTrip(t *testing.T) {
	t.Parallel()
	app, durablePath := newApp(t)
	ctx := context.Background()

	out, err := app.SessionCLI.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if out.Authenticated {
		t.Fatalf("fresh install should not be authenticated")
	}

	login, err := app.SessionCLI.Login(ctx, "maria@example.com", "senha12345", true)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.NextStep != "dashboard" {
		t.Fatalf("active account should route to dashboard, got %s", login.NextStep)
	}
	if _, err := os.Stat(durablePath); err != nil {
		t.Fatalf("remember=true should write the durable file: %v", err)
	}

	// A new app over the same config dir simulates a process restart.
	resumed, err := app.SessionCLI.Resume(ctx)
	if err != nil {
		t.Fatalf("resume after login: %v", err)
	}
	if !resumed.Authenticated || resumed.Scope != "durable" {
		t.Fatalf("expected durable session, got %+v", resumed)
	}

	if err := app.SessionCLI.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := os.Stat(durablePath); !os.IsNotExist(err) {
		t.Fatalf("logout should remove the durable file")
	}
}

func TestGoalFlowWithServerClamp(t *testing.T) {
	t.Parallel()
	app, _ := newApp(t)
	ctx := context.Background()

	if _, err := app.SessionCLI.Login(ctx, "maria@example.com", "senha12345", false); err != nil {
		t.Fatalf("login: %v", err)
	}

	created, err := app.GoalsCLI.Create(ctx, "Reserva", 1000, "2027-06-30")
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if created.Current != 0 {
		t.Fatalf("new goal should start at zero, got %v", created.Current)
	}

	stepped, err := app.GoalsCLI.Adjust(ctx, created.ID, 900)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if stepped.Current != 900 {
		t.Fatalf("expected 900, got %v", stepped.Current)
	}

	capped, err := app.GoalsCLI.Adjust(ctx, created.ID, 500)
	if err != nil {
		t.Fatalf("adjust past target: %v", err)
	}
	if capped.Current != 1000 || capped.Percent != 100 {
		t.Fatalf("expected clamp at target, got current=%v percent=%d", capped.Current, capped.Percent)
	}

	if err := app.GoalsCLI.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	goals, err := app.GoalsCLI.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("expected empty ledger after delete, got %d", len(goals))
	}
}

func TestExpiredTokenWipesSession(t *testing.T) {
	t.Parallel()
	app, durablePath := newApp(t)
	ctx := context.Background()

	if _, err := app.SessionCLI.Login(ctx, "maria@example.com", "senha12345", true); err != nil {
		t.Fatalf("login: %v", err)
	}
	// Corrupt the stored token; the next authenticated call must come back
	// unauthorized and clear both scopes.
	if err := os.WriteFile(durablePath, []byte(`{"token":"garbage","userEmail":"maria@example.com"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := app.GoalsCLI.List(ctx)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, statErr := os.Stat(durablePath); !os.IsNotExist(statErr) {
		t.Fatalf("auth failure should wipe the durable scope")
	}
	resumed, err := app.SessionCLI.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.Authenticated {
		t.Fatalf("wiped session should resume logged out")
	}
}

func TestOnboardingFlow(t *testing.T) {
	t.Parallel()
	app, _ := newApp(t)
	ctx := context.Background()

	reg, err := app.AccountCLI.Register(ctx, "João", "joao@example.com", "senha12345")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Email != "joao@example.com" {
		t.Fatalf("unexpected registration output: %+v", reg)
	}

	login, err := app.SessionCLI.Login(ctx, "joao@example.com", "senha12345", false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.NextStep != "account-setup" {
		t.Fatalf("user without account should route to setup, got %s", login.NextStep)
	}

	plans, err := app.AccountCLI.Plans(ctx)
	if err != nil {
		t.Fatalf("plans: %v", err)
	}
	if len(plans) == 0 {
		t.Fatalf("expected seeded plans")
	}

	account, err := app.AccountCLI.CreateAccount(ctx, plans[0].ID)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	wantURL := "http://web.local/auth/register/payment/" + plans[0].ID
	if account.PaymentURL != wantURL {
		t.Fatalf("expected payment url %s, got %s", wantURL, account.PaymentURL)
	}

	resumed, err := app.SessionCLI.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.NextStep != "plan-selection" {
		t.Fatalf("inactive account should route to plan selection, got %s", resumed.NextStep)
	}
}
