package service_test

import (
	"errors"
	"testing"

	"cfdash/internal/modules/session/domain"
	"cfdash/internal/modules/session/service"
	apperrors "cfdash/internal/platform/errors"
)

func TestStatusFromMapping(t *testing.T) {
	t.Parallel()
	gate := service.NewGateService()

	cases := []struct {
		name  string
		probe domain.AccountProbe
		err   error
		want  domain.AccountStatus
	}{
		{"active account", domain.AccountProbe{HasAccount: true, Active: true}, nil, domain.StatusActive},
		{"inactive account", domain.AccountProbe{HasAccount: true, Active: false}, nil, domain.StatusAccountInactive},
		{"no account flag", domain.AccountProbe{HasAccount: false}, nil, domain.StatusNoAccount},
		{"not found probe", domain.AccountProbe{}, apperrors.ErrNotFound, domain.StatusNoAccount},
	}
	for _, tc := range cases {
		status, err := gate.StatusFrom(tc.probe, tc.err)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if status != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, status)
		}
	}
}

func TestStatusFromPropagatesUnknownErrors(t *testing.T) {
	t.Parallel()
	gate := service.NewGateService()
	boom := errors.New("connection refused")
	status, err := gate.StatusFrom(domain.AccountProbe{}, boom)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the probe error back, got %v", err)
	}
	if status != domain.StatusUnknown {
		t.Fatalf("expected unknown status, got %s", status)
	}
}

func TestNextStepRouting(t *testing.T) {
	t.Parallel()
	gate := service.NewGateService()

	steps := map[domain.AccountStatus]domain.Step{
		domain.StatusNoAccount:       domain.StepAccountSetup,
		domain.StatusAccountInactive: domain.StepPlanSelection,
		domain.StatusActive:          domain.StepDashboard,
		domain.StatusUnknown:         domain.StepLogin,
	}
	for status, want := range steps {
		if got := gate.NextStep(status); got != want {
			t.Fatalf("status %s: expected step %s, got %s", status, want, got)
		}
	}
}
