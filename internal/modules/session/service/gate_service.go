package service

import (
	"errors"

	"cfdash/internal/modules/session/domain"
	apperrors "cfdash/internal/platform/errors"
)

// GateService is the pure routing policy of the session gate. It derives an
// account status from the probe result and decides the next onboarding step;
// it performs no I/O and no navigation itself.
type GateService struct{}

func NewGateService() GateService {
	return GateService{}
}

// StatusFrom maps a probe result (or its error) to an account status. A
// not-found probe means the authenticated user has no linked account yet;
// every other error leaves the status unknown so the caller degrades to
// logged-out rather than guessing.
func (GateService) StatusFrom(probe domain.AccountProbe, err error) (domain.AccountStatus, error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.StatusNoAccount, nil
		}
		return domain.StatusUnknown, err
	}
	switch {
	case !probe.HasAccount:
		return domain.StatusNoAccount, nil
	case !probe.Active:
		return domain.StatusAccountInactive, nil
	default:
		return domain.StatusActive, nil
	}
}

// NextStep decides where the user goes for a given status.
func (GateService) NextStep(status domain.AccountStatus) domain.Step {
	switch status {
	case domain.StatusNoAccount:
		return domain.StepAccountSetup
	case domain.StatusAccountInactive:
		return domain.StepPlanSelection
	case domain.StatusActive:
		return domain.StepDashboard
	default:
		return domain.StepLogin
	}
}
