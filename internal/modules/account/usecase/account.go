package usecase

import (
	"context"
	"strings"

	"cfdash/internal/modules/account/domain"
	"cfdash/internal/modules/account/dto"
	accountin "cfdash/internal/modules/account/port/in"
	accountout "cfdash/internal/modules/account/port/out"
	apperrors "cfdash/internal/platform/errors"
)

// Interactor drives onboarding after login: user registration, the plan
// catalog, and linking an account to a chosen plan. Payment itself happens
// at an external gateway; the client only hands over the checkout URL.
type Interactor struct {
	api        accountout.AccountAPI
	webBaseURL string
}

func NewInteractor(api accountout.AccountAPI, webBaseURL string) accountin.Usecase {
	return &Interactor{api: api, webBaseURL: strings.TrimRight(webBaseURL, "/")}
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.RegisterOutput, error) {
	reg := domain.Registration{Name: input.Name, Email: input.Email, Password: input.Password}
	if err := reg.Validate(); err != nil {
		return dto.RegisterOutput{}, err
	}
	id, name, email, err := i.api.Register(ctx, reg)
	if err != nil {
		return dto.RegisterOutput{}, err
	}
	return dto.RegisterOutput{ID: id, Name: name, Email: email}, nil
}

func (i *Interactor) Plans(ctx context.Context) ([]dto.PlanOutput, error) {
	plans, err := i.api.Plans(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.PlanOutput, 0, len(plans))
	for _, p := range plans {
		outputs = append(outputs, dto.PlanOutput{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price.InexactFloat64(),
			Description: p.Description,
		})
	}
	return outputs, nil
}

func (i *Interactor) CreateAccount(ctx context.Context, planID string) (dto.AccountOutput, error) {
	if strings.TrimSpace(planID) == "" {
		v := apperrors.NewValidation()
		v.Add("plan", "select a plan before continuing")
		return dto.AccountOutput{}, v
	}
	if err := i.api.CreateAccount(ctx, planID); err != nil {
		return dto.AccountOutput{}, err
	}
	return dto.AccountOutput{
		PlanID:     planID,
		PaymentURL: i.webBaseURL + "/auth/register/payment/" + planID,
	}, nil
}
