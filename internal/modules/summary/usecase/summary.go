package usecase

import (
	"context"

	"cfdash/internal/modules/summary/dto"
	summaryin "cfdash/internal/modules/summary/port/in"
	summaryout "cfdash/internal/modules/summary/port/out"
)

type Interactor struct {
	api summaryout.SummaryAPI
}

func NewInteractor(api summaryout.SummaryAPI) summaryin.Usecase {
	return &Interactor{api: api}
}

func (i *Interactor) Health(ctx context.Context) (dto.HealthOutput, error) {
	health, err := i.api.Health(ctx)
	if err != nil {
		return dto.HealthOutput{}, err
	}
	return dto.HealthOutput{Percent: health.Percent, Level: health.Level()}, nil
}

func (i *Interactor) Card(ctx context.Context) (dto.CardOutput, error) {
	card, err := i.api.Card(ctx)
	if err != nil {
		return dto.CardOutput{}, err
	}
	return dto.CardOutput{
		Masked: card.Masked(),
		Expiry: card.Expiry,
		Holder: card.Holder,
		Brand:  card.Brand,
	}, nil
}

func (i *Interactor) Monthly(ctx context.Context) ([]dto.MonthOutput, error) {
	points, err := i.api.Monthly(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.MonthOutput, 0, len(points))
	for _, p := range points {
		outputs = append(outputs, dto.MonthOutput{Month: p.Month, Amount: p.Amount.InexactFloat64()})
	}
	return outputs, nil
}
