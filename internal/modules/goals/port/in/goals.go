package in

import (
	"context"

	"cfdash/internal/modules/goals/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.GoalOutput, error)
	Create(ctx context.Context, input dto.CreateInput) (dto.GoalOutput, error)
	Edit(ctx context.Context, id string, input dto.EditInput) (dto.GoalOutput, error)
	Adjust(ctx context.Context, id string, delta float64) (dto.GoalOutput, error)
	Remove(ctx context.Context, id string) error
}
