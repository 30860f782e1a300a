package in

import (
	"context"

	"cfdash/internal/modules/goals/dto"
	goalsin "cfdash/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.GoalOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Create(ctx context.Context, title string, target float64, deadline string) (dto.GoalOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{Title: title, Target: target, Deadline: deadline})
}

func (h CLIHandler) Edit(ctx context.Context, id, title string, target, current float64, deadline string) (dto.GoalOutput, error) {
	return h.usecase.Edit(ctx, id, dto.EditInput{Title: title, Target: target, Current: current, Deadline: deadline})
}

func (h CLIHandler) Adjust(ctx context.Context, id string, delta float64) (dto.GoalOutput, error) {
	return h.usecase.Adjust(ctx, id, delta)
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}
