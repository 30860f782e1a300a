package in

import (
	"context"

	"cfdash/internal/modules/session/dto"
	sessionin "cfdash/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string, remember bool) (dto.LoginOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Password: password, Remember: remember})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Resume(ctx)
}
