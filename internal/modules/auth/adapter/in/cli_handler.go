package in

import (
	"context"

	"lotus/internal/modules/auth/dto"
	authin "lotus/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (dto.UserOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, email, password, name string) (dto.UserOutput, error) {
	return h.usecase.Register(ctx, dto.RegisterInput{Email: email, Password: password, Name: name})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.Current(ctx)
}
