package in

import (
	"context"

	"lotus/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.UserOutput, error)
}
