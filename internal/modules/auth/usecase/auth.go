package usecase

import (
	"context"

	"lotus/internal/modules/auth/domain"
	"lotus/internal/modules/auth/dto"
	authin "lotus/internal/modules/auth/port/in"
	"lotus/internal/modules/auth/service"
	"lotus/internal/platform/validate"
)

type Interactor struct {
	svc *service.AuthService
}

func NewInteractor(svc *service.AuthService) authin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.UserOutput{}, err
	}
	user, err := i.svc.SignIn(ctx, input.Email, "")
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.UserOutput{}, err
	}
	user, err := i.svc.SignIn(ctx, input.Email, input.Name)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.SignOut(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.UserOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func toOutput(u domain.User) dto.UserOutput {
	return dto.UserOutput{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}
