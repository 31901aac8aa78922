package dto

import "time"

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"max=80"`
}

type UserOutput struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}
