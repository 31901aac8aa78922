package in

import (
	"context"

	"lotus/internal/modules/studies/dto"
)

type Usecase interface {
	Search(ctx context.Context, input dto.SearchInput) (dto.SearchOutput, error)
}
