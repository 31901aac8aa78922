package in

import (
	"context"

	"lotus/internal/modules/studies/dto"
	studiesin "lotus/internal/modules/studies/port/in"
)

type CLIHandler struct {
	usecase studiesin.Usecase
}

func NewCLIHandler(usecase studiesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, query string) (dto.SearchOutput, error) {
	return h.usecase.Search(ctx, dto.SearchInput{Query: query})
}
