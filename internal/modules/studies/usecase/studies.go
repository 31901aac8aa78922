package usecase

import (
	"context"

	"lotus/internal/modules/studies/domain"
	"lotus/internal/modules/studies/dto"
	studiesin "lotus/internal/modules/studies/port/in"
	"lotus/internal/modules/studies/service"
)

type Interactor struct {
	svc *service.SearchService
}

func NewInteractor(svc *service.SearchService) studiesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) (dto.SearchOutput, error) {
	query, studies, err := i.svc.Search(ctx, input.Query)
	if err != nil {
		return dto.SearchOutput{Query: query}, err
	}
	return dto.SearchOutput{Query: query, Studies: toOutputs(studies)}, nil
}

func toOutputs(studies []domain.Study) []dto.StudyOutput {
	out := make([]dto.StudyOutput, 0, len(studies))
	for _, s := range studies {
		out = append(out, dto.StudyOutput{Year: s.Year, Title: s.Title, Authors: s.Authors, Journal: s.Journal})
	}
	return out
}
