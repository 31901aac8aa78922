package usecase

import (
	"context"
	"fmt"

	"lotus/internal/modules/saved/domain"
	"lotus/internal/modules/saved/dto"
	savedin "lotus/internal/modules/saved/port/in"
	"lotus/internal/modules/saved/service"
	studies "lotus/internal/modules/studies/domain"
	apperrors "lotus/internal/platform/errors"
)

type Interactor struct {
	store *service.Store
}

func NewInteractor(store *service.Store) savedin.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) List(ctx context.Context) []dto.SavedOutput {
	list := i.store.Load(ctx)
	out := make([]dto.SavedOutput, 0, len(list))
	for idx, s := range list {
		out = append(out, dto.SavedOutput{
			Index:   idx,
			Year:    s.Year,
			Title:   s.Title,
			Authors: s.Authors,
			Journal: s.Journal,
			SavedAt: s.SavedAt,
		})
	}
	return out
}

func (i *Interactor) Save(ctx context.Context, input dto.StudyInput) bool {
	return i.store.Save(ctx, toStudy(input))
}

func (i *Interactor) IsSaved(ctx context.Context, input dto.StudyInput) bool {
	return i.store.IsSaved(ctx, toStudy(input))
}

func (i *Interactor) RemoveAt(ctx context.Context, index int) bool {
	return i.store.RemoveAt(ctx, index)
}

func (i *Interactor) ClearAll(ctx context.Context) bool {
	return i.store.ClearAll(ctx)
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	format, err := domain.ParseFormat(input.Format)
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	export, location, err := i.store.ExportAll(ctx, format)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Filename: export.Filename, Location: location, Format: string(export.Format), Count: export.Count}, nil
}

func toStudy(input dto.StudyInput) studies.Study {
	return studies.Study{Year: input.Year, Title: input.Title, Authors: input.Authors, Journal: input.Journal}
}
