package in

import (
	"context"

	"lotus/internal/modules/saved/dto"
)

type Usecase interface {
	List(ctx context.Context) []dto.SavedOutput
	Save(ctx context.Context, input dto.StudyInput) bool
	IsSaved(ctx context.Context, input dto.StudyInput) bool
	RemoveAt(ctx context.Context, index int) bool
	ClearAll(ctx context.Context) bool
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
