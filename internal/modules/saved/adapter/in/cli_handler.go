package in

import (
	"context"
	"fmt"

	"lotus/internal/modules/saved/dto"
	savedin "lotus/internal/modules/saved/port/in"
	apperrors "lotus/internal/platform/errors"
)

type CLIHandler struct {
	usecase savedin.Usecase
}

func NewCLIHandler(usecase savedin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) []dto.SavedOutput {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Save(ctx context.Context, input dto.StudyInput) bool {
	return h.usecase.Save(ctx, input)
}

// Remove deletes the entry at the insertion-order index shown by List.
func (h CLIHandler) Remove(ctx context.Context, index int) error {
	if !h.usecase.RemoveAt(ctx, index) {
		return fmt.Errorf("%w: no saved study at index %d", apperrors.ErrNotFound, index)
	}
	return nil
}

func (h CLIHandler) Clear(ctx context.Context) error {
	if !h.usecase.ClearAll(ctx) {
		return fmt.Errorf("clear saved studies failed")
	}
	return nil
}

func (h CLIHandler) Export(ctx context.Context, format string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Format: format})
}
