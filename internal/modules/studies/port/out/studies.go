package out

import (
	"context"

	"lotus/internal/modules/studies/domain"
)

// Fetcher retrieves the studies matching a boolean query string.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]domain.Study, error)
}
