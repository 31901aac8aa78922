package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"lotus/internal/modules/studies/domain"
	studiesout "lotus/internal/modules/studies/port/out"
	"lotus/internal/platform/logging"
)

type SearchService struct {
	fetcher studiesout.Fetcher
	logger  *zap.Logger
}

func NewSearchService(fetcher studiesout.Fetcher, logger *zap.Logger) *SearchService {
	return &SearchService{fetcher: fetcher, logger: logging.OrNop(logger).Named("search")}
}

// Search returns the studies for query. A blank query never reaches the
// fetcher and yields no studies.
func (s *SearchService) Search(ctx context.Context, query string) (string, []domain.Study, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil, nil
	}
	studies, err := s.fetcher.Fetch(ctx, query)
	if err != nil {
		return query, nil, err
	}
	s.logger.Debug("search", zap.String("query", query), zap.Int("count", len(studies)))
	return query, studies, nil
}
