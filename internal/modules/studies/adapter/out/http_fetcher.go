package out

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"lotus/internal/modules/studies/domain"
	studiesout "lotus/internal/modules/studies/port/out"
	"lotus/internal/platform/logging"
)

const maxBodyBytes = 16 << 20

type HTTPFetcher struct {
	base   string
	client *http.Client
	logger *zap.Logger
}

func NewHTTPFetcher(apiBase string, timeout time.Duration, logger *zap.Logger) studiesout.Fetcher {
	return &HTTPFetcher{
		base:   strings.TrimRight(apiBase, "/"),
		client: &http.Client{Timeout: timeout},
		logger: logging.OrNop(logger).Named("fetcher"),
	}
}

type payload struct {
	Results json.RawMessage `json:"results"`
	Error   any             `json:"error"`
}

// Fetch issues GET {base}/query/{query}/studies. Any body that does not decode
// is treated as an empty object.
func (f *HTTPFetcher) Fetch(ctx context.Context, query string) ([]domain.Study, error) {
	endpoint := f.base + "/query/" + url.PathEscape(query) + "/studies"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.FetchError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger.Warn("fetch studies", zap.String("query", query), zap.Error(err))
		return nil, &domain.FetchError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	var body payload
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if readErr != nil || json.Unmarshal(raw, &body) != nil {
		body = payload{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(body.Error)
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		f.logger.Warn("fetch studies",
			zap.String("query", query),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return nil, &domain.FetchError{Status: resp.StatusCode, Message: msg}
	}

	studies := decodeResults(body.Results)
	f.logger.Debug("fetched studies",
		zap.String("query", query),
		zap.Int("count", len(studies)),
		zap.Duration("elapsed", time.Since(started)))
	return studies, nil
}

func errorMessage(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if !x {
			return ""
		}
	}
	return fmt.Sprint(v)
}

func decodeResults(raw json.RawMessage) []domain.Study {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []domain.Study{}
	}
	out := make([]domain.Study, 0, len(items))
	for _, item := range items {
		var study domain.Study
		if err := json.Unmarshal(item, &study); err != nil {
			study = domain.Study{}
		}
		out = append(out, study)
	}
	return out
}
