package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	studiesout "lotus/internal/modules/studies/adapter/out"
	"lotus/internal/modules/studies/domain"
	apperrors "lotus/internal/platform/errors"
)

func newServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestFetchDecodesResults(t *testing.T) {
	t.Parallel()
	var gotPath string
	base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"year":2015,"title":"Reward","authors":"Smith J","journal":"Neuron"},{"year":"2009","title":"Fear"},7]}`))
	})
	fetcher := studiesout.NewHTTPFetcher(base+"/", time.Second, nil)

	got, err := fetcher.Fetch(context.Background(), "dopamine AND reward")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotPath != "/query/dopamine AND reward/studies" {
		t.Fatalf("path = %q", gotPath)
	}
	want := []domain.Study{
		{Year: 2015, Title: "Reward", Authors: "Smith J", Journal: "Neuron"},
		{Year: 2009, Title: "Fear"},
		{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("studies mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchEscapesQuerySegment(t *testing.T) {
	t.Parallel()
	var gotRaw string
	base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotRaw = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"results":[]}`))
	})
	if _, err := studiesout.NewHTTPFetcher(base, time.Second, nil).Fetch(context.Background(), "a/b?c"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotRaw != "/query/a%2Fb%3Fc/studies" {
		t.Fatalf("escaped path = %q", gotRaw)
	}
}

func TestFetchErrorMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"payload error", http.StatusInternalServerError, `{"error":"index unavailable"}`, "index unavailable"},
		{"no payload", http.StatusServiceUnavailable, `gateway down`, "HTTP 503"},
		{"empty error field", http.StatusNotFound, `{"error":""}`, "HTTP 404"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			base := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := studiesout.NewHTTPFetcher(base, time.Second, nil).Fetch(context.Background(), "q")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, apperrors.ErrFetch) {
				t.Fatalf("expected ErrFetch, got %v", err)
			}
			var fe *domain.FetchError
			if !errors.As(err, &fe) || fe.Status != tc.status {
				t.Fatalf("expected FetchError with status %d, got %#v", tc.status, err)
			}
			if err.Error() != tc.message {
				t.Fatalf("message = %q, want %q", err.Error(), tc.message)
			}
		})
	}
}

func TestFetchDegradesUnreadableSuccessBody(t *testing.T) {
	t.Parallel()
	for _, body := range []string{`not json`, `{"results":"nope"}`, `{"results":null}`, `{}`} {
		base := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		got, err := studiesout.NewHTTPFetcher(base, time.Second, nil).Fetch(context.Background(), "q")
		if err != nil {
			t.Fatalf("body %q: unexpected error %v", body, err)
		}
		if len(got) != 0 {
			t.Fatalf("body %q: got %d studies, want 0", body, len(got))
		}
	}
}

func TestFetchHonoursCancellation(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := studiesout.NewHTTPFetcher(base, 5*time.Second, nil).Fetch(ctx, "q")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
