package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"lotus/internal/modules/saved/domain"
	studies "lotus/internal/modules/studies/domain"
)

var at = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestEncodeKeepsFieldOrder(t *testing.T) {
	t.Parallel()
	blob, err := domain.Encode([]domain.SavedStudy{{Study: studies.Study{Year: 2020, Title: "A", Authors: "X"}, SavedAt: at}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `[{"year":2020,"title":"A","authors":"X","journal":"","savedAt":"2024-03-01T12:00:00.000Z"}]`
	if blob != want {
		t.Fatalf("blob = %s\nwant  %s", blob, want)
	}
	empty, err := domain.Encode(nil)
	if err != nil || empty != "[]" {
		t.Fatalf("encode nil = %q, %v", empty, err)
	}
}

func TestDecodeRoundTripsAndToleratesBadTimestamps(t *testing.T) {
	t.Parallel()
	blob := `[{"year":"2020","title":"A","authors":"X","journal":"J","savedAt":"2024-03-01T12:00:00.000Z"},{"title":"B","savedAt":"yesterday"}]`
	got, err := domain.Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []domain.SavedStudy{
		{Study: studies.Study{Year: 2020, Title: "A", Authors: "X", Journal: "J"}, SavedAt: at},
		{Study: studies.Study{Title: "B"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsMalformedBlob(t *testing.T) {
	t.Parallel()
	for _, blob := range []string{"not-json", `{"year":2020}`, `[1,2]`} {
		if _, err := domain.Decode(blob); err == nil {
			t.Fatalf("expected decode error for %q", blob)
		}
	}
}

func TestKeyIgnoresJournalAndSavedAt(t *testing.T) {
	t.Parallel()
	a := domain.SavedStudy{Study: studies.Study{Year: 2020, Title: "A", Authors: "X", Journal: "J1"}, SavedAt: at}
	b := studies.Study{Year: 2020, Title: "A", Authors: "X", Journal: "J2"}
	if a.Key() != domain.KeyOf(b) {
		t.Fatalf("keys differ: %v vs %v", a.Key(), domain.KeyOf(b))
	}
	if got := a.Key().String(); got != "2020-A-X" {
		t.Fatalf("key string = %q", got)
	}
}

func TestNewExportFormats(t *testing.T) {
	t.Parallel()
	list := []domain.SavedStudy{{Study: studies.Study{Year: 2020, Title: "A", Authors: "X"}, SavedAt: at}}
	now := time.Date(2025, 7, 9, 23, 30, 0, 0, time.UTC)

	js, err := domain.NewExport(list, domain.FormatJSON, now)
	if err != nil {
		t.Fatalf("json export: %v", err)
	}
	if js.Filename != "lotus-saved-studies-2025-07-09.json" || js.Count != 1 {
		t.Fatalf("json export = %+v", js)
	}
	wantJSON := "[\n  {\n    \"year\": 2020,\n    \"title\": \"A\",\n    \"authors\": \"X\",\n    \"journal\": \"\",\n    \"savedAt\": \"2024-03-01T12:00:00.000Z\"\n  }\n]"
	if string(js.Payload) != wantJSON {
		t.Fatalf("json payload:\n%s", js.Payload)
	}

	ym, err := domain.NewExport(list, domain.FormatYAML, now)
	if err != nil {
		t.Fatalf("yaml export: %v", err)
	}
	if ym.Filename != "lotus-saved-studies-2025-07-09.yaml" {
		t.Fatalf("yaml filename = %q", ym.Filename)
	}
	text := string(ym.Payload)
	if !strings.Contains(text, "year: 2020") || strings.Index(text, "title:") > strings.Index(text, "savedAt:") {
		t.Fatalf("yaml payload:\n%s", text)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	if f, err := domain.ParseFormat(""); err != nil || f != domain.FormatJSON {
		t.Fatalf("ParseFormat(\"\") = %q, %v", f, err)
	}
	if f, err := domain.ParseFormat("yml"); err != nil || f != domain.FormatYAML {
		t.Fatalf("ParseFormat(yml) = %q, %v", f, err)
	}
	if _, err := domain.ParseFormat("csv"); err == nil {
		t.Fatalf("expected error for csv")
	}
}
