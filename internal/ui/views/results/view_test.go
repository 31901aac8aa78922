package results_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	collection "lotus/internal/modules/collection/domain"
	saveddto "lotus/internal/modules/saved/dto"
	studiesdto "lotus/internal/modules/studies/dto"
	"lotus/internal/ui/views/results"
)

type scriptedSearch struct {
	results map[string][]studiesdto.StudyOutput
	errs    map[string]error
	block   map[string]bool
	calls   []string
}

func (s *scriptedSearch) Search(ctx context.Context, query string) (studiesdto.SearchOutput, error) {
	s.calls = append(s.calls, query)
	if s.block[query] {
		<-ctx.Done()
		return studiesdto.SearchOutput{}, ctx.Err()
	}
	if err := s.errs[query]; err != nil {
		return studiesdto.SearchOutput{}, err
	}
	return studiesdto.SearchOutput{Query: query, Studies: s.results[query]}, nil
}

type memorySaved struct {
	list []saveddto.SavedOutput
}

func (m *memorySaved) List(context.Context) []saveddto.SavedOutput { return m.list }

func (m *memorySaved) Save(_ context.Context, in saveddto.StudyInput) bool {
	for _, s := range m.list {
		if s.Year == in.Year && s.Title == in.Title && s.Authors == in.Authors {
			return false
		}
	}
	m.list = append(m.list, saveddto.SavedOutput{Index: len(m.list), Year: in.Year, Title: in.Title, Authors: in.Authors, Journal: in.Journal})
	return true
}

// loaded runs cmd and returns the LoadedMsg it produces.
func loaded(t *testing.T, cmd tea.Cmd) results.LoadedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("nil command")
	}
	switch msg := cmd().(type) {
	case results.LoadedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if m, ok := c().(results.LoadedMsg); ok {
				return m
			}
		}
	}
	t.Fatalf("command produced no LoadedMsg")
	return results.LoadedMsg{}
}

func studies(prefix string, n int) []studiesdto.StudyOutput {
	out := make([]studiesdto.StudyOutput, n)
	for i := range out {
		out[i] = studiesdto.StudyOutput{Year: 2000 + i, Title: fmt.Sprintf("%s %02d", prefix, i), Authors: "Team"}
	}
	return out
}

func titles(rows []studiesdto.StudyOutput) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Title)
	}
	return out
}

func TestSupersededResultNeverOverwritesNewer(t *testing.T) {
	search := &scriptedSearch{
		results: map[string][]studiesdto.StudyOutput{"new": studies("new", 2)},
		block:   map[string]bool{"old": true},
	}
	m := results.New(search, nil, 20)

	oldCmd := m.SetQuery("old")
	newCmd := m.SetQuery("new")
	oldMsg := loaded(t, oldCmd)
	newMsg := loaded(t, newCmd)

	m, _ = m.Update(newMsg)
	m, _ = m.Update(oldMsg)

	if diff := cmp.Diff([]string{"new 01", "new 00"}, titles(m.Rows())); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if m.ErrText() != "" || m.Loading() {
		t.Fatalf("err=%q loading=%v", m.ErrText(), m.Loading())
	}
}

func TestLateResultArrivingFirstIsDropped(t *testing.T) {
	search := &scriptedSearch{results: map[string][]studiesdto.StudyOutput{
		"old": studies("old", 3),
		"new": studies("new", 1),
	}}
	m := results.New(search, nil, 20)
	oldCmd := m.SetQuery("old")
	oldMsg := loaded(t, oldCmd)
	newCmd := m.SetQuery("new")

	m, _ = m.Update(oldMsg)
	if len(m.Rows()) != 0 || !m.Loading() {
		t.Fatalf("stale result applied: %v", titles(m.Rows()))
	}
	m, _ = m.Update(loaded(t, newCmd))
	if diff := cmp.Diff([]string{"new 00"}, titles(m.Rows())); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchErrorShownUntilNextQuery(t *testing.T) {
	search := &scriptedSearch{
		errs:    map[string]error{"bad": errors.New("HTTP 500")},
		results: map[string][]studiesdto.StudyOutput{"good": studies("good", 1)},
	}
	m := results.New(search, nil, 20)
	cmd := m.SetQuery("bad")
	m, _ = m.Update(loaded(t, cmd))
	if m.ErrText() != "Unable to fetch studies: HTTP 500" {
		t.Fatalf("err text = %q", m.ErrText())
	}
	cmd = m.SetQuery("good")
	if m.ErrText() != "" {
		t.Fatalf("error not cleared on query change")
	}
	m, _ = m.Update(loaded(t, cmd))
	if len(m.Rows()) != 1 {
		t.Fatalf("rows = %v", titles(m.Rows()))
	}
}

func TestBlankQueryDoesNotFetch(t *testing.T) {
	t.Parallel()
	search := &scriptedSearch{}
	m := results.New(search, nil, 20)
	if cmd := m.SetQuery("   "); cmd != nil {
		t.Fatalf("blank query returned a command")
	}
	if len(search.calls) != 0 {
		t.Fatalf("blank query fetched: %v", search.calls)
	}
}

func TestPageResetsOnNewQueryButNotOnRefresh(t *testing.T) {
	search := &scriptedSearch{results: map[string][]studiesdto.StudyOutput{
		"a": studies("a", 45),
		"b": studies("b", 45),
	}}
	m := results.New(search, nil, 20)
	cmd := m.SetQuery("a")
	m, _ = m.Update(loaded(t, cmd))
	m.LastPage()
	if m.Pager().Page() != 3 {
		t.Fatalf("page = %d, want 3", m.Pager().Page())
	}

	cmd = m.SetQuery("a")
	m, _ = m.Update(loaded(t, cmd))
	if m.Pager().Page() != 3 {
		t.Fatalf("refresh moved page to %d", m.Pager().Page())
	}

	cmd = m.SetQuery("b")
	m, _ = m.Update(loaded(t, cmd))
	if m.Pager().Page() != 1 {
		t.Fatalf("new query left page at %d", m.Pager().Page())
	}
	if got := len(m.Rows()); got != 20 {
		t.Fatalf("page rows = %d", got)
	}
}

func TestDefaultSortIsYearDescendingAndToggles(t *testing.T) {
	search := &scriptedSearch{results: map[string][]studiesdto.StudyOutput{"q": {
		{Year: 2001, Title: "b"}, {Year: 2010, Title: "a"}, {Year: 2005, Title: "c"},
	}}}
	m := results.New(search, nil, 20)
	cmd := m.SetQuery("q")
	m, _ = m.Update(loaded(t, cmd))
	if diff := cmp.Diff([]string{"a", "c", "b"}, titles(m.Rows())); diff != "" {
		t.Fatalf("default order mismatch (-want +got):\n%s", diff)
	}

	m.FlipSort()
	if m.Sort() != (collection.Sort{Key: "year", Direction: collection.Asc}) {
		t.Fatalf("sort = %+v", m.Sort())
	}
	m.CycleSort()
	if m.Sort() != (collection.Sort{Key: "title", Direction: collection.Asc}) {
		t.Fatalf("sort = %+v", m.Sort())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, titles(m.Rows())); diff != "" {
		t.Fatalf("title order mismatch (-want +got):\n%s", diff)
	}
	if err := m.SortBy("volume", collection.Asc); err == nil {
		t.Fatalf("unknown column accepted")
	}
}

func TestSaveSelectedMarksRow(t *testing.T) {
	search := &scriptedSearch{results: map[string][]studiesdto.StudyOutput{"q": {{Year: 2010, Title: "a", Authors: "X"}}}}
	saved := &memorySaved{}
	m := results.New(search, saved, 20)
	cmd := m.SetQuery("q")
	m, _ = m.Update(loaded(t, cmd))

	row, ok := m.Selected()
	if !ok || m.IsSaved(row) {
		t.Fatalf("selected=%v saved=%v", ok, m.IsSaved(row))
	}
	msg, isSaved := m.SaveSelected()().(results.SavedMsg)
	if !isSaved || !msg.Saved {
		t.Fatalf("save msg = %#v", msg)
	}
	m, _ = m.Update(msg)
	if !m.IsSaved(row) {
		t.Fatalf("row not marked saved")
	}
	again := m.SaveSelected()().(results.SavedMsg)
	if again.Saved || len(saved.list) != 1 {
		t.Fatalf("duplicate save: %#v, list %d", again, len(saved.list))
	}
}

func TestFirstLoadAfterEmptyTableSelectsTopRow(t *testing.T) {
	search := &scriptedSearch{results: map[string][]studiesdto.StudyOutput{"dopamine": {{Year: 2012, Title: "Reward prediction", Authors: "Schultz"}}}}
	saved := &memorySaved{}
	m := results.New(search, saved, 20)
	m.RefreshMarks()

	cmd := m.SetQuery("dopamine")
	m, _ = m.Update(loaded(t, cmd))
	row, ok := m.Selected()
	if !ok || row.Title != "Reward prediction" {
		t.Fatalf("selected = %+v, %v", row, ok)
	}
	save := m.SaveSelected()
	if save == nil {
		t.Fatalf("save returned no command")
	}
	if msg := save().(results.SavedMsg); !msg.Saved || len(saved.list) != 1 {
		t.Fatalf("save msg = %#v, list %d", msg, len(saved.list))
	}
}
