package results

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	collection "lotus/internal/modules/collection/domain"
	saveddto "lotus/internal/modules/saved/dto"
	studiesdto "lotus/internal/modules/studies/dto"
	"lotus/internal/ui/components"
	"lotus/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type SearchPort interface {
	Search(ctx context.Context, query string) (studiesdto.SearchOutput, error)
}

type SavedPort interface {
	List(ctx context.Context) []saveddto.SavedOutput
	Save(ctx context.Context, input saveddto.StudyInput) bool
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries the outcome of the fetch started for generation Gen.
type LoadedMsg struct {
	Gen     uint64
	Query   string
	Studies []studiesdto.StudyOutput
	Err     error
}

// SavedMsg reports a save attempt from the results table.
type SavedMsg struct {
	Title string
	Saved bool
}

// ─── columns ─────────────────────────────────────────────────────────────────

var (
	Columns     = studiesdto.Columns
	DefaultSort = studiesdto.DefaultSort
)

type identity struct {
	year    int
	title   string
	authors string
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	search SearchPort
	saved  SavedPort
	guard  *Guard

	query   string
	rows    []studiesdto.StudyOutput
	sorted  []studiesdto.StudyOutput
	marks   map[identity]bool
	sort    collection.Sort
	pager   collection.Pager
	errText string
	loading bool

	table   table.Model
	spinner spinner.Model
	width   int
	height  int
}

func New(search SearchPort, saved SavedPort, pageSize int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Sand)
	m := Model{
		search:  search,
		saved:   saved,
		guard:   &Guard{},
		marks:   map[identity]bool{},
		sort:    DefaultSort,
		pager:   collection.NewPager(pageSize),
		table:   components.NewTable(),
		spinner: sp,
	}
	m.table.SetColumns(components.FitColumns(80, m.columnSpecs()))
	return m
}

// SetQuery starts a fetch for query. The previous fetch is cancelled and its
// result, should it still arrive, is dropped. The page returns to 1 only when
// the query text changes. A blank query clears the table without fetching.
func (m *Model) SetQuery(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" && m.query == "" {
		return nil
	}
	m.query = query
	m.pager.Reset(query)
	m.errText = ""
	if query == "" {
		m.guard.Stop()
		m.loading = false
		m.rows = nil
		m.refresh()
		return nil
	}
	ctx, gen := m.guard.Begin(context.Background())
	m.loading = true
	return tea.Batch(m.fetchCmd(ctx, gen, query), m.spinner.Tick)
}

// Stop cancels any in-flight fetch.
func (m *Model) Stop() { m.guard.Stop() }

func (m Model) Query() string           { return m.query }
func (m Model) Loading() bool           { return m.loading }
func (m Model) ErrText() string         { return m.errText }
func (m Model) Sort() collection.Sort   { return m.sort }
func (m Model) Pager() collection.Pager { return m.pager }

// Rows is the current page in display order.
func (m Model) Rows() []studiesdto.StudyOutput {
	return collection.Window(m.pager, m.sorted)
}

// Selected is the study under the cursor.
func (m Model) Selected() (studiesdto.StudyOutput, bool) {
	rows := m.Rows()
	i := m.table.Cursor()
	if i < 0 || i >= len(rows) {
		return studiesdto.StudyOutput{}, false
	}
	return rows[i], true
}

// IsSaved reports whether s was in the saved list at the last refresh.
func (m Model) IsSaved(s studiesdto.StudyOutput) bool {
	return m.marks[identity{s.Year, s.Title, s.Authors}]
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case LoadedMsg:
		if !m.guard.Live(msg.Gen) {
			return m, nil
		}
		m.guard.Finish(msg.Gen)
		m.loading = false
		if msg.Err != nil {
			if errors.Is(msg.Err, context.Canceled) {
				return m, nil
			}
			m.errText = "Unable to fetch studies: " + msg.Err.Error()
			m.rows = nil
		} else {
			m.rows = msg.Studies
		}
		m.RefreshMarks()
		return m, nil

	case SavedMsg:
		m.RefreshMarks()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ─── sorting and paging ──────────────────────────────────────────────────────

// CycleSort moves the sort to the next column, ascending.
func (m *Model) CycleSort() {
	m.sort = collection.ToggleSort(m.sort, collection.NextKey(Columns, m.sort.Key))
	m.refresh()
}

// FlipSort reverses the current direction.
func (m *Model) FlipSort() {
	m.sort = collection.ToggleSort(m.sort, m.sort.Key)
	m.refresh()
}

// SortBy sets an explicit ordering.
func (m *Model) SortBy(key string, dir collection.Direction) error {
	if _, ok := collection.Lookup(Columns, key); !ok {
		return fmt.Errorf("unknown column %q", key)
	}
	m.sort = collection.Sort{Key: key, Direction: dir}
	m.refresh()
	return nil
}

func (m *Model) NextPage()  { m.pager.Next(); m.rebuild() }
func (m *Model) PrevPage()  { m.pager.Prev(); m.rebuild() }
func (m *Model) FirstPage() { m.pager.First(); m.rebuild() }
func (m *Model) LastPage()  { m.pager.Last(); m.rebuild() }
func (m *Model) GoPage(n int) {
	m.pager.Go(n)
	m.rebuild()
}

// SaveSelected saves the study under the cursor.
func (m Model) SaveSelected() tea.Cmd {
	study, ok := m.Selected()
	if !ok || m.saved == nil {
		return nil
	}
	saved := m.saved
	return func() tea.Msg {
		ok := saved.Save(context.Background(), saveddto.StudyInput{
			Year: study.Year, Title: study.Title, Authors: study.Authors, Journal: study.Journal,
		})
		return SavedMsg{Title: study.Title, Saved: ok}
	}
}

// RefreshMarks reloads which rows are already saved and redraws.
func (m *Model) RefreshMarks() {
	marks := map[identity]bool{}
	if m.saved != nil {
		for _, s := range m.saved.List(context.Background()) {
			marks[identity{s.Year, s.Title, s.Authors}] = true
		}
	}
	m.marks = marks
	m.refresh()
}

func (m *Model) refresh() {
	column, ok := collection.Lookup(Columns, m.sort.Key)
	if !ok {
		column = Columns[0]
	}
	m.sorted = collection.SortedBy(m.rows, column, m.sort.Direction)
	m.pager.Sync(len(m.sorted))
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.table.SetColumns(components.FitColumns(width, m.columnSpecs()))
	m.rebuild()
}

func (m *Model) rebuild() {
	page := m.Rows()
	rows := make([]table.Row, 0, len(page))
	for _, s := range page {
		mark := "☆"
		if m.IsSaved(s) {
			mark = "★"
		}
		year := ""
		if s.Year != 0 {
			year = strconv.Itoa(s.Year)
		}
		rows = append(rows, table.Row{mark, year, s.Title, s.Authors, s.Journal})
	}
	m.table.SetRows(rows)
	// An empty table leaves the cursor at -1; it must come back once rows exist.
	if c := m.table.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		m.table.SetCursor(min(max(c, 0), len(rows)-1))
	}
}

func (m *Model) resize() {
	m.table.SetColumns(components.FitColumns(m.width, m.columnSpecs()))
	m.table.SetWidth(m.width)
	m.table.SetHeight(max(m.height-4, 3))
}

func (m Model) columnSpecs() []components.ColumnSpec {
	specs := []components.ColumnSpec{{Title: " ", Fixed: 1}}
	weights := map[string]int{"title": 4, "authors": 2, "journal": 2}
	for _, c := range Columns {
		title := c.Label
		if c.Key == m.sort.Key {
			title += " " + m.sort.Direction.Arrow()
		}
		if c.Key == "year" {
			specs = append(specs, components.ColumnSpec{Title: title, Fixed: 6})
			continue
		}
		specs = append(specs, components.ColumnSpec{Title: title, Weight: weights[c.Key]})
	}
	return specs
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := theme.Title.Render("Studies")
	if m.query != "" {
		header += theme.Muted.Render(fmt.Sprintf("  %d results · page %d/%d", len(m.rows), m.pager.Page(), m.pager.TotalPages()))
	}

	var body string
	switch {
	case m.query == "":
		body = theme.Muted.Render("Enter a query to search studies")
	case m.loading:
		body = m.spinner.View() + " Loading studies…"
	case m.errText != "":
		body = theme.Error.Render(m.errText)
	case len(m.rows) == 0:
		body = theme.Muted.Render("No studies match this query")
	default:
		body = m.table.View()
	}
	footer := theme.Muted.Render("s save  y/Y sort  n/p page")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}

func (m Model) fetchCmd(ctx context.Context, gen uint64, query string) tea.Cmd {
	search := m.search
	return func() tea.Msg {
		out, err := search.Search(ctx, query)
		return LoadedMsg{Gen: gen, Query: query, Studies: out.Studies, Err: err}
	}
}
