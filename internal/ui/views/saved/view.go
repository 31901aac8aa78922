package saved

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	collection "lotus/internal/modules/collection/domain"
	saveddto "lotus/internal/modules/saved/dto"
	"lotus/internal/ui/components"
	"lotus/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context) []saveddto.SavedOutput
	RemoveAt(ctx context.Context, index int) bool
	ClearAll(ctx context.Context) bool
	Export(ctx context.Context, input saveddto.ExportInput) (saveddto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ChangedMsg struct {
	Action string
	OK     bool
}

type ExportedMsg struct {
	Out saveddto.ExportOutput
	Err error
}

// ─── columns ─────────────────────────────────────────────────────────────────

var (
	Columns     = saveddto.Columns
	DefaultSort = saveddto.DefaultSort
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   Port
	items  []saveddto.SavedOutput
	sorted []saveddto.SavedOutput
	sort   collection.Sort
	pager  collection.Pager

	confirmClear bool
	table        table.Model
	width        int
	height       int
}

func New(port Port, pageSize int) Model {
	m := Model{
		port:  port,
		sort:  DefaultSort,
		pager: collection.NewPager(pageSize),
		table: components.NewTable(),
	}
	m.table.SetColumns(components.FitColumns(80, m.columnSpecs()))
	return m
}

// Reload reads the saved list again, keeping the page where possible.
func (m *Model) Reload() {
	if m.port == nil {
		return
	}
	m.items = m.port.List(context.Background())
	m.refresh()
}

func (m Model) Len() int                { return len(m.items) }
func (m Model) Sort() collection.Sort   { return m.sort }
func (m Model) Pager() collection.Pager { return m.pager }
func (m Model) ConfirmingClear() bool   { return m.confirmClear }
func (m Model) Rows() []saveddto.SavedOutput {
	return collection.Window(m.pager, m.sorted)
}

// Selected is the entry under the cursor.
func (m Model) Selected() (saveddto.SavedOutput, bool) {
	rows := m.Rows()
	i := m.table.Cursor()
	if i < 0 || i >= len(rows) {
		return saveddto.SavedOutput{}, false
	}
	return rows[i], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(components.FitColumns(m.width, m.columnSpecs()))
		m.table.SetWidth(m.width)
		m.table.SetHeight(max(m.height-4, 3))
		return m, nil

	case ChangedMsg:
		m.Reload()
		return m, nil

	case tea.KeyMsg:
		if m.confirmClear && msg.String() != "C" {
			m.confirmClear = false
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ─── actions ─────────────────────────────────────────────────────────────────

// RemoveSelected deletes the entry under the cursor by its insertion index.
func (m Model) RemoveSelected() tea.Cmd {
	row, ok := m.Selected()
	if !ok || m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		return ChangedMsg{Action: "removed " + row.Title, OK: port.RemoveAt(context.Background(), row.Index)}
	}
}

// RequestClear asks for confirmation first; the second call clears.
func (m *Model) RequestClear() tea.Cmd {
	if len(m.items) == 0 || m.port == nil {
		return nil
	}
	if !m.confirmClear {
		m.confirmClear = true
		return nil
	}
	m.confirmClear = false
	port := m.port
	return func() tea.Msg {
		return ChangedMsg{Action: "cleared saved studies", OK: port.ClearAll(context.Background())}
	}
}

func (m Model) Export(format string) tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		out, err := port.Export(context.Background(), saveddto.ExportInput{Format: format})
		return ExportedMsg{Out: out, Err: err}
	}
}

func (m *Model) CycleSort() {
	m.sort = collection.ToggleSort(m.sort, collection.NextKey(Columns, m.sort.Key))
	m.refresh()
}

func (m *Model) FlipSort() {
	m.sort = collection.ToggleSort(m.sort, m.sort.Key)
	m.refresh()
}

func (m *Model) SortBy(key string, dir collection.Direction) error {
	if key == "saved" {
		key = "savedAt"
	}
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

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) refresh() {
	column, ok := collection.Lookup(Columns, m.sort.Key)
	if !ok {
		column = Columns[len(Columns)-1]
	}
	m.sorted = collection.SortedBy(m.items, column, m.sort.Direction)
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
		year := ""
		if s.Year != 0 {
			year = strconv.Itoa(s.Year)
		}
		saved := ""
		if !s.SavedAt.IsZero() {
			saved = s.SavedAt.Local().Format("2006-01-02")
		}
		rows = append(rows, table.Row{year, s.Title, s.Authors, s.Journal, saved})
	}
	m.table.SetRows(rows)
	// An empty table leaves the cursor at -1; it must come back once rows exist.
	if c := m.table.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		m.table.SetCursor(min(max(c, 0), len(rows)-1))
	}
}

func (m Model) columnSpecs() []components.ColumnSpec {
	fixed := map[string]int{"year": 6, "savedAt": 10}
	weights := map[string]int{"title": 4, "authors": 2, "journal": 2}
	specs := make([]components.ColumnSpec, 0, len(Columns))
	for _, c := range Columns {
		title := c.Label
		if c.Key == m.sort.Key {
			title += " " + m.sort.Direction.Arrow()
		}
		specs = append(specs, components.ColumnSpec{Title: title, Fixed: fixed[c.Key], Weight: weights[c.Key]})
	}
	return specs
}

func (m Model) View() string {
	header := theme.Title.Render("Saved Studies") +
		theme.Muted.Render(fmt.Sprintf("  %d saved · page %d/%d", len(m.items), m.pager.Page(), m.pager.TotalPages()))

	var body string
	if len(m.items) == 0 {
		body = theme.Muted.Render("No saved studies yet. Press s on a search result to save it here.")
	} else {
		body = m.table.View()
	}
	footer := theme.Muted.Render("x remove  E export  C clear all")
	if m.confirmClear {
		footer = theme.Error.Render(fmt.Sprintf("Remove all %d saved studies? Press C again to confirm.", len(m.items)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}
