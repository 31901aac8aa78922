package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"lotus/internal/ui/theme"
)

// Study is what the viewer shows for the selected row.
type Study struct {
	Year    int
	Title   string
	Authors string
	Journal string
	Saved   bool
	SavedAt time.Time
}

// Model is the detail pane beside the results. It renders the selected study
// and the active query as markdown.
type Model struct {
	viewport viewport.Model
	renderer *glamour.TermRenderer
	study    Study
	hasStudy bool
	query    string
	expanded bool
	width    int
	height   int
}

func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderContent())
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Show replaces the displayed study.
func (m *Model) Show(s Study, ok bool) {
	if ok == m.hasStudy && s == m.study {
		return
	}
	m.study = s
	m.hasStudy = ok
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

func (m *Model) SetQuery(q string) {
	if q == m.query {
		return
	}
	m.query = q
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) ToggleExpanded() { m.expanded = !m.expanded }
func (m Model) Expanded() bool   { return m.expanded }

func (m Model) View() string {
	title := "Viewer"
	if m.expanded {
		title += theme.Muted.Render("  (expanded, f to restore)")
	}
	header := theme.Title.Render(title)
	footer := theme.Muted.Render(fmt.Sprintf("%.0f%%", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = max(m.width, 1)
	m.viewport.Height = max(m.height-2, 1)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(m.width-2, 10)),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderContent() string {
	md := Markdown(m.query, m.study, m.hasStudy)
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md); err == nil {
			return rendered
		}
	}
	return md
}

// Markdown is the source the viewer renders.
func Markdown(query string, s Study, ok bool) string {
	var sb strings.Builder
	if query != "" {
		sb.WriteString("**Query:** `" + strings.ReplaceAll(query, "`", "'") + "`\n\n")
	}
	if !ok {
		sb.WriteString("_Select a study to see its details._\n")
		return sb.String()
	}
	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString("## " + title + "\n\n")
	if s.Authors != "" {
		sb.WriteString("- **Authors:** " + s.Authors + "\n")
	}
	if s.Journal != "" {
		sb.WriteString("- **Journal:** " + s.Journal + "\n")
	}
	if s.Year != 0 {
		sb.WriteString(fmt.Sprintf("- **Year:** %d\n", s.Year))
	}
	switch {
	case !s.SavedAt.IsZero():
		sb.WriteString("- **Saved:** " + s.SavedAt.Local().Format("2006-01-02 15:04") + "\n")
	case s.Saved:
		sb.WriteString("- **Saved:** yes\n")
	}
	return sb.String()
}
