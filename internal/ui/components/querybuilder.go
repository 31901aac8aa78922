package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lotus/internal/ui/theme"
)

// QuerySubmitMsg is emitted when the user presses enter in the builder.
type QuerySubmitMsg struct{ Query string }

// Append joins token onto query with a single space.
func Append(query, token string) string {
	if query == "" {
		return token
	}
	return query + " " + token
}

type operator struct {
	key   string
	label string
	token string
}

var operators = []operator{
	{key: "f1", label: "AND", token: "AND"},
	{key: "f2", label: "OR", token: "OR"},
	{key: "f3", label: "NOT", token: "NOT"},
	{key: "f4", label: "(", token: "("},
	{key: "f5", label: ")", token: ")"},
}

const resetKey = "f6"

// QueryBuilder is the boolean query input with operator shortcuts.
type QueryBuilder struct {
	input  textinput.Model
	active string
	width  int
}

func NewQueryBuilder() QueryBuilder {
	ti := textinput.New()
	ti.Placeholder = "e.g., emotion AND (memory OR attention)"
	ti.CharLimit = 512
	ti.Prompt = "› "
	return QueryBuilder{input: ti}
}

func (q QueryBuilder) Value() string { return q.input.Value() }

func (q *QueryBuilder) SetValue(v string) {
	q.input.SetValue(v)
	q.input.CursorEnd()
}

// SetActive records the query currently driving the results.
func (q *QueryBuilder) SetActive(v string) { q.active = v }

func (q *QueryBuilder) Focus() tea.Cmd { return q.input.Focus() }
func (q *QueryBuilder) Blur()          { q.input.Blur() }
func (q QueryBuilder) Focused() bool   { return q.input.Focused() }

func (q *QueryBuilder) SetWidth(w int) {
	q.width = w
	q.input.Width = max(w-4, 4)
}

func (q QueryBuilder) Update(msg tea.Msg) (QueryBuilder, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(q.input.Value())
			return q, func() tea.Msg { return QuerySubmitMsg{Query: value} }
		case resetKey:
			q.input.SetValue("")
			return q, nil
		}
		for _, op := range operators {
			if key.String() == op.key {
				q.SetValue(Append(q.input.Value(), op.token))
				return q, nil
			}
		}
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q QueryBuilder) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Query") + "\n\n")
	sb.WriteString(q.input.View() + "\n\n")

	buttons := make([]string, 0, len(operators)+1)
	for _, op := range operators {
		buttons = append(buttons, theme.Muted.Render(op.key+" ")+theme.Hot.Render(op.label))
	}
	buttons = append(buttons, theme.Muted.Render(resetKey+" ")+theme.Hot.Render("Reset"))
	sb.WriteString(lipgloss.NewStyle().Width(max(q.width, 10)).Render(strings.Join(buttons, "  ")) + "\n\n")

	if q.active != "" {
		sb.WriteString(theme.Good.Render("● active") + "\n" + theme.Muted.Render(q.active))
	} else {
		sb.WriteString(theme.Muted.Render("enter: search"))
	}
	return sb.String()
}
