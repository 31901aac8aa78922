package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"lotus/internal/ui/theme"
)

// ColumnSpec sizes one table column: Fixed cells, or a Weight share of what
// remains after the fixed columns.
type ColumnSpec struct {
	Title  string
	Fixed  int
	Weight int
}

// NewTable returns a table that only moves its cursor with up/down and j/k.
// Paging is owned by the caller.
func NewTable() table.Model {
	t := table.New(table.WithFocused(true))
	t.KeyMap = table.KeyMap{
		LineUp:   key.NewBinding(key.WithKeys("up", "k")),
		LineDown: key.NewBinding(key.WithKeys("down", "j")),
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Dusty).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.Base).
		Background(theme.Sand).
		Bold(false)
	t.SetStyles(styles)
	return t
}

// FitColumns distributes width across specs. Each column keeps at least one
// cell; cell padding of two per column is taken off first.
func FitColumns(width int, specs []ColumnSpec) []table.Column {
	avail := width - 2*len(specs)
	weights := 0
	for _, s := range specs {
		avail -= s.Fixed
		weights += s.Weight
	}
	if avail < 0 {
		avail = 0
	}
	cols := make([]table.Column, len(specs))
	used := 0
	last := -1
	for i, s := range specs {
		w := s.Fixed
		if s.Weight > 0 && weights > 0 {
			w = avail * s.Weight / weights
			used += w
			last = i
		}
		cols[i] = table.Column{Title: s.Title, Width: max(w, 1)}
	}
	if last >= 0 {
		cols[last].Width = max(cols[last].Width+avail-used, 1)
	}
	return cols
}
