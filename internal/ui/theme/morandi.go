package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#2f2c2a")
	Mantle   = lipgloss.Color("#3a3633")
	Surface0 = lipgloss.Color("#4a4541")
	Surface1 = lipgloss.Color("#6b635c")
	Text     = lipgloss.Color("#e8e2d9")
	Subtext0 = lipgloss.Color("#b5aca1")
	Sage     = lipgloss.Color("#9caf88")
	Dusty    = lipgloss.Color("#a3b1c6")
	Rose     = lipgloss.Color("#c9a9a6")
	Sand     = lipgloss.Color("#d4c4a8")
	Clay     = lipgloss.Color("#c98b7f")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text)

	Pane = lipgloss.NewStyle().
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.Background(Surface0)

	Divider       = lipgloss.NewStyle().Foreground(Surface1)
	DividerActive = lipgloss.NewStyle().Foreground(Sand).Bold(true)

	Title = lipgloss.NewStyle().Foreground(Dusty).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Sand).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Sage)
	Error = lipgloss.NewStyle().Foreground(Clay).Bold(true)
	Star  = lipgloss.NewStyle().Foreground(Rose)
)
