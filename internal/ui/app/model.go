package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "lotus/internal/modules/auth/dto"
	collection "lotus/internal/modules/collection/domain"
	layout "lotus/internal/modules/layout/domain"
	saveddto "lotus/internal/modules/saved/dto"
	studiesdto "lotus/internal/modules/studies/dto"
	apperrors "lotus/internal/platform/errors"
	"lotus/internal/ui/components"
	"lotus/internal/ui/pointer"
	"lotus/internal/ui/theme"
	resultsview "lotus/internal/ui/views/results"
	savedview "lotus/internal/ui/views/saved"
	viewerview "lotus/internal/ui/views/viewer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type studiesPort interface {
	Search(ctx context.Context, query string) (studiesdto.SearchOutput, error)
}

type savedPort interface {
	List(ctx context.Context) []saveddto.SavedOutput
	Save(ctx context.Context, input saveddto.StudyInput) bool
	Remove(ctx context.Context, index int) error
	Clear(ctx context.Context) error
	Export(ctx context.Context, format string) (saveddto.ExportOutput, error)
}

type authPort interface {
	Login(ctx context.Context, email, password string) (authdto.UserOutput, error)
	Register(ctx context.Context, email, password, name string) (authdto.UserOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (authdto.UserOutput, error)
}

// ─── panes and tabs ──────────────────────────────────────────────────────────

type paneID int

const (
	paneQuery paneID = iota
	paneList
	paneViewer
	paneCount
)

type tabID int

const (
	tabResults tabID = iota
	tabSaved
	tabCount
)

var tabLabels = [tabCount]string{"1 Results", "2 Saved"}

const (
	dividerTolerance = 1
	nudgeStep        = 2
)

// ─── async messages ───────────────────────────────────────────────────────────

type userMsg struct {
	action string
	user   authdto.UserOutput
	ok     bool
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Focus    key.Binding
	Tabs     key.Binding
	Search   key.Binding
	Save     key.Binding
	Remove   key.Binding
	Sort     key.Binding
	Flip     key.Binding
	Page     key.Binding
	Ends     key.Binding
	Export   key.Binding
	Clear    key.Binding
	Expand   key.Binding
	Resize   key.Binding
	Palette  key.Binding
	Help     key.Binding
	Quit     key.Binding
	Navigate key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Focus:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next pane")),
		Tabs:     key.NewBinding(key.WithKeys("1", "2"), key.WithHelp("1/2", "results/saved")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "edit query")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save study")),
		Remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove saved")),
		Sort:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "sort column")),
		Flip:     key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "sort direction")),
		Page:     key.NewBinding(key.WithKeys("n", "p"), key.WithHelp("n/p", "next/prev page")),
		Ends:     key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("g/G", "first/last page")),
		Export:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export saved")),
		Clear:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear saved")),
		Expand:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "expand viewer")),
		Resize:   key.NewBinding(key.WithKeys("[", "]", "{", "}"), key.WithHelp("[ ] { }", "move dividers")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Navigate: key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Tabs, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Tabs, k.Search, k.Navigate},
		{k.Save, k.Remove, k.Export, k.Clear},
		{k.Sort, k.Flip, k.Page, k.Ends},
		{k.Expand, k.Resize, k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Options configures the root model.
type Options struct {
	PageSize     int
	MinPaneWidth int
	PaneSplit    []float64
	Query        string
}

// Model is the root Bubble Tea model. It owns the three-pane layout, focus and
// tab routing, the signed-in user, the help overlay and the command palette.
// All business logic is delegated to port interfaces; all rendering is
// delegated to sub-views.
type Model struct {
	studies studiesPort
	saved   savedPort
	auth    authPort

	engine *layout.Engine
	hub    *pointer.Hub

	query     components.QueryBuilder
	results   resultsview.Model
	savedView savedview.Model
	viewer    viewerview.Model

	focus    paneID
	tab      tabID
	user     authdto.UserOutput
	signedIn bool
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	startup  tea.Cmd
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(studies studiesPort, saved savedPort, auth authPort, opts Options) Model {
	split := opts.PaneSplit
	if len(split) != int(paneCount) {
		split = []float64{20, 35, 45}
	}
	minWidth := opts.MinPaneWidth
	if minWidth <= 0 {
		minWidth = 24
	}
	hub := pointer.NewHub()

	var resultsSaved resultsview.SavedPort
	var savedV savedview.Model
	if saved != nil {
		resultsSaved = resultsSavedBridge{p: saved}
		savedV = savedview.New(savedViewBridge{p: saved}, opts.PageSize)
	} else {
		savedV = savedview.New(nil, opts.PageSize)
	}

	m := Model{
		studies:   studies,
		saved:     saved,
		auth:      auth,
		engine:    layout.NewEngine(split, float64(minWidth), hub),
		hub:       hub,
		query:     components.NewQueryBuilder(),
		results:   resultsview.New(studiesBridge{p: studies}, resultsSaved, opts.PageSize),
		savedView: savedV,
		viewer:    viewerview.New(),
		focus:     paneQuery,
		tab:       tabResults,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
	focus := m.query.Focus()
	if q := strings.TrimSpace(opts.Query); q != "" {
		m.query.SetValue(q)
		m.query.SetActive(q)
		m.focus = paneList
		m.query.Blur()
		focus = nil
		m.viewer.SetQuery(q)
		m.startup = m.results.SetQuery(q)
	}
	m.startup = tea.Batch(m.startup, focus)
	m.results.RefreshMarks()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startup, m.loadUserCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncViewer()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	// The palette intercepts key input while open.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(keyMsg)
		return cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case components.QuerySubmitMsg:
		return m.submitQuery(msg.Query)

	case resultsview.LoadedMsg:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		if msg.Err == nil && msg.Query == m.results.Query() && !m.results.Loading() {
			m.status = fmt.Sprintf("%d studies for %q", len(msg.Studies), msg.Query)
		}
		return cmd

	case resultsview.SavedMsg:
		m.results, _ = m.results.Update(msg)
		m.savedView.Reload()
		if msg.Saved {
			m.status = "saved: " + msg.Title
		} else {
			m.status = "already saved: " + msg.Title
		}
		return nil

	case savedview.ChangedMsg:
		m.savedView, _ = m.savedView.Update(msg)
		m.results.RefreshMarks()
		if msg.OK {
			m.status = msg.Action
		} else {
			m.status = msg.Action + " failed"
		}
		return nil

	case savedview.ExportedMsg:
		if msg.Err != nil {
			m.status = "export failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("exported %d studies to %s", msg.Out.Count, msg.Out.Location)
		}
		return nil

	case userMsg:
		return m.applyUser(msg)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and spinner ticks belong to the query builder and results.
	var queryCmd, resultsCmd tea.Cmd
	m.query, queryCmd = m.query.Update(msg)
	m.results, resultsCmd = m.results.Update(msg)
	return tea.Batch(queryCmd, resultsCmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "tab":
		return m.setFocus((m.focus + 1) % paneCount)
	case "shift+tab":
		return m.setFocus((m.focus + paneCount - 1) % paneCount)
	}

	if m.focus == paneQuery {
		if msg.String() == "esc" {
			return m.setFocus(paneList)
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "?":
		m.showHelp = true
		return nil
	case ":":
		return m.palette.Open()
	case "/":
		return m.setFocus(paneQuery)
	case "1":
		m.tab = tabResults
		return nil
	case "2":
		return m.openSaved()
	case "f":
		m.viewer.ToggleExpanded()
		m.propagateSize()
		return nil
	case "[":
		return m.nudge(0, -nudgeStep)
	case "]":
		return m.nudge(0, nudgeStep)
	case "{":
		return m.nudge(1, -nudgeStep)
	case "}":
		return m.nudge(1, nudgeStep)
	case "y":
		m.cycleSort()
		return nil
	case "Y":
		m.flipSort()
		return nil
	case "n", "p", "g", "G":
		m.page(msg.String())
		return nil
	case "s":
		if m.tab == tabResults {
			return m.results.SaveSelected()
		}
		return nil
	case "x":
		if m.tab == tabSaved {
			return m.savedView.RemoveSelected()
		}
		return nil
	case "E":
		return m.exportSaved("json")
	case "C":
		return m.requestClear()
	}

	var cmd tea.Cmd
	switch {
	case m.focus == paneViewer:
		m.viewer, cmd = m.viewer.Update(msg)
	case m.tab == tabSaved:
		m.savedView, cmd = m.savedView.Update(msg)
	default:
		m.results, cmd = m.results.Update(msg)
	}
	return cmd
}

// handleMouse routes an active drag through the pointer hub, starts a drag on
// a divider press and moves focus on any other press.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.hub.Dispatch(msg) {
		m.propagateSize()
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.viewer.Expanded() || msg.Y < 1 || msg.Y >= m.height-1 {
		return nil
	}
	if divider, ok := m.engine.DividerAt(dividerEdge(msg.X), dividerTolerance); ok {
		m.engine.BeginDrag(divider, float64(msg.X))
		return nil
	}
	if pane, ok := paneAt(m.columns(), msg.X); ok {
		return m.setFocus(paneID(pane))
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.results.Stop()
	m.engine.Close()
	return tea.Quit
}

// ─── actions ─────────────────────────────────────────────────────────────────

func (m *Model) submitQuery(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	m.query.SetValue(query)
	m.query.SetActive(query)
	m.viewer.SetQuery(query)
	m.tab = tabResults
	if query == "" {
		m.status = "query cleared"
	} else {
		m.status = "searching: " + query
	}
	return m.results.SetQuery(query)
}

func (m *Model) setFocus(p paneID) tea.Cmd {
	m.focus = p
	if p == paneQuery {
		return m.query.Focus()
	}
	m.query.Blur()
	return nil
}

func (m *Model) openSaved() tea.Cmd {
	if !m.signedIn {
		m.status = "sign in to see saved studies"
		return m.palette.OpenWith("login ")
	}
	m.tab = tabSaved
	m.savedView.Reload()
	return nil
}

func (m *Model) nudge(divider int, step float64) tea.Cmd {
	if m.viewer.Expanded() {
		return nil
	}
	m.engine.Nudge(divider, step)
	m.propagateSize()
	return nil
}

func (m *Model) cycleSort() {
	if m.tab == tabSaved {
		m.savedView.CycleSort()
		return
	}
	m.results.CycleSort()
}

func (m *Model) flipSort() {
	if m.tab == tabSaved {
		m.savedView.FlipSort()
		return
	}
	m.results.FlipSort()
}

func (m *Model) page(k string) {
	if m.tab == tabSaved {
		switch k {
		case "n":
			m.savedView.NextPage()
		case "p":
			m.savedView.PrevPage()
		case "g":
			m.savedView.FirstPage()
		case "G":
			m.savedView.LastPage()
		}
		return
	}
	switch k {
	case "n":
		m.results.NextPage()
	case "p":
		m.results.PrevPage()
	case "g":
		m.results.FirstPage()
	case "G":
		m.results.LastPage()
	}
}

func (m *Model) exportSaved(format string) tea.Cmd {
	if !m.signedIn {
		m.status = "sign in to export saved studies"
		return nil
	}
	m.status = "exporting saved studies…"
	return m.savedView.Export(format)
}

func (m *Model) requestClear() tea.Cmd {
	if m.tab != tabSaved {
		m.status = "switch to the saved tab to clear"
		return nil
	}
	cmd := m.savedView.RequestClear()
	if m.savedView.ConfirmingClear() {
		m.status = "press C again to clear every saved study"
	}
	return cmd
}

func (m *Model) applyUser(msg userMsg) tea.Cmd {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, apperrors.ErrNotSignedIn):
			if msg.action != "" {
				m.status = "not signed in"
			}
		case errors.Is(msg.err, apperrors.ErrInvalidInput):
			m.status = msg.action + ": " + strings.TrimPrefix(msg.err.Error(), apperrors.ErrInvalidInput.Error()+": ")
		default:
			m.status = msg.action + " failed: " + msg.err.Error()
		}
		return nil
	}
	m.user = msg.user
	m.signedIn = msg.ok
	if !msg.ok && m.tab == tabSaved {
		m.tab = tabResults
	}
	if msg.ok {
		m.savedView.Reload()
	}
	switch msg.action {
	case "":
	case "logout":
		m.status = "signed out"
	case "whoami":
		m.status = fmt.Sprintf("%s <%s>", m.user.Name, m.user.Email)
	default:
		m.status = "signed in as " + m.user.Name
	}
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.contentHeight()

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.viewer.Expanded():
		content = m.renderPane(paneViewer, m.width, contentH)
	default:
		content = m.renderPanes(contentH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderPanes(height int) string {
	cols := m.columns()
	session, dragging := m.engine.Session()
	parts := make([]string, 0, 2*len(cols))
	for i, w := range cols {
		last := i == len(cols)-1
		inner := w
		if !last {
			inner = w - 1
		}
		if inner > 0 {
			parts = append(parts, m.renderPane(paneID(i), inner, height))
		}
		if !last && w > 0 {
			style := theme.Divider
			if dragging && session.Divider == i {
				style = theme.DividerActive
			}
			parts = append(parts, style.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n")))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderPane(p paneID, width, height int) string {
	style := theme.Pane
	if p == m.focus {
		style = theme.PaneActive
	}
	var body string
	switch p {
	case paneQuery:
		body = m.query.View()
	case paneList:
		if m.tab == tabSaved {
			body = m.savedView.View()
		} else {
			body = m.results.View()
		}
	case paneViewer:
		body = m.viewer.View()
	}
	return style.Width(width).Height(height).MaxWidth(width).MaxHeight(height).Render(body)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		switch {
		case i == m.tab:
			parts[i] = theme.Hot.Render(" " + label + " ")
		case i == tabSaved && !m.signedIn:
			parts[i] = theme.Muted.Render(" " + label + " (sign in) ")
		default:
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := theme.Title.Render("lotus") + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).MaxHeight(1).Render(bar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.signedIn {
		left = theme.Good.Render("● "+m.user.Email) + "  " + left
	}
	sizes := m.engine.Sizes()
	split := make([]string, len(sizes))
	for i, s := range sizes {
		split[i] = strconv.FormatFloat(s, 'f', 0, 64)
	}
	right := theme.Muted.Render(m.engine.State().String() + " " + strings.Join(split, "·") + "  ?:help  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).MaxHeight(1).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m *Model) executePalette(input string) tea.Cmd {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), parts[0]))

	switch parts[0] {
	case "query":
		return m.submitQuery(rest)

	case "sort":
		if len(parts) < 2 {
			m.status = "usage: sort <column> [asc|desc]"
			return nil
		}
		dir := collection.Asc
		if len(parts) >= 3 {
			switch collection.Direction(parts[2]) {
			case collection.Asc, collection.Desc:
				dir = collection.Direction(parts[2])
			default:
				m.status = "sort direction must be asc or desc"
				return nil
			}
		}
		var err error
		if m.tab == tabSaved {
			err = m.savedView.SortBy(parts[1], dir)
		} else {
			err = m.results.SortBy(parts[1], dir)
		}
		if err != nil {
			m.status = err.Error()
		}
		return nil

	case "page":
		if len(parts) < 2 {
			m.status = "usage: page <n>"
			return nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid page number"
			return nil
		}
		if m.tab == tabSaved {
			m.savedView.GoPage(n)
		} else {
			m.results.GoPage(n)
		}
		return nil

	case "export":
		format := "json"
		if len(parts) >= 2 {
			format = parts[1]
		}
		return m.exportSaved(format)

	case "clear":
		return m.requestClear()

	case "login":
		if len(parts) < 3 {
			m.status = "usage: login <email> <password>"
			return nil
		}
		return m.loginCmd(parts[1], parts[2])

	case "register":
		if len(parts) < 3 {
			m.status = "usage: register <email> <password> [name]"
			return nil
		}
		return m.registerCmd(parts[1], parts[2], strings.Join(parts[3:], " "))

	case "logout":
		return m.logoutCmd()

	case "whoami":
		if !m.signedIn {
			m.status = "not signed in"
			return nil
		}
		m.status = fmt.Sprintf("%s <%s>", m.user.Name, m.user.Email)
		return nil

	case "expand":
		m.viewer.ToggleExpanded()
		m.propagateSize()
		return nil

	default:
		m.status = "unknown command: " + parts[0]
	}
	return nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) contentHeight() int {
	return max(m.height-2, 1)
}

// columns is the whole-column width of each pane at the current split.
func (m Model) columns() []int {
	return cellWidths(m.engine.Widths())
}

func (m *Model) propagateSize() {
	m.engine.SetContainerWidth(float64(m.width))
	h := m.contentHeight()
	const padding = 2

	if m.viewer.Expanded() {
		m.viewer, _ = m.viewer.Update(tea.WindowSizeMsg{Width: max(m.width-padding, 1), Height: h})
		return
	}
	cols := m.columns()
	m.query.SetWidth(max(cols[paneQuery]-1-padding, 1))
	list := tea.WindowSizeMsg{Width: max(cols[paneList]-1-padding, 1), Height: h}
	m.results, _ = m.results.Update(list)
	m.savedView, _ = m.savedView.Update(list)
	m.viewer, _ = m.viewer.Update(tea.WindowSizeMsg{Width: max(cols[paneViewer]-padding, 1), Height: h})
}

// syncViewer shows the row under the cursor of the active tab.
func (m *Model) syncViewer() {
	if m.tab == tabSaved {
		s, ok := m.savedView.Selected()
		m.viewer.Show(viewerview.Study{
			Year: s.Year, Title: s.Title, Authors: s.Authors, Journal: s.Journal,
			Saved: ok, SavedAt: s.SavedAt,
		}, ok)
		return
	}
	s, ok := m.results.Selected()
	m.viewer.Show(viewerview.Study{
		Year: s.Year, Title: s.Title, Authors: s.Authors, Journal: s.Journal,
		Saved: ok && m.results.IsSaved(s),
	}, ok)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadUserCmd() tea.Cmd {
	auth := m.auth
	if auth == nil {
		return nil
	}
	return func() tea.Msg {
		user, err := auth.Current(context.Background())
		if err != nil {
			return userMsg{}
		}
		return userMsg{user: user, ok: true}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		if auth == nil {
			return userMsg{action: "login", err: fmt.Errorf("auth not configured")}
		}
		user, err := auth.Login(context.Background(), email, password)
		return userMsg{action: "login", user: user, ok: err == nil, err: err}
	}
}

func (m Model) registerCmd(email, password, name string) tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		if auth == nil {
			return userMsg{action: "register", err: fmt.Errorf("auth not configured")}
		}
		user, err := auth.Register(context.Background(), email, password, name)
		return userMsg{action: "register", user: user, ok: err == nil, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		if auth == nil {
			return userMsg{action: "logout"}
		}
		if err := auth.Logout(context.Background()); err != nil {
			return userMsg{action: "logout", err: err}
		}
		return userMsg{action: "logout"}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type studiesBridge struct{ p studiesPort }

func (b studiesBridge) Search(ctx context.Context, query string) (studiesdto.SearchOutput, error) {
	if b.p == nil {
		return studiesdto.SearchOutput{}, fmt.Errorf("search not configured")
	}
	return b.p.Search(ctx, query)
}

type resultsSavedBridge struct{ p savedPort }

func (b resultsSavedBridge) List(ctx context.Context) []saveddto.SavedOutput {
	return b.p.List(ctx)
}
func (b resultsSavedBridge) Save(ctx context.Context, input saveddto.StudyInput) bool {
	return b.p.Save(ctx, input)
}

type savedViewBridge struct{ p savedPort }

func (b savedViewBridge) List(ctx context.Context) []saveddto.SavedOutput {
	return b.p.List(ctx)
}
func (b savedViewBridge) RemoveAt(ctx context.Context, index int) bool {
	return b.p.Remove(ctx, index) == nil
}
func (b savedViewBridge) ClearAll(ctx context.Context) bool {
	return b.p.Clear(ctx) == nil
}
func (b savedViewBridge) Export(ctx context.Context, input saveddto.ExportInput) (saveddto.ExportOutput, error) {
	return b.p.Export(ctx, input.Format)
}
