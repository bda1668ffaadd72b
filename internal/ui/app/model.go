package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "studyhub/internal/modules/auth/dto"
	moderationdto "studyhub/internal/modules/moderation/dto"
	plandto "studyhub/internal/modules/plan/dto"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
	motivationview "studyhub/internal/ui/views/motivation"
	plannerview "studyhub/internal/ui/views/planner"
	progressview "studyhub/internal/ui/views/progress"
	resourcesview "studyhub/internal/ui/views/resources"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Current(ctx context.Context) (authdto.SessionOutput, error)
	Logout(ctx context.Context) error
}

type planPort interface {
	Simple(ctx context.Context, goal string) (plandto.SimplePlanOutput, error)
	Advanced(ctx context.Context, input plandto.AdvancedPlanInput) (plandto.AdvancedPlanOutput, error)
	Subjects(ctx context.Context) ([]string, error)
}

type progressPort interface {
	progressview.ProgressPort
	Reset(ctx context.Context) error
}

type moderationPort interface {
	Check(ctx context.Context, text string) (moderationdto.DecisionOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabPlanner tabID = iota
	tabResources
	tabMotivation
	tabProgress
	tabCount
)

var tabLabels = [tabCount]string{
	"Planner", "Resources", "Motivation", "Progress",
}

// ─── async messages ───────────────────────────────────────────────────────────

type sessionLoadedMsg struct {
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

type simplePlanMsg struct {
	plan plandto.SimplePlanOutput
	err  error
}

type subjectsMsg struct {
	subjects []string
	err      error
}

type progressResetMsg struct{ err error }

type filterCheckedMsg struct {
	decision moderationdto.DecisionOutput
	err      error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Edit    key.Binding
	Mark    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit form")),
		Mark:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark today")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Edit, k.Mark},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the logged-in
// session display, the global help overlay, and the command palette. All
// business logic is delegated to port interfaces; all rendering is delegated
// to sub-views.
type Model struct {
	// ports used at this orchestration level only
	auth       authPort
	plan       planPort
	progress   progressPort
	moderation moderationPort

	// sub-views (one per tab)
	plannerView    plannerview.Model
	resourceView   resourcesview.Model
	motivationView motivationview.Model
	progressView   progressview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	user      string
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	auth authPort,
	plan planPort,
	resource resourcesview.ResourcePort,
	motivation motivationview.MotivationPort,
	progress progressPort,
	moderation moderationPort,
) Model {
	return Model{
		auth:           auth,
		plan:           plan,
		progress:       progress,
		moderation:     moderation,
		plannerView:    plannerview.New(plan),
		resourceView:   resourcesview.New(resource),
		motivationView: motivationview.New(motivation),
		progressView:   progressview.New(progress),
		activeTab:      tabPlanner,
		keys:           defaultKeys(),
		help:           help.New(),
		palette:        components.NewPalette(),
		status:         "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.plannerView.Init(),
		m.progressView.Init(),
		m.loadSessionCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case sessionLoadedMsg:
		if msg.err != nil {
			m.user = ""
			m.status = "not logged in, run: studyhub login"
		} else {
			m.user = msg.session.DisplayName
			m.status = "ready"
		}

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout failed: " + msg.err.Error()
		} else {
			m.user = ""
			m.status = "logged out"
		}

	case simplePlanMsg:
		if msg.err != nil {
			m.status = "simple plan: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("simple plan: %d steps", len(msg.plan.Schedule))
			if msg.plan.ResourceTopic != "" {
				m.status += ", start with " + msg.plan.ResourceTopic
			}
		}

	case subjectsMsg:
		if msg.err != nil {
			m.status = "subjects: " + msg.err.Error()
		} else {
			m.status = "subjects: " + strings.Join(msg.subjects, ", ")
		}

	case progressResetMsg:
		if msg.err != nil {
			m.status = "reset failed: " + msg.err.Error()
		} else {
			m.status = "progress reset"
			m.activeTab = tabProgress
			cmds = append(cmds, m.progressView.Reload())
		}

	case filterCheckedMsg:
		switch {
		case msg.err != nil:
			m.status = "filter: " + msg.err.Error()
		case msg.decision.Allowed:
			m.status = "filter: allowed"
		default:
			m.status = fmt.Sprintf("filter: blocked (%s). %s",
				msg.decision.Category, msg.decision.Suggestion)
		}

	case plannerview.PlanGeneratedMsg:
		// The planner adopted a new plan; the Progress tab must reflect it.
		if msg.Err == nil {
			cmds = append(cmds, m.progressView.Reload())
		}
		var cmd tea.Cmd
		m.plannerView, cmd = m.plannerView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view while one of its text inputs is focused.
		if m.subViewEditing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabPlanner:
		m.plannerView, tabCmd = m.plannerView.Update(msg)
	case tabResources:
		m.resourceView, tabCmd = m.resourceView.Update(msg)
	case tabMotivation:
		m.motivationView, tabCmd = m.motivationView.Update(msg)
	case tabProgress:
		m.progressView, tabCmd = m.progressView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabPlanner:
		return m.plannerView.View()
	case tabResources:
		return m.resourceView.View()
	case tabMotivation:
		return m.motivationView.View()
	case tabProgress:
		return m.progressView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studyhub  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.user != "" {
		left = theme.Hot.Render("● "+m.user) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "plan:simple":
		goal := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if goal == "" {
			m.status = "usage: plan:simple <goal>"
			return m, nil
		}
		m.status = "generating simple plan…"
		return m, m.simplePlanCmd(goal)

	case "plan:subjects":
		m.status = "loading subjects…"
		return m, m.subjectsCmd()

	case "progress:today":
		m.activeTab = tabProgress
		return m, m.markTodayCmd()

	case "progress:reset":
		return m, m.resetProgressCmd()

	case "filter:check":
		text := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if text == "" {
			m.status = "usage: filter:check <text>"
			return m, nil
		}
		return m, m.filterCheckCmd(text)

	case "whoami":
		return m, m.loadSessionCmd()

	case "logout":
		return m, m.logoutCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewEditing reports whether the active tab's text input is focused,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewEditing() bool {
	switch m.activeTab {
	case tabPlanner:
		return m.plannerView.Editing()
	case tabResources:
		return m.resourceView.Editing()
	case tabMotivation:
		return m.motivationView.Editing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.plannerView, _ = m.plannerView.Update(sz)
	m.resourceView, _ = m.resourceView.Update(sz)
	m.motivationView, _ = m.motivationView.Update(sz)
	m.progressView, _ = m.progressView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadSessionCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Current(context.Background())
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}

func (m Model) simplePlanCmd(goal string) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.plan.Simple(context.Background(), goal)
		return simplePlanMsg{plan: plan, err: err}
	}
}

func (m Model) subjectsCmd() tea.Cmd {
	return func() tea.Msg {
		subjects, err := m.plan.Subjects(context.Background())
		return subjectsMsg{subjects: subjects, err: err}
	}
}

func (m Model) markTodayCmd() tea.Cmd {
	return func() tea.Msg {
		mark, err := m.progress.MarkToday(context.Background())
		return progressview.MarkedMsg{Mark: mark, Err: err}
	}
}

func (m Model) resetProgressCmd() tea.Cmd {
	return func() tea.Msg {
		return progressResetMsg{err: m.progress.Reset(context.Background())}
	}
}

func (m Model) filterCheckCmd(text string) tea.Cmd {
	return func() tea.Msg {
		decision, err := m.moderation.Check(context.Background(), text)
		return filterCheckedMsg{decision: decision, err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
