package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "studyhub/internal/modules/progress/dto"
	"studyhub/internal/ui/theme"
)

const historyLimit = 14

type ProgressPort interface {
	Show(ctx context.Context) (progressdto.LedgerOutput, error)
	MarkToday(ctx context.Context) (progressdto.MarkOutput, error)
	History(ctx context.Context, limit int) ([]progressdto.DayOutput, error)
}

type LedgerLoadedMsg struct {
	Ledger  progressdto.LedgerOutput
	History []progressdto.DayOutput
	Err     error
}

type MarkedMsg struct {
	Mark progressdto.MarkOutput
	Err  error
}

type Model struct {
	port    ProgressPort
	body    viewport.Model
	spinner spinner.Model
	loading bool
	status  string
	width   int
	height  int
}

func New(port ProgressPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		body:    vp,
		spinner: sp,
		loading: true,
		status:  "m: mark today  r: refresh",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 4

	case LedgerLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = "m: mark today  r: refresh"
		m.body.SetContent(renderLedger(msg.Ledger, msg.History))

	case MarkedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("marked %s, streak %d", msg.Mark.Date, msg.Mark.Streak)
		for _, unlocked := range msg.Mark.NewAchievements {
			m.status += "  🏆 " + unlocked.Title
		}
		return m, m.loadCmd()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "m":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.markCmd())
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading progress…")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progress") + "  " + theme.Muted.Render(m.status) + "\n")
	sb.WriteString(m.body.View())
	return lipgloss.NewStyle().Padding(1).Render(sb.String())
}

// Reload refreshes the ledger, e.g. after a mutation made outside this view.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ledger, err := m.port.Show(context.Background())
		if err != nil {
			return LedgerLoadedMsg{Err: err}
		}
		history, err := m.port.History(context.Background(), historyLimit)
		return LedgerLoadedMsg{Ledger: ledger, History: history, Err: err}
	}
}

func (m Model) markCmd() tea.Cmd {
	return func() tea.Msg {
		mark, err := m.port.MarkToday(context.Background())
		return MarkedMsg{Mark: mark, Err: err}
	}
}

func renderLedger(ledger progressdto.LedgerOutput, history []progressdto.DayOutput) string {
	var sb strings.Builder
	if ledger.Plan != nil {
		sb.WriteString(theme.Hot.Render(ledger.Plan.Subject) + "\n")
		sb.WriteString(fmt.Sprintf("%s%.1fh/day over %d days (%s)\n",
			theme.Muted.Render("plan:       "),
			ledger.Plan.DailyHours, ledger.Plan.PlannedDays, ledger.Plan.Difficulty))
	} else {
		sb.WriteString(theme.Muted.Render("No active plan. Generate one in the Planner tab.") + "\n")
	}
	if ledger.StartDate != "" {
		sb.WriteString(theme.Muted.Render("started:    ") + ledger.StartDate + "\n")
	}
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("days done:  "), ledger.CompletedDays))
	sb.WriteString(fmt.Sprintf("%s%d 🔥\n", theme.Muted.Render("streak:     "), ledger.Streak))
	sb.WriteString(fmt.Sprintf("%s%d%%\n", theme.Muted.Render("completion: "), ledger.CompletionPercent))

	if len(ledger.Achievements) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Achievements") + "\n")
		for _, achievement := range ledger.Achievements {
			sb.WriteString("  🏆 " + achievement.Title +
				theme.Muted.Render("  "+achievement.Description) + "\n")
		}
	}

	if len(history) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Recent days") + "\n")
		for _, day := range history {
			mark := theme.Muted.Render("·")
			if day.Completed {
				mark = theme.Hot.Render("✓")
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", mark, day.Date))
		}
	}
	return sb.String()
}
