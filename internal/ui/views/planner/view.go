package planner

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plandto "studyhub/internal/modules/plan/dto"
	"studyhub/internal/ui/theme"
)

type PlannerPort interface {
	Advanced(ctx context.Context, input plandto.AdvancedPlanInput) (plandto.AdvancedPlanOutput, error)
}

type PlanGeneratedMsg struct {
	Plan plandto.AdvancedPlanOutput
	Err  error
}

const (
	fieldSubject = iota
	fieldHours
	fieldDays
	fieldLevel
	fieldStyle
	fieldMood
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Subject", "Hours per day", "Total days", "Knowledge level", "Learning style", "Mood (optional)",
}

type Model struct {
	port    PlannerPort
	inputs  [fieldCount]textinput.Model
	focused int
	editing bool
	result  viewport.Model
	spinner spinner.Model
	loading bool
	status  string
	width   int
	height  int
}

func New(port PlannerPort) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Prompt = "> "
		inputs[i] = ti
	}
	inputs[fieldSubject].Placeholder = "mathematics"
	inputs[fieldHours].Placeholder = "2"
	inputs[fieldDays].Placeholder = "14"
	inputs[fieldLevel].Placeholder = "beginner | intermediate | advanced"
	inputs[fieldStyle].Placeholder = "visual"
	inputs[fieldMood].Placeholder = "motivated"

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		inputs:  inputs,
		result:  vp,
		spinner: sp,
		status:  "press e to edit the form, enter on the last field generates",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PlanGeneratedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("plan ready: %s (%s)", msg.Plan.Subject, msg.Plan.Difficulty)
		m.result.SetContent(renderPlan(msg.Plan))

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
		if !m.editing {
			if msg.String() == "e" || msg.String() == "enter" {
				m.editing = true
				m.inputs[m.focused].Focus()
			}
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "esc":
			m.editing = false
			m.inputs[m.focused].Blur()
			return m, nil
		case "up":
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "down", "tab":
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil
		case "enter":
			if m.focused < fieldCount-1 {
				m.focusField(m.focused + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	if m.editing {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	formW := m.width * 4 / 10
	resultW := m.width - formW

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Study Planner") + "\n\n")
	for i := range m.inputs {
		label := fieldLabels[i]
		if i == m.focused {
			sb.WriteString(theme.Hot.Render(label) + "\n")
		} else {
			sb.WriteString(theme.Muted.Render(label) + "\n")
		}
		sb.WriteString(m.inputs[i].View() + "\n")
	}
	sb.WriteString("\n")
	if m.loading {
		sb.WriteString(m.spinner.View() + " generating plan…")
	} else {
		sb.WriteString(theme.Muted.Render(m.status))
	}

	formPane := lipgloss.NewStyle().Width(formW).Height(m.height).Padding(1).Render(sb.String())
	resultPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(resultW - 2).
		Height(m.height - 2).
		Render(m.result.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, formPane, resultPane)
}

// Editing reports whether a form field currently has focus, in which case
// global key bindings must yield to allow free typing.
func (m Model) Editing() bool {
	return m.editing
}

func (m *Model) focusField(index int) {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	hours, _ := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldHours].Value()), 64)
	days, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldDays].Value()))
	input := plandto.AdvancedPlanInput{
		Subject:        strings.TrimSpace(m.inputs[fieldSubject].Value()),
		HoursPerDay:    hours,
		TotalDays:      days,
		KnowledgeLevel: strings.TrimSpace(m.inputs[fieldLevel].Value()),
		LearningStyle:  strings.TrimSpace(m.inputs[fieldStyle].Value()),
		Mood:           strings.TrimSpace(m.inputs[fieldMood].Value()),
	}
	m.editing = false
	m.inputs[m.focused].Blur()
	m.loading = true
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, m.generateCmd(input))
}

func (m Model) generateCmd(input plandto.AdvancedPlanInput) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.Advanced(context.Background(), input)
		return PlanGeneratedMsg{Plan: plan, Err: err}
	}
}

func (m *Model) resize() {
	resultW := m.width - m.width*4/10
	m.result.Width = resultW - 4
	m.result.Height = m.height - 4
	for i := range m.inputs {
		m.inputs[i].Width = m.width*4/10 - 6
	}
}

func renderPlan(plan plandto.AdvancedPlanOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(plan.Subject) + "\n")
	sb.WriteString(fmt.Sprintf("%s%.1fh total, %.1fh/day, %s\n\n",
		theme.Muted.Render("plan:  "), plan.TotalHours, plan.DailyHours, plan.Difficulty))
	for _, day := range plan.Schedule {
		sb.WriteString(theme.Hot.Render(fmt.Sprintf("Day %d", day.Day)))
		if day.Date != "" {
			sb.WriteString(theme.Muted.Render("  " + day.Date))
		}
		sb.WriteString(fmt.Sprintf("  %.1fh\n", day.Hours))
		for _, topic := range day.Topics {
			sb.WriteString(fmt.Sprintf("  • %s (%.1fh)\n", topic.Topic, topic.Hours))
		}
		for _, goal := range day.Goals {
			sb.WriteString(theme.Muted.Render("  ◦ "+goal) + "\n")
		}
	}
	if len(plan.Resources) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Resources") + "\n")
		for _, res := range plan.Resources {
			sb.WriteString(fmt.Sprintf("  %s — %s\n", res.Title, res.URL))
		}
	}
	if plan.Motivation != "" {
		sb.WriteString("\n" + theme.Muted.Render(plan.Motivation) + "\n")
	}
	return sb.String()
}
