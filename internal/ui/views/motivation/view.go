package motivation

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	motivationdto "studyhub/internal/modules/motivation/dto"
	"studyhub/internal/ui/theme"
)

type MotivationPort interface {
	Enhanced(ctx context.Context, mood string) (motivationdto.MotivationOutput, error)
}

type MotivationLoadedMsg struct {
	Result motivationdto.MotivationOutput
	Err    error
}

type Model struct {
	port    MotivationPort
	input   textinput.Model
	result  viewport.Model
	spinner spinner.Model
	editing bool
	loading bool
	status  string
	width   int
	height  int
}

func New(port MotivationPort) Model {
	ti := textinput.New()
	ti.Placeholder = "how are you feeling about studying today?"
	ti.CharLimit = 256
	ti.Prompt = "> "

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		input:   ti,
		result:  vp,
		spinner: sp,
		status:  "press e to describe your mood",
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
		m.input.Width = m.width - 8
		m.result.Width = m.width - 4
		m.result.Height = m.height - 6

	case MotivationLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = "here is your boost"
		m.result.SetContent(renderMotivation(msg.Result))

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
				cmds = append(cmds, m.input.Focus())
				return m, tea.Batch(cmds...)
			}
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "esc":
			m.editing = false
			m.input.Blur()
			return m, nil
		case "enter":
			mood := strings.TrimSpace(m.input.Value())
			m.editing = false
			m.input.Blur()
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.fetchCmd(mood))
		}
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Motivation") + "\n")
	sb.WriteString(m.input.View() + "\n")
	if m.loading {
		sb.WriteString(m.spinner.View() + " thinking…\n")
	} else {
		sb.WriteString(theme.Muted.Render(m.status) + "\n")
	}
	sb.WriteString(m.result.View())
	return lipgloss.NewStyle().Padding(1).Render(sb.String())
}

func (m Model) Editing() bool {
	return m.editing
}

func (m Model) fetchCmd(mood string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.port.Enhanced(context.Background(), mood)
		return MotivationLoadedMsg{Result: result, Err: err}
	}
}

func renderMotivation(result motivationdto.MotivationOutput) string {
	var sb strings.Builder
	if result.QuoteText != "" {
		sb.WriteString("“" + result.QuoteText + "”\n")
		if result.QuoteAuthor != "" {
			sb.WriteString(theme.Muted.Render("  — "+result.QuoteAuthor) + "\n")
		}
		sb.WriteString("\n")
	}
	if result.Tip != "" {
		sb.WriteString(theme.Hot.Render("Tip: ") + result.Tip + "\n\n")
	}
	if result.Encouragement != "" {
		sb.WriteString(result.Encouragement + "\n")
	}
	if result.Analysis != nil {
		sb.WriteString("\n" + theme.Title.Render("Mood analysis") + "\n")
		sb.WriteString(theme.Muted.Render("mood:       ") + result.Analysis.DetectedMood + "\n")
		sb.WriteString(theme.Muted.Render("energy:     ") + result.Analysis.EnergyLevel + "\n")
		sb.WriteString(theme.Muted.Render("confidence: ") + result.Analysis.ConfidenceLevel + "\n")
		for _, suggestion := range result.Analysis.Suggestions {
			sb.WriteString("  • " + suggestion + "\n")
		}
	}
	if sb.Len() == 0 {
		return theme.Muted.Render("Tell me how you feel and I will find you a boost.")
	}
	return sb.String()
}
