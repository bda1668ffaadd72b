package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	resourcedto "studyhub/internal/modules/resource/dto"
	"studyhub/internal/ui/theme"
)

type ResourcePort interface {
	Find(ctx context.Context, subject, resourceType string, limit int) (resourcedto.SearchOutput, error)
}

type ResultsLoadedMsg struct {
	Result resourcedto.SearchOutput
	Err    error
}

type Model struct {
	port    ResourcePort
	input   textinput.Model
	results viewport.Model
	spinner spinner.Model
	editing bool
	loading bool
	status  string
	width   int
	height  int
}

func New(port ResourcePort) Model {
	ti := textinput.New()
	ti.Placeholder = "search subject, e.g. linear algebra"
	ti.CharLimit = 128
	ti.Prompt = "> "

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		input:   ti,
		results: vp,
		spinner: sp,
		status:  "press e to search",
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
		m.results.Width = m.width - 4
		m.results.Height = m.height - 6

	case ResultsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("%d resources", len(msg.Result.Resources))
		m.results.SetContent(renderResults(msg.Result))

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
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "esc":
			m.editing = false
			m.input.Blur()
			return m, nil
		case "enter":
			subject := strings.TrimSpace(m.input.Value())
			m.editing = false
			m.input.Blur()
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.searchCmd(subject))
		}
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Resource Finder") + "\n")
	sb.WriteString(m.input.View() + "\n")
	if m.loading {
		sb.WriteString(m.spinner.View() + " searching…\n")
	} else {
		sb.WriteString(theme.Muted.Render(m.status) + "\n")
	}
	sb.WriteString(m.results.View())
	return lipgloss.NewStyle().Padding(1).Render(sb.String())
}

func (m Model) Editing() bool {
	return m.editing
}

func (m Model) searchCmd(subject string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.port.Find(context.Background(), subject, "", 0)
		return ResultsLoadedMsg{Result: result, Err: err}
	}
}

func renderResults(result resourcedto.SearchOutput) string {
	if len(result.Resources) == 0 {
		return theme.Muted.Render("No resources yet. Search for a subject.")
	}
	var sb strings.Builder
	for _, res := range result.Resources {
		sb.WriteString(theme.Hot.Render(res.Title) + "\n")
		sb.WriteString(fmt.Sprintf("  %s · %s\n", res.ResourceType, res.Difficulty))
		if res.Description != "" {
			sb.WriteString("  " + res.Description + "\n")
		}
		sb.WriteString(theme.Muted.Render("  "+res.URL) + "\n")
		if len(res.Tags) > 0 {
			sb.WriteString(theme.Muted.Render("  tags: "+strings.Join(res.Tags, ", ")) + "\n")
		}
		sb.WriteString("\n")
	}
	if result.Feedback != "" {
		sb.WriteString(theme.Muted.Render(result.Feedback) + "\n")
	}
	return sb.String()
}
