// Package tui holds the interactive pieces of the aikit CLI. Currently
// that is a single full-screen agent picker shown when a command needs
// an agent and none was given on the command line.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/aikit-sh/aikit/internal/core/agent"
)

// ErrCancelled is returned by PickAgent when the user quits the picker
// without selecting an agent.
var ErrCancelled = errors.New("selection cancelled")

// agentItem wraps an Agent for the bubbles list.
type agentItem struct {
	agent agent.Agent
}

func (i agentItem) FilterValue() string { return i.agent.Key }

// agentDelegate renders one agent per row: key, display name, and
// capability markers for skills/subagents.
type agentDelegate struct{}

func (d agentDelegate) Height() int                             { return 1 }
func (d agentDelegate) Spacing() int                            { return 0 }
func (d agentDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d agentDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(agentItem)
	if !ok {
		return
	}
	isSelected := index == m.Index()

	indicator := "    "
	if isSelected {
		indicator = "  > "
	}

	key := it.agent.Key
	var parts []string
	if isSelected {
		parts = append(parts, selectedItemStyle.Render(key))
	} else {
		parts = append(parts, normalItemStyle.Render(key))
	}
	parts = append(parts, mutedStyle.Render(it.agent.Name))

	var caps []string
	caps = append(caps, "commands")
	if it.agent.SupportsSkills() {
		caps = append(caps, "skills")
	}
	if it.agent.SupportsSubagents() {
		caps = append(caps, "subagents")
	}
	parts = append(parts, capStyle.Render(strings.Join(caps, "+")))

	line := indicator + strings.Join(parts, "  ")
	if m.Width() > 0 {
		line = ansi.Truncate(line, m.Width(), "…")
	}
	_, _ = fmt.Fprint(w, line)
}

// pickerModel is the agent picker program.
type pickerModel struct {
	list     list.Model
	title    string
	selected *agent.Agent
	quit     bool
}

func newPickerModel(title string, agents []agent.Agent) pickerModel {
	items := make([]list.Item, len(agents))
	for i, a := range agents {
		items[i] = agentItem{agent: a}
	}

	l := list.New(items, agentDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.SetShowPagination(false)

	return pickerModel{list: l, title: title}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, max(1, msg.Height-2))
		return m, nil

	case tea.KeyMsg:
		// Don't intercept keys while filtering.
		if m.list.SettingFilter() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(agentItem); ok {
				a := item.agent
				m.selected = &a
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return sectionHeaderStyle.Render("  "+m.title) + "\n\n" + m.list.View()
}

// PickAgent runs the interactive picker over the given agents and
// returns the selection. ErrCancelled when the user bails out.
func PickAgent(title string, agents []agent.Agent) (agent.Agent, error) {
	m := newPickerModel(title, agents)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return agent.Agent{}, fmt.Errorf("running picker: %w", err)
	}
	result, ok := final.(pickerModel)
	if !ok || result.selected == nil {
		return agent.Agent{}, ErrCancelled
	}
	return *result.selected, nil
}
