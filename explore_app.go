// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/arbor/render"
	"github.com/cybrota/arbor/scenarios"
	"github.com/patrickmn/go-cache"
)

const exploreHelp = `# Operations

Type one or more operations separated by **;**

| op | example |
|---|---|
| insert | insert 10 5 15 |
| delete | delete 5 |
| search | search 15 |
| balance | balance 10 |
| height | height |
| inorder | inorder |
| size | size |
| validate | validate |
| clear | clear |

AVL rotations are reported as they happen, e.g. *RR rotation at 1 (balance factor 2)*.
`

const (
	focusInput = iota
	focusOutline
)

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

type copiedMsg struct {
	err error
}

// ExploreModel is the Bubble Tea state of the tree explorer
type ExploreModel struct {
	ready bool

	input        textinput.Model
	outlineView  viewport.Model
	helpViewport viewport.Model

	session  *scenarios.Session
	outlines *cache.Cache
	style    render.Style
	logger   *slog.Logger

	focus        int
	history      []string
	historyIndex int
	status       string
	statusFailed bool
	cacheHits    int

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func NewExploreModel(session *scenarios.Session, outlines *cache.Cache, style render.Style, logger *slog.Logger) ExploreModel {
	ti := textinput.New()
	ti.Placeholder = "insert 10 5 15; delete 5"
	ti.Prompt = session.Kind() + "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle()),
		glamour.WithWordWrap(48),
	)

	m := ExploreModel{
		input:           ti,
		outlineView:     viewport.New(0, 0),
		helpViewport:    viewport.New(0, 0),
		session:         session,
		outlines:        outlines,
		style:           style,
		logger:          logger,
		focus:           focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.setHelp()
	m.refreshOutline()
	return m
}

// Init is called when the program starts
func (m ExploreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ExploreModel) setHelp() {
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(exploreHelp); err == nil {
			m.helpViewport.SetContent(rendered)
			return
		}
	}
	m.helpViewport.SetContent(exploreHelp)
}

// refreshOutline shows the current tree, reusing the rendering of an
// identical tree shape when one is cached.
func (m *ExploreModel) refreshOutline() {
	if m.session.Len() == 0 {
		m.outlineView.SetContent("(empty tree)")
		return
	}
	key := m.session.Fingerprint()
	outline, ok := GetOutline(m.outlines, key)
	if ok {
		m.cacheHits++
	} else {
		outline = m.session.Render(m.style)
		CacheOutline(m.outlines, key, outline)
	}
	m.outlineView.SetContent(outline)
}

// submit runs every operation on the line and records the combined output
// as the status.
func (m *ExploreModel) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIndex = len(m.history)

	commands, err := scenarios.ParseLine(line)
	if err != nil {
		m.status, m.statusFailed = err.Error(), true
		return
	}

	var out strings.Builder
	m.statusFailed = false
	for _, cmd := range commands {
		text, _, err := m.session.Exec(cmd)
		out.WriteString(text)
		if err != nil {
			m.logger.Warn("explore command failed", "command", cmd.FullName, "error", err)
			out.WriteString(err.Error())
			m.statusFailed = true
			break
		}
	}
	m.status = strings.TrimRight(out.String(), "\n")
	m.refreshOutline()
}

func (m *ExploreModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIndex = min(max(m.historyIndex+step, 0), len(m.history))
	if m.historyIndex == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

// Update handles all the I/O
func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focus == focusInput {
				m.focus = focusOutline
				m.input.Blur()
			} else {
				m.focus = focusInput
				m.input.Focus()
			}
			return m, nil
		case "ctrl+y":
			outline := m.session.Render(render.Plain)
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(outline)}
			}
		case "enter":
			if m.focus == focusInput {
				m.submit(m.input.Value())
				m.input.SetValue("")
			}
			return m, nil
		case "up":
			if m.focus == focusInput {
				m.recall(-1)
				return m, nil
			}
		case "down":
			if m.focus == focusInput {
				m.recall(1)
				return m, nil
			}
		}

		if m.focus == focusOutline {
			m.outlineView, cmd = m.outlineView.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.status, m.statusFailed = fmt.Sprintf("copy failed: %v", msg.err), true
		} else {
			m.status, m.statusFailed = "📋 Copied outline to clipboard.", false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateLayout updates component dimensions
func (m *ExploreModel) updateLayout() {
	outlineWidth := (m.width * 6 / 10) - 1
	helpWidth := m.width - outlineWidth - 3
	paneHeight := m.height - 11

	m.input.Width = outlineWidth - 4
	m.outlineView.Width = outlineWidth - 2
	m.outlineView.Height = paneHeight
	m.helpViewport.Width = helpWidth - 2
	m.helpViewport.Height = paneHeight + 5
}

// View renders the UI
func (m ExploreModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 16 {
		return "Terminal too small. Please resize your terminal."
	}

	outlineWidth := (m.width * 6 / 10) - 1
	helpWidth := m.width - outlineWidth - 3

	outlineStyle, inputStyle := m.styles.BorderBlurred, m.styles.BorderFocused
	outlineTitle := fmt.Sprintf(" 🌳 %s tree (%d values) ", strings.ToUpper(m.session.Kind()), m.session.Len())
	if m.focus == focusOutline {
		outlineStyle, inputStyle = m.styles.BorderFocused, m.styles.BorderBlurred
		outlineTitle += "(Active) "
	}

	outlineBox := outlineStyle.
		Width(outlineWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(outlineTitle),
			m.outlineView.View(),
		))

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusFailed {
		status = m.styles.ErrorMessage.Render(m.status)
	}
	inputBox := inputStyle.
		Width(outlineWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.input.View(),
			lastLines(status, 3),
		))

	helpBox := m.styles.BorderBlurred.
		Width(helpWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📖 Operations "),
			m.helpViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, outlineBox, inputBox),
		helpBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderKeyHelp(),
	)
}

func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// renderKeyHelp renders the key binding footer
func (m ExploreModel) renderKeyHelp() string {
	keys := []string{"enter", "↑/↓", "tab", "ctrl+y", "esc"}
	descs := []string{"run", "history", "scroll tree", "copy outline", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the Bubble Tea explorer on an empty tree of the given kind
func runExplorer(kind string, config *Config, logger *slog.Logger) error {
	opts := scenarios.Options{Logger: logger}
	session, err := scenarios.NewSession(kind, opts)
	if err != nil {
		return err
	}

	style := render.Plain
	if config.Render.Color {
		style = render.Colored()
	}
	model := NewExploreModel(session, NewOutlineCache(config.CacheTTL()), style, logger)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = program.Run()
	return err
}
