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
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the REPL state
type Model struct {
	ready bool

	input  textinput.Model
	output viewport.Model

	session  *Session
	registry *OperationRegistry

	// State
	transcript   strings.Builder
	history      []string
	historyIndex int
	showHelp     bool
	status       string
	statusFailed bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// writeClipboard stays quiet; stray terminal output would tear the alt screen
	writeClipboard func(text string) error

	// Dimensions
	width  int
	height int
}

// InitialModel creates the initial model
func InitialModel(session *Session, registry *OperationRegistry) *Model {
	ti := textinput.New()
	ti.Placeholder = "insert 9 5 10 · range 1 9 · depth 6 · F1 for help"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	output := viewport.New(0, 0)

	// Initialize glamour renderer with the detected terminal mode
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(GlamourStyle()),
		glamour.WithWordWrap(72),
	)

	m := &Model{
		input:           ti,
		output:          output,
		session:         session,
		registry:        registry,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		writeClipboard:  clipboard.WriteAll,
	}
	m.input.PromptStyle = m.styles.InputPrompt
	return m
}

// Init is called when the program starts
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshOutput()
			return m, nil
		case "enter":
			m.execute(m.input.Value())
			m.input.Reset()
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "ctrl+y":
			m.copyDOT()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// execute runs one script line and appends it to the transcript
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIndex = len(m.history)

	var out bytes.Buffer
	err := m.registry.Execute(m.session, line, &out)

	fmt.Fprintf(&m.transcript, "avl> %s\n%s", line, out.String())
	if err != nil {
		fmt.Fprintf(&m.transcript, "%s\n", m.styles.ErrorMessage.Render("error: "+err.Error()))
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus("ok", false)
	}

	m.showHelp = false
	m.refreshOutput()
}

// recall moves through previously executed lines
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIndex = min(max(m.historyIndex+step, 0), len(m.history))
	if m.historyIndex == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.statusFailed = failed
}

func (m *Model) copyDOT() {
	if err := m.writeClipboard(m.session.DOT()); err != nil {
		m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
		return
	}
	m.setStatus("DOT source copied to clipboard", false)
}

func (m *Model) refreshOutput() {
	if m.showHelp {
		helpText := getHelpMarkdown(m.registry)
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(helpText); err == nil {
				helpText = rendered
			}
		}
		m.output.SetContent(helpText)
		m.output.GotoTop()
		return
	}
	m.output.SetContent(m.transcript.String())
	m.output.GotoBottom()
}

// updateLayout sizes the transcript pane to the terminal
func (m *Model) updateLayout() {
	// title, status, input and help bar plus the pane border
	chrome := 6
	m.output.Width = max(m.width-2, 10)
	m.output.Height = max(m.height-chrome, 3)
	m.input.Width = max(m.width-len(m.input.Prompt)-2, 10)
	m.refreshOutput()
}

// View renders the REPL
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render("🌲 avlcore playground")

	stats := fmt.Sprintf("size %d · height %d · revision %d", m.session.Len(), m.session.Height(), m.session.Revision())
	status := m.styles.Status.Render(stats)
	if m.status != "" {
		style := m.styles.SuccessMessage
		if m.statusFailed {
			style = m.styles.ErrorMessage
		}
		status += "  " + style.Render(m.status)
	}

	pane := m.styles.BorderFocused.Render(m.output.View())

	helpBar := m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" run · ") +
		m.styles.HelpKey.Render("↑/↓") + m.styles.HelpDesc.Render(" history · ") +
		m.styles.HelpKey.Render("F1") + m.styles.HelpDesc.Render(" help · ") +
		m.styles.HelpKey.Render("ctrl+y") + m.styles.HelpDesc.Render(" copy DOT · ") +
		m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, status, pane, m.input.View(), helpBar)
}

// runREPL starts the Bubble Tea application
func runREPL(session *Session) error {
	InitializeColors()

	// Mutation logs would scribble over the alternate screen
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	program := tea.NewProgram(
		InitialModel(session, NewOperationRegistry()),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
