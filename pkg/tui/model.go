// SPDX-License-Identifier: GPL-3.0-only
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bascanada/termstyle/pkg/styles"
	"github.com/bascanada/termstyle/pkg/term"
)

// Sample text rendered next to every catalog entry.
const previewSample = "The quick brown fox"

// StatusMsg sets the transient status line
type StatusMsg struct {
	Text string
}

// ClearStatusMsg is sent to clear the status line
type ClearStatusMsg struct{}

// Model is the preview TUI state
type Model struct {
	// Window dimensions
	Width  int
	Height int

	// Catalog
	Catalog []styles.Named
	Cursor  int

	// UI state
	ShowHelp bool
	Status   string

	// Capability snapshot shown in the header
	Support term.Support

	// Detected color profile, restored when styling is toggled back on
	Profile termenv.Profile

	// Styling
	Styles Styles
	Keys   KeyMap
}

// New creates a new preview model
func New(support term.Support) Model {
	m := Model{
		Width:   80,
		Height:  24,
		Catalog: styles.Catalog(),
		Support: support,
		Profile: lipgloss.ColorProfile(),
		Styles:  DefaultStyles(),
		Keys:    DefaultKeyMap(),
	}
	m.syncProfile()
	return m
}

// Init initializes the preview
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case StatusMsg:
		m.Status = msg.Text
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return ClearStatusMsg{}
		})

	case ClearStatusMsg:
		m.Status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.Catalog)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.Home):
		m.Cursor = 0

	case key.Matches(msg, m.Keys.End):
		m.Cursor = len(m.Catalog) - 1

	case key.Matches(msg, m.Keys.ToggleColor):
		term.SetUseColor(!term.UseColor())
		m.syncProfile()

	case key.Matches(msg, m.Keys.Copy):
		return m, m.copySelectedCmd()

	case key.Matches(msg, m.Keys.Help):
		m.ShowHelp = !m.ShowHelp
	}

	return m, nil
}

// syncProfile keeps lipgloss in agreement with the process-wide flag, so the
// chrome goes plain together with the samples.
func (m Model) syncProfile() {
	if term.UseColor() {
		lipgloss.SetColorProfile(m.Profile)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// copySelectedCmd puts the selected style's rendered sample on the clipboard,
// escape sequences included when styling is on.
func (m Model) copySelectedCmd() tea.Cmd {
	entry := m.Catalog[m.Cursor]
	rendered := entry.Render(previewSample).String()
	return func() tea.Msg {
		if err := clipboard.WriteAll(rendered); err != nil {
			return StatusMsg{Text: "clipboard: " + err.Error()}
		}
		return StatusMsg{Text: "copied " + entry.Name + " sample"}
	}
}

// window returns the visible slice bounds of the catalog for the current
// terminal height.
func (m Model) window() (int, int) {
	rows := m.Height - 5
	if rows < 1 || rows >= len(m.Catalog) {
		return 0, len(m.Catalog)
	}
	start := m.Cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(m.Catalog) {
		end = len(m.Catalog)
		start = end - rows
	}
	return start, end
}

// View renders the preview
func (m Model) View() string {
	var b strings.Builder

	flag := m.Styles.FlagOff.Render("off")
	if term.UseColor() {
		flag = m.Styles.FlagOn.Render("on")
	}
	header := fmt.Sprintf("%s  level: %s (%s)  colors: %s",
		m.Styles.Title.Render("termstyle preview"),
		GetLevelStyle(m.Support.Level).Render(m.Support.Level.String()),
		m.Support.Reason,
		flag,
	)
	b.WriteString(m.Styles.Header.Width(m.Width).Render(header))
	b.WriteString("\n\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		entry := m.Catalog[i]
		sample := entry.Render(previewSample).String()

		if i == m.Cursor {
			line := "> " + m.Styles.NameSelected.Render(entry.Name) + " " + sample
			b.WriteString(m.Styles.EntrySelected.Render(line))
		} else {
			line := m.Styles.Name.Render(entry.Name) + " " + sample
			b.WriteString(m.Styles.Entry.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	status := m.Status
	if status == "" {
		selected := m.Catalog[m.Cursor]
		status = "escape: " + m.Styles.Escape.Render(fmt.Sprintf("%q", selected.Render(previewSample).String()))
	}
	b.WriteString(m.Styles.StatusBar.Width(m.Width).Render(status))
	b.WriteString("\n")

	if m.ShowHelp {
		b.WriteString(m.Styles.HelpBar.Width(m.Width).Render(m.renderFullHelp()))
	} else {
		b.WriteString(m.Styles.HelpBar.Width(m.Width).Render(m.renderShortHelp()))
	}

	return m.Styles.App.Render(b.String())
}

func (m Model) renderShortHelp() string {
	parts := make([]string, 0, len(m.Keys.ShortHelp()))
	for _, binding := range m.Keys.ShortHelp() {
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderFullHelp() string {
	rows := make([]string, 0, len(m.Keys.FullHelp()))
	for _, group := range m.Keys.FullHelp() {
		parts := make([]string, 0, len(group))
		for _, binding := range group {
			parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
		}
		rows = append(rows, strings.Join(parts, " · "))
	}
	return strings.Join(rows, "\n")
}
