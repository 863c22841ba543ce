// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bascanada/termstyle/pkg/term"
	"github.com/bascanada/termstyle/pkg/tui"
)

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"tui", "browse"},
	Short:   "Browse the named styles interactively",
	Long: `Preview opens a full-screen list of the named styles rendered
against live sample text. Toggle color on and off with 'c', copy the
selected style's escape sequence with 'y'.`,
	PreRun: onCommandStart,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPreview(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	},
}

func runPreview() error {
	model := tui.New(term.DescribeSupport(nil))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}
