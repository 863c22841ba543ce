package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bascanada/termstyle/pkg/styles"
	"github.com/bascanada/termstyle/pkg/term"
)

const demoSample = "The quick brown fox jumps over the lazy dog"

var demoCommand = &cobra.Command{
	Use:   "demo",
	Short: "Print every named style once",
	Long: `Demo renders the sample text through every named style, one per
line, so you can eyeball what this terminal actually displays.

Examples:
  termstyle demo
  termstyle demo --text "hello world"
  termstyle demo --color never`,
	PreRun: onCommandStart,
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunDemo(os.Stdout, sampleText, term.ColorLevel()); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	},
}

// RunDemo writes sample once per named style. The level only drives the
// trailing note about palette fallback, rendering itself is gated by the
// process-wide flag.
func RunDemo(out io.Writer, sample string, level term.Level) error {
	var b strings.Builder

	for _, entry := range styles.Catalog() {
		fmt.Fprintf(&b, "%-16s %s\n", entry.Name, entry.Render(sample))
	}

	if term.UseColor() && !level.Supports(term.Level256) {
		b.WriteString("\nnote: this terminal reports 16 colors, the gray and bright-blue styles above use the 256-color palette and may be approximated\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}
