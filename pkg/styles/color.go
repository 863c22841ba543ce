package styles

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bascanada/termstyle/pkg/term"
	"github.com/bascanada/termstyle/pkg/ty"
)

// InitColorState initializes color output for a command writing to writer.
// Priority order (highest to lowest):
//  1. Explicit user setting (via CLI flag)
//  2. FORCE_COLOR environment variable
//  3. NO_COLOR environment variable
//  4. TTY detection (auto-detect terminal)
//  5. Default to disabled (for unknown writers)
func InitColorState(explicit ty.Opt[bool], writer io.Writer) {
	// Priority 1: Explicit user override
	if explicit.Set {
		applyColorState(explicit.Value)
		return
	}

	// Priority 2: FORCE_COLOR environment variable
	if term.ForceColor() {
		applyColorState(true)
		return
	}

	// Priority 3: NO_COLOR environment variable (standard)
	if os.Getenv("NO_COLOR") != "" {
		applyColorState(false)
		return
	}

	// Priority 4: Auto-detect TTY
	if f, ok := writer.(*os.File); ok {
		applyColorState(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
		return
	}

	// Priority 5: Default to disabled for unknown writers
	applyColorState(false)
}

// applyColorState flips the process-wide flag and keeps the fatih/color
// global in agreement, so third-party printers that consult color.NoColor
// follow the same decision.
func applyColorState(enabled bool) {
	term.SetUseColor(enabled)
	color.NoColor = !enabled
}
