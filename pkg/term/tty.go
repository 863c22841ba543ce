package term

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/bascanada/termstyle/pkg/ty"
)

// Memoized per stream: the answer cannot change while the process runs and
// callers ask on every line.
var (
	stdoutTTY = ty.GetLazy(func() bool { return isTerminal(os.Stdout) })
	stderrTTY = ty.GetLazy(func() bool { return isTerminal(os.Stderr) })
)

// IsStdoutTTY reports whether standard output is attached to a terminal.
func IsStdoutTTY() bool { return stdoutTTY() }

// IsStderrTTY reports whether standard error is attached to a terminal.
func IsStderrTTY() bool { return stderrTTY() }

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
