//go:build windows

package term

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI switches the console to virtual terminal processing so escape
// sequences render instead of printing literally. Safe to call repeatedly.
// Failures are ignored: output simply stays plain, same as an old console.
func EnableANSI() {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		var mode uint32
		handle := windows.Handle(f.Fd())
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			continue
		}
		_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	}
}
