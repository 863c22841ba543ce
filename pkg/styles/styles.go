// Package styles renders text wrapped in ANSI SGR sequences, or passes it
// through untouched when styling is off. Styling is gated by the process-wide
// flag in pkg/term at the moment a value renders, not when it is built, so a
// late SetUseColor call affects values created earlier.
//
// Styles never look at the detected capability tier. Callers that want to
// degrade on a 16-color terminal check term.ColorLevel themselves.
package styles

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bascanada/termstyle/pkg/term"
)

// Styled pairs a fixed style with a payload and renders lazily. The payload
// can be anything with a textual representation; fmt.Stringer is honored.
type Styled[T any] struct {
	c     *color.Color
	value T
}

// String renders the payload, wrapped in the style's escape sequences when
// styling is on. With styling off the result is byte-identical to rendering
// the payload alone.
func (s Styled[T]) String() string {
	if !term.UseColor() {
		return fmt.Sprint(s.value)
	}
	return s.c.Sprint(s.value)
}

// WriteTo renders into w as a single write, so a failing sink cannot end up
// holding a start sequence without its reset. The sink's error is returned
// as-is.
func (s Styled[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// newColor builds the underlying color with styling pinned on. The package
// gates rendering through term.UseColor itself; the library's own global
// kill-switch must not interfere.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}
