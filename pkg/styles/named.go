package styles

import (
	"fmt"

	"github.com/fatih/color"
)

// Attribute order inside a sequence is weight, emphasis, underline, then
// foreground, then background.
var (
	boldC           = newColor(color.Bold)
	redBoldC        = newColor(color.Bold, color.FgRed)
	greenBoldC      = newColor(color.Bold, color.FgGreen)
	yellowBoldC     = newColor(color.Bold, color.FgYellow)
	italicC         = newColor(color.Italic)
	italicBoldC     = newColor(color.Bold, color.Italic)
	whiteOnRedC     = newColor(color.FgWhite, color.BgRed)
	blackOnGreenC   = newColor(color.FgBlack, color.BgGreen)
	whiteBoldOnRedC = newColor(color.Bold, color.FgWhite, color.BgRed)
	yellowC         = newColor(color.FgYellow)
	cyanC           = newColor(color.FgCyan)
	cyanUnderlineC  = newColor(color.Underline, color.FgCyan)
	cyanBoldC       = newColor(color.Bold, color.FgCyan)
	magentaC        = newColor(color.FgMagenta)
	redC            = newColor(color.FgRed)
	greenC          = newColor(color.FgGreen)

	// Palette foregrounds are spelled as the raw 38;5;n attribute triple,
	// which fatih/color passes through untouched. 245 is a readable light
	// gray, 8 the darker "bright black" cell, 12 bright blue.
	grayC        = newColor(38, 5, 245)
	dimmedGrayC  = newColor(color.Faint, 38, 5, 245)
	italicGrayC  = newColor(color.Italic, 38, 5, 8)
	intenseBlueC = newColor(38, 5, 12)
)

// Bold styles v with bold weight.
func Bold[T any](v T) Styled[T] { return Styled[T]{c: boldC, value: v} }

// RedBold styles v bold with a red foreground, the usual error accent.
func RedBold[T any](v T) Styled[T] { return Styled[T]{c: redBoldC, value: v} }

// GreenBold styles v bold with a green foreground, the usual success accent.
func GreenBold[T any](v T) Styled[T] { return Styled[T]{c: greenBoldC, value: v} }

// YellowBold styles v bold with a yellow foreground.
func YellowBold[T any](v T) Styled[T] { return Styled[T]{c: yellowBoldC, value: v} }

// Italic styles v italic.
func Italic[T any](v T) Styled[T] { return Styled[T]{c: italicC, value: v} }

// ItalicBold styles v bold italic.
func ItalicBold[T any](v T) Styled[T] { return Styled[T]{c: italicBoldC, value: v} }

// ItalicGray styles v italic in dark gray.
func ItalicGray[T any](v T) Styled[T] { return Styled[T]{c: italicGrayC, value: v} }

// WhiteOnRed styles v white on a red background.
func WhiteOnRed[T any](v T) Styled[T] { return Styled[T]{c: whiteOnRedC, value: v} }

// BlackOnGreen styles v black on a green background.
func BlackOnGreen[T any](v T) Styled[T] { return Styled[T]{c: blackOnGreenC, value: v} }

// WhiteBoldOnRed styles v bold white on a red background.
func WhiteBoldOnRed[T any](v T) Styled[T] { return Styled[T]{c: whiteBoldOnRedC, value: v} }

// Yellow styles v with a yellow foreground.
func Yellow[T any](v T) Styled[T] { return Styled[T]{c: yellowC, value: v} }

// Cyan styles v with a cyan foreground.
func Cyan[T any](v T) Styled[T] { return Styled[T]{c: cyanC, value: v} }

// CyanUnderline styles v underlined with a cyan foreground.
func CyanUnderline[T any](v T) Styled[T] { return Styled[T]{c: cyanUnderlineC, value: v} }

// CyanBold styles v bold with a cyan foreground.
func CyanBold[T any](v T) Styled[T] { return Styled[T]{c: cyanBoldC, value: v} }

// Magenta styles v with a magenta foreground.
func Magenta[T any](v T) Styled[T] { return Styled[T]{c: magentaC, value: v} }

// Red styles v with a red foreground.
func Red[T any](v T) Styled[T] { return Styled[T]{c: redC, value: v} }

// Green styles v with a green foreground.
func Green[T any](v T) Styled[T] { return Styled[T]{c: greenC, value: v} }

// Gray styles v in light gray.
func Gray[T any](v T) Styled[T] { return Styled[T]{c: grayC, value: v} }

// DimmedGray styles v faint in light gray.
func DimmedGray[T any](v T) Styled[T] { return Styled[T]{c: dimmedGrayC, value: v} }

// IntenseBlue styles v in bright blue.
func IntenseBlue[T any](v T) Styled[T] { return Styled[T]{c: intenseBlueC, value: v} }

// Named is a catalog entry pairing a style's name with a renderer for it.
type Named struct {
	Name   string
	Render func(string) fmt.Stringer
}

// Catalog lists every named style in a stable order, for demos and the
// interactive preview.
func Catalog() []Named {
	wrap := func(f func(string) Styled[string]) func(string) fmt.Stringer {
		return func(s string) fmt.Stringer { return f(s) }
	}
	return []Named{
		{"RedBold", wrap(RedBold[string])},
		{"GreenBold", wrap(GreenBold[string])},
		{"YellowBold", wrap(YellowBold[string])},
		{"Italic", wrap(Italic[string])},
		{"ItalicGray", wrap(ItalicGray[string])},
		{"ItalicBold", wrap(ItalicBold[string])},
		{"WhiteOnRed", wrap(WhiteOnRed[string])},
		{"BlackOnGreen", wrap(BlackOnGreen[string])},
		{"Yellow", wrap(Yellow[string])},
		{"Cyan", wrap(Cyan[string])},
		{"CyanUnderline", wrap(CyanUnderline[string])},
		{"CyanBold", wrap(CyanBold[string])},
		{"Magenta", wrap(Magenta[string])},
		{"Red", wrap(Red[string])},
		{"Green", wrap(Green[string])},
		{"Bold", wrap(Bold[string])},
		{"Gray", wrap(Gray[string])},
		{"DimmedGray", wrap(DimmedGray[string])},
		{"IntenseBlue", wrap(IntenseBlue[string])},
		{"WhiteBoldOnRed", wrap(WhiteBoldOnRed[string])},
	}
}
