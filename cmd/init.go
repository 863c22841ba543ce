package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bascanada/termstyle/pkg/styles"
	"github.com/bascanada/termstyle/pkg/term"
	"github.com/bascanada/termstyle/pkg/ty"
)

var (
	// persistent
	colorMode string
	debug     bool

	// report
	outputFormat string
	copyOutput   bool

	// demo
	sampleText string
)

// onCommandStart applies the color policy before any command writes output.
func onCommandStart(cmd *cobra.Command, args []string) {
	term.EnableANSI()
	styles.InitColorState(explicitColorSetting(colorMode), os.Stdout)
	configureLogging()
}

// explicitColorSetting maps the --color flag onto the tri-state override.
// "auto" stays unset so environment detection decides.
func explicitColorSetting(mode string) ty.Opt[bool] {
	var explicit ty.Opt[bool]
	switch mode {
	case "always":
		explicit.S(true)
	case "never":
		explicit.S(false)
	}
	return explicit
}

func configureLogging() {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("color state resolved",
		"mode", colorMode,
		"level", term.ColorLevel().String(),
		"use_color", term.UseColor())
}

func init() {

	// REPORT
	reportCommand.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
	reportCommand.Flags().BoolVar(&copyOutput, "copy", false, "Copy the plain-text report to the clipboard")

	// DEMO
	demoCommand.Flags().StringVar(&sampleText, "text", demoSample, "Sample text rendered in every style")
}
