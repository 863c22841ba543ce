package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bascanada/termstyle/pkg/styles"
	"github.com/bascanada/termstyle/pkg/term"
	"github.com/bascanada/termstyle/pkg/ty"
)

// Report is the capability diagnosis printed by the report command.
type Report struct {
	Level      term.Level   `json:"level" yaml:"level"`
	Reason     string       `json:"reason" yaml:"reason"`
	UseColor   bool         `json:"use_color" yaml:"use_color"`
	ForceColor bool         `json:"force_color" yaml:"force_color"`
	StdoutTTY  bool         `json:"stdout_tty" yaml:"stdout_tty"`
	StderrTTY  bool         `json:"stderr_tty" yaml:"stderr_tty"`
	Signals    term.Signals `json:"signals" yaml:"signals"`
}

// BuildReport snapshots the detection outcome and process state.
func BuildReport() Report {
	support := term.DescribeSupport(nil)
	return Report{
		Level:      support.Level,
		Reason:     support.Reason,
		UseColor:   term.UseColor(),
		ForceColor: term.ForceColor(),
		StdoutTTY:  term.IsStdoutTTY(),
		StderrTTY:  term.IsStderrTTY(),
		Signals:    support.Signals,
	}
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Explain the color capability detected for this terminal",
	Long: `Report shows which capability tier was detected, the environment
variables that drove the decision, and whether styled output is on.

Examples:
  # Human readable report
  termstyle report

  # Machine readable, for scripts
  termstyle report -o json
  termstyle report -o yaml

  # Put the plain-text report on the clipboard for a bug ticket
  termstyle report --copy`,
	PreRun: onCommandStart,
	Run: func(cmd *cobra.Command, args []string) {
		report := BuildReport()

		if err := RunReport(os.Stdout, report, outputFormat); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}

		if copyOutput {
			if err := clipboard.WriteAll(renderReportText(report, painter{plain: true})); err != nil {
				fmt.Fprintln(os.Stderr, "error copying report:", err)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "report copied to clipboard")
		}
	},
}

// RunReport writes report to out in the requested format.
func RunReport(out io.Writer, report Report, format string) error {
	switch format {
	case "", "text":
		_, err := io.WriteString(out, renderReportText(report, painter{}))
		return err
	case "json":
		return writeReportJSON(out, report)
	case "yaml":
		return writeReportYAML(out, report)
	default:
		return fmt.Errorf("unknown output format %q, want text, json or yaml", format)
	}
}

// painter renders report fields either styled or as plain text. The plain
// form feeds the clipboard copy, which must stay escape free even when the
// terminal output is colored.
type painter struct{ plain bool }

func (p painter) level(l term.Level) string {
	if p.plain {
		return l.String()
	}
	return styles.CyanBold(l).String()
}

func (p painter) yesNo(v bool) string {
	switch {
	case p.plain && v:
		return "yes"
	case p.plain:
		return "no"
	case v:
		return styles.GreenBold("yes").String()
	default:
		return styles.Gray("no").String()
	}
}

func (p painter) signal(value ty.Opt[string]) string {
	switch {
	case !value.Set:
		if p.plain {
			return "unset"
		}
		return styles.Gray("unset").String()
	case value.Value == "":
		if p.plain {
			return "set, empty"
		}
		return styles.Italic("set, empty").String()
	default:
		if p.plain {
			return value.Value
		}
		return styles.Cyan(value.Value).String()
	}
}

func renderReportText(report Report, p painter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "level:        %s (%s)\n", p.level(report.Level), report.Reason)
	fmt.Fprintf(&b, "use color:    %s\n", p.yesNo(report.UseColor))
	fmt.Fprintf(&b, "force color:  %s\n", p.yesNo(report.ForceColor))
	fmt.Fprintf(&b, "stdout tty:   %s\n", p.yesNo(report.StdoutTTY))
	fmt.Fprintf(&b, "stderr tty:   %s\n", p.yesNo(report.StderrTTY))
	b.WriteString("signals:\n")
	for _, signal := range report.Signals.List() {
		fmt.Fprintf(&b, "  %-12s %s\n", signal.Name, p.signal(signal.Value))
	}

	return b.String()
}

func writeReportJSON(out io.Writer, report Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	// Plain output stays machine friendly for pipes.
	if !term.UseColor() {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, data, "", "  "); err != nil {
			return err
		}
		pretty.WriteByte('\n')
		_, err = out.Write(pretty.Bytes())
		return err
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	colored, err := f.Marshal(obj)
	if err != nil {
		return err
	}
	colored = append(colored, '\n')
	_, err = out.Write(colored)
	return err
}

func writeReportYAML(out io.Writer, report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
