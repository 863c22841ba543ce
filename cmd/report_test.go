package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/bascanada/termstyle/pkg/styles"
	"github.com/bascanada/termstyle/pkg/term"
	"github.com/bascanada/termstyle/pkg/ty"
)

// withColorState pins the process-wide color flag for one test.
func withColorState(t *testing.T, enabled bool) {
	t.Helper()
	prev := term.UseColor()
	var explicit ty.Opt[bool]
	explicit.S(enabled)
	styles.InitColorState(explicit, nil)
	t.Cleanup(func() {
		var restore ty.Opt[bool]
		restore.S(prev)
		styles.InitColorState(restore, nil)
	})
}

func reportFixture() Report {
	var signals term.Signals
	signals.Term.S("xterm-256color")
	signals.CI.S("GITHUB_ACTIONS")
	return Report{
		Level:    term.Level256,
		Reason:   term.ReasonCIKnown,
		UseColor: true,
		Signals:  signals,
	}
}

func TestRunReport(t *testing.T) {
	report := reportFixture()

	t.Run("text output", func(t *testing.T) {
		withColorState(t, false)

		var buf bytes.Buffer
		err := RunReport(&buf, report, "text")
		assert.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "level:")
		assert.Contains(t, output, "256")
		assert.Contains(t, output, term.ReasonCIKnown)
		assert.Contains(t, output, "GITHUB_ACTIONS")
		assert.Contains(t, output, "NO_COLOR")
		assert.Contains(t, output, "unset")
		assert.NotContains(t, output, "\x1b[")
	})

	t.Run("styled text output", func(t *testing.T) {
		withColorState(t, true)

		var buf bytes.Buffer
		err := RunReport(&buf, report, "text")
		assert.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "\x1b[1;36m256\x1b[0m")
		assert.Contains(t, output, "\x1b[1;32myes\x1b[0m")
	})

	t.Run("json output", func(t *testing.T) {
		withColorState(t, false)

		var buf bytes.Buffer
		err := RunReport(&buf, report, "json")
		assert.NoError(t, err)

		var result map[string]interface{}
		err = json.Unmarshal(buf.Bytes(), &result)
		assert.NoError(t, err)

		assert.Equal(t, "256", result["level"])
		assert.Equal(t, true, result["use_color"])

		signals, ok := result["signals"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "GITHUB_ACTIONS", signals["CI"])
		assert.Nil(t, signals["NO_COLOR"])
	})

	t.Run("colored json output", func(t *testing.T) {
		withColorState(t, true)

		var buf bytes.Buffer
		err := RunReport(&buf, report, "json")
		assert.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "\x1b[")
		assert.Contains(t, output, "level")
	})

	t.Run("yaml output", func(t *testing.T) {
		withColorState(t, false)

		var buf bytes.Buffer
		err := RunReport(&buf, report, "yaml")
		assert.NoError(t, err)

		var result map[string]interface{}
		err = yaml.Unmarshal(buf.Bytes(), &result)
		assert.NoError(t, err)

		assert.Equal(t, "256", result["level"])

		signals, ok := result["signals"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "GITHUB_ACTIONS", signals["CI"])
		assert.NotContains(t, signals, "NO_COLOR")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunReport(&buf, report, "xml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})
}

func TestRenderReportText_PlainForClipboard(t *testing.T) {
	withColorState(t, true)

	text := renderReportText(reportFixture(), painter{plain: true})

	assert.NotContains(t, text, "\x1b[")
	assert.Contains(t, text, "yes")
	assert.Contains(t, text, "xterm-256color")
}

func TestBuildReport(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "dumb")

	report := BuildReport()

	assert.Equal(t, term.LevelNone, report.Level)
	assert.Equal(t, term.ReasonNoColor, report.Reason)
	assert.True(t, report.Signals.NoColor.Set)
	assert.Equal(t, "dumb", report.Signals.Term.Value)
}

func TestExplicitColorSetting(t *testing.T) {
	always := explicitColorSetting("always")
	assert.True(t, always.Set)
	assert.True(t, always.Value)

	never := explicitColorSetting("never")
	assert.True(t, never.Set)
	assert.False(t, never.Value)

	auto := explicitColorSetting("auto")
	assert.False(t, auto.Set)
}
