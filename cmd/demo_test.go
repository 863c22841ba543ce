package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bascanada/termstyle/pkg/styles"
	"github.com/bascanada/termstyle/pkg/term"
)

func TestRunDemo(t *testing.T) {
	t.Run("plain output lists every style", func(t *testing.T) {
		withColorState(t, false)

		var buf bytes.Buffer
		err := RunDemo(&buf, "sample text", term.Level256)
		assert.NoError(t, err)

		output := buf.String()
		for _, entry := range styles.Catalog() {
			assert.Contains(t, output, entry.Name)
		}
		assert.Equal(t, len(styles.Catalog()), strings.Count(output, "sample text"))
		assert.NotContains(t, output, "\x1b[")
	})

	t.Run("styled output carries escapes", func(t *testing.T) {
		withColorState(t, true)

		var buf bytes.Buffer
		err := RunDemo(&buf, "sample text", term.Level256)
		assert.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "\x1b[1;31msample text\x1b[0m")
		assert.NotContains(t, output, "note:")
	})

	t.Run("16 color terminals get a palette note", func(t *testing.T) {
		withColorState(t, true)

		var buf bytes.Buffer
		err := RunDemo(&buf, "sample text", term.LevelBasic)
		assert.NoError(t, err)

		assert.Contains(t, buf.String(), "note:")
	})

	t.Run("no note when colors are off", func(t *testing.T) {
		withColorState(t, false)

		var buf bytes.Buffer
		err := RunDemo(&buf, "sample text", term.LevelBasic)
		assert.NoError(t, err)

		assert.NotContains(t, buf.String(), "note:")
	})
}
