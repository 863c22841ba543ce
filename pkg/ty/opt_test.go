package ty

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

type signalDoc struct {
	Term      Opt[string] `json:"term" yaml:"term,omitempty"`
	ColorTerm Opt[string] `json:"colorterm" yaml:"colorterm,omitempty"`
}

func TestOpt_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		yamlData string
		expected signalDoc
	}{
		{
			name: "both present",
			yamlData: `term: "xterm-256color"
colorterm: "truecolor"`,
			expected: signalDoc{
				Term:      Opt[string]{Value: "xterm-256color", Set: true, Valid: true},
				ColorTerm: Opt[string]{Value: "truecolor", Set: true, Valid: true},
			},
		},
		{
			name:     "term omitted, colorterm present",
			yamlData: `colorterm: "24bit"`,
			expected: signalDoc{
				Term:      Opt[string]{Set: false, Valid: false},
				ColorTerm: Opt[string]{Value: "24bit", Set: true, Valid: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result signalDoc
			err := yaml.Unmarshal([]byte(tt.yamlData), &result)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOpt_MarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    signalDoc
		expected string
	}{
		{
			name: "both present",
			input: signalDoc{
				Term:      OptWrap("xterm"),
				ColorTerm: OptWrap("truecolor"),
			},
			expected: `term: xterm
colorterm: truecolor
`,
		},
		{
			name: "term is null, colorterm present",
			input: signalDoc{
				Term:      Opt[string]{Set: true, Valid: false},
				ColorTerm: OptWrap("truecolor"),
			},
			expected: `term: null
colorterm: truecolor
`,
		},
		{
			name: "term omitted, colorterm present",
			input: signalDoc{
				ColorTerm: OptWrap("truecolor"),
			},
			expected: `colorterm: truecolor
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yamlData, err := yaml.Marshal(&tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, string(yamlData))
		})
	}
}

func TestOpt_JSONRoundTrip(t *testing.T) {
	input := signalDoc{Term: OptWrap("screen")}

	data, err := json.Marshal(input)
	assert.NoError(t, err)
	assert.Equal(t, `{"term":"screen","colorterm":null}`, string(data))

	var decoded signalDoc
	err = json.Unmarshal(data, &decoded)
	assert.NoError(t, err)
	assert.True(t, decoded.Term.Set)
	assert.True(t, decoded.Term.Valid)
	assert.Equal(t, "screen", decoded.Term.Value)
	assert.True(t, decoded.ColorTerm.Set)
	assert.False(t, decoded.ColorTerm.Valid)
}

func TestOpt_Setters(t *testing.T) {
	var o Opt[bool]
	assert.False(t, o.Set)

	o.S(true)
	assert.True(t, o.Set)
	assert.True(t, o.Valid)
	assert.True(t, o.Value)

	o.N()
	assert.True(t, o.Set)
	assert.False(t, o.Valid)

	o.U()
	assert.False(t, o.Set)
	assert.False(t, o.Valid)
}
