package term

import (
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/bascanada/termstyle/pkg/ty"
)

// LookupEnv is the environment access used by detection. The default reads
// the process environment; tests inject a map-backed lookup instead.
type LookupEnv func(key string) (string, bool)

// Environment variables consulted by detection.
const (
	EnvForceColor = "FORCE_COLOR"
	EnvNoColor    = "NO_COLOR"
	EnvTerm       = "TERM"
	EnvColorTerm  = "COLORTERM"
	EnvTmux       = "TMUX"
	EnvCI         = "CI"
)

// CI values known to provide a 256-color terminal. Anything else falls
// through to the generic rules.
var ciProviders = map[string]bool{
	"TRAVIS":         true,
	"CIRCLECI":       true,
	"APPVEYOR":       true,
	"GITLAB_CI":      true,
	"GITHUB_ACTIONS": true,
	"BUILDKITE":      true,
	"DRONE":          true,
}

// Rule names reported by DescribeSupport.
const (
	ReasonNoColor    = "NO_COLOR is set"
	ReasonDumbTerm   = "TERM=dumb"
	ReasonWindows    = "windows console"
	ReasonTmux       = "running under tmux"
	ReasonCIKnown    = "recognized CI provider"
	ReasonCIOpaque   = "CI value is not valid text"
	ReasonColorTerm  = "COLORTERM requests truecolor"
	ReasonTerm256    = "TERM requests 256 colors"
	ReasonDefault    = "16-color default"
	ReasonRestricted = "restricted target"
)

// envSet reports whether key is present with a non-empty value.
func envSet(lookup LookupEnv, key string) bool {
	v, ok := lookup(key)
	return ok && v != ""
}

// detectLevel walks the detection rules in order and returns the first match
// together with the rule that decided. goos is a parameter so tests can
// exercise the windows branch anywhere.
func detectLevel(lookup LookupEnv, goos string) (Level, string) {
	force := envSet(lookup, EnvForceColor)
	if !force {
		if envSet(lookup, EnvNoColor) {
			return LevelNone, ReasonNoColor
		}
		if v, ok := lookup(EnvTerm); ok && v == "dumb" {
			return LevelNone, ReasonDumbTerm
		}
	}

	if goos == "windows" {
		return LevelTrueColor, ReasonWindows
	}

	// Presence alone is the signal, tmux sets TMUX even to an empty value.
	if _, ok := lookup(EnvTmux); ok {
		return LevelBasic, ReasonTmux
	}

	if v, ok := lookup(EnvCI); ok {
		if !utf8.ValidString(v) {
			return LevelBasic, ReasonCIOpaque
		}
		if ciProviders[v] {
			return Level256, ReasonCIKnown
		}
	}

	if v, ok := lookup(EnvColorTerm); ok && utf8.ValidString(v) {
		if v == "truecolor" || v == "24bit" {
			return LevelTrueColor, ReasonColorTerm
		}
	}

	if v, ok := lookup(EnvTerm); ok && utf8.ValidString(v) {
		if strings.HasSuffix(v, "-256color") || strings.HasSuffix(v, "256") {
			return Level256, ReasonTerm256
		}
	}

	return LevelBasic, ReasonDefault
}

// Signals is the snapshot of environment variables consulted by detection.
// Absent variables stay absent instead of collapsing to empty strings.
type Signals struct {
	ForceColor ty.Opt[string] `json:"FORCE_COLOR" yaml:"FORCE_COLOR,omitempty"`
	NoColor    ty.Opt[string] `json:"NO_COLOR" yaml:"NO_COLOR,omitempty"`
	Term       ty.Opt[string] `json:"TERM" yaml:"TERM,omitempty"`
	ColorTerm  ty.Opt[string] `json:"COLORTERM" yaml:"COLORTERM,omitempty"`
	Tmux       ty.Opt[string] `json:"TMUX" yaml:"TMUX,omitempty"`
	CI         ty.Opt[string] `json:"CI" yaml:"CI,omitempty"`
}

// Signal is one consulted variable together with its observed state.
type Signal struct {
	Name  string
	Value ty.Opt[string]
}

// List returns the consulted variables as ordered pairs, absent ones
// included, so callers can print them without reflecting over the struct.
func (s Signals) List() []Signal {
	return []Signal{
		{EnvForceColor, s.ForceColor},
		{EnvNoColor, s.NoColor},
		{EnvTerm, s.Term},
		{EnvColorTerm, s.ColorTerm},
		{EnvTmux, s.Tmux},
		{EnvCI, s.CI},
	}
}

func captureSignals(lookup LookupEnv) Signals {
	var s Signals
	capture := func(key string, into *ty.Opt[string]) {
		if v, ok := lookup(key); ok {
			into.S(v)
		}
	}
	capture(EnvForceColor, &s.ForceColor)
	capture(EnvNoColor, &s.NoColor)
	capture(EnvTerm, &s.Term)
	capture(EnvColorTerm, &s.ColorTerm)
	capture(EnvTmux, &s.Tmux)
	capture(EnvCI, &s.CI)
	return s
}

// Support describes one full detection pass.
type Support struct {
	Level   Level   `json:"level" yaml:"level"`
	Reason  string  `json:"reason" yaml:"reason"`
	Signals Signals `json:"signals" yaml:"signals"`
}

// DescribeSupport re-runs detection against lookup and reports the level,
// the rule that decided it, and the variables consulted. Unlike ColorLevel
// the result is not cached; it exists for diagnostics. Pass nil to read the
// process environment.
func DescribeSupport(lookup LookupEnv) Support {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if restrictedTarget {
		return Support{Level: LevelNone, Reason: ReasonRestricted, Signals: captureSignals(lookup)}
	}
	level, reason := detectLevel(lookup, runtime.GOOS)
	return Support{Level: level, Reason: reason, Signals: captureSignals(lookup)}
}
