package term

import (
	"os"
	"runtime"
	"sync"
	"sync/atomic"
)

// State holds the two process-wide styling decisions: the cached capability
// level and the use-color flag. A single package-level state backs the
// exported functions; tests build their own with NewState to stay isolated
// from the real environment.
type State struct {
	lookup LookupEnv
	goos   string

	levelOnce sync.Once
	level     Level

	flagOnce sync.Once
	useColor atomic.Bool

	forceOnce sync.Once
	force     bool
}

// NewState builds an isolated state reading the environment through lookup.
// Pass nil to read the process environment.
func NewState(lookup LookupEnv) *State {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &State{lookup: lookup, goos: runtime.GOOS}
}

// ColorLevel resolves the terminal capability tier. The environment is
// consulted exactly once, concurrent first calls share the same detection
// pass and every later call returns the cached answer.
func (s *State) ColorLevel() Level {
	s.levelOnce.Do(func() {
		if restrictedTarget {
			s.level = LevelNone
			return
		}
		s.level, _ = detectLevel(s.lookup, s.goos)
	})
	return s.level
}

// ForceColor reports whether FORCE_COLOR was set when first asked.
func (s *State) ForceColor() bool {
	s.forceOnce.Do(func() {
		if restrictedTarget {
			return
		}
		s.force = envSet(s.lookup, EnvForceColor)
	})
	return s.force
}

// UseColor reports whether styled output should currently be rendered. The
// first read seeds the flag from the environment: FORCE_COLOR turns it on
// regardless of NO_COLOR, otherwise it is on unless NO_COLOR is set.
func (s *State) UseColor() bool {
	s.flagOnce.Do(s.initUseColor)
	return s.useColor.Load()
}

// SetUseColor overwrites the flag for the rest of the process (or until the
// next call). The change is visible to every styled value rendered after it,
// including values built earlier.
func (s *State) SetUseColor(v bool) {
	s.flagOnce.Do(s.initUseColor)
	s.useColor.Store(v)
}

func (s *State) initUseColor() {
	if restrictedTarget {
		return
	}
	if envSet(s.lookup, EnvForceColor) {
		s.useColor.Store(true)
		return
	}
	s.useColor.Store(!envSet(s.lookup, EnvNoColor))
}

var std = NewState(nil)

// ColorLevel resolves the terminal capability tier from the process
// environment, once.
func ColorLevel() Level { return std.ColorLevel() }

// ForceColor reports whether FORCE_COLOR is set in the process environment.
func ForceColor() bool { return std.ForceColor() }

// UseColor reports whether styled output should currently be rendered.
func UseColor() bool { return std.UseColor() }

// SetUseColor turns styled output on or off for the whole process.
func SetUseColor(v bool) { std.SetUseColor(v) }
