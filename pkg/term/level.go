package term

// Level is the escape-sequence tier a terminal accepts.
type Level int

const (
	// LevelNone means no escape sequences at all.
	LevelNone Level = iota
	// LevelBasic means the 16 classic ANSI colors.
	LevelBasic
	// Level256 means the extended 256-color palette.
	Level256
	// LevelTrueColor means full 24-bit RGB.
	LevelTrueColor
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelBasic:
		return "basic"
	case Level256:
		return "256"
	case LevelTrueColor:
		return "truecolor"
	}
	return "unknown"
}

// Supports reports whether l offers at least the capability of other. Tiers
// are strictly ordered, a terminal at a higher level renders everything a
// lower one does.
func (l Level) Supports(other Level) bool {
	return l >= other
}

// MarshalText encodes the level as its name so reports serialize readably.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// MarshalYAML mirrors MarshalText. yaml.v3 does not consult TextMarshaler,
// so without this a level would serialize as a bare int.
func (l Level) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}
