// Package term detects terminal color capability and owns the process-wide
// switch that decides whether styled output is rendered or passed through
// plain.
//
// # Capability detection
//
// ColorLevel resolves the escape-sequence tier the attached terminal accepts
// by inspecting environment variables and the target platform. Rules are
// evaluated in a fixed order and the first match wins:
//
//  1. FORCE_COLOR set (non-empty): the two disable rules below are skipped.
//  2. NO_COLOR set (non-empty): no styling.
//  3. TERM=dumb: no styling.
//  4. Windows: 24-bit color. Modern consoles accept it and expose no
//     finer-grained signal worth trusting.
//  5. TMUX present (even empty): 16 colors. The multiplexer may sit on a
//     less capable outer terminal.
//  6. CI present: a recognized provider value means 256 colors, a value that
//     is not valid text means 16 colors, anything else falls through.
//  7. COLORTERM=truecolor or 24bit: 24-bit color.
//  8. TERM ending in -256color or 256: 256 colors.
//  9. Otherwise: 16 colors.
//
// The level is resolved once per process and cached; the environment is not
// re-read afterwards. DescribeSupport runs the same rules without the cache
// and also reports which rule decided, for diagnostics.
//
// # The use-color flag
//
// Whether styling is emitted at all is a separate, coarser switch. It starts
// from the environment (FORCE_COLOR wins over NO_COLOR, otherwise on unless
// NO_COLOR is set) and can be overwritten at any time with SetUseColor. All
// styled values observe the current flag when they render, not when they are
// built.
//
// On wasm targets there is no terminal to detect: the level is none and the
// flag starts false until a caller opts in.
package term
