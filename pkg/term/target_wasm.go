//go:build wasm

package term

// Wasm runtimes expose no terminal to probe; styling stays off until a
// caller opts in with SetUseColor.
const restrictedTarget = true
