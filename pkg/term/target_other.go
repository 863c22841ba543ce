//go:build !wasm

package term

const restrictedTarget = false
