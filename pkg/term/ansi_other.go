//go:build !windows

package term

// EnableANSI is a no-op on platforms whose terminals interpret escape
// sequences natively.
func EnableANSI() {}
