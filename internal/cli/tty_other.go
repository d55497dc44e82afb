//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd

package cli

// Styling stays off where terminal detection is unavailable.
func isTerminal(fd uintptr) bool {
	return false
}
