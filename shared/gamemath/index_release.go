//go:build !debug

package gamemath

// CheckIndex clamps i into [0, n).
func CheckIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
