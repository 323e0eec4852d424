//go:build debug

package gamemath

import "fmt"

// CheckIndex panics when i falls outside [0, n).
func CheckIndex(i, n int) int {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("gamemath: index %d out of range [0, %d)", i, n))
	}
	return i
}
