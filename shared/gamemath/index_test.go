//go:build !debug

package gamemath

import "testing"

func TestCheckIndexClamps(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{-3, 10, 0},
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 9},
		{250, 10, 9},
	}
	for _, tt := range tests {
		if got := CheckIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("CheckIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
