package core

import "testing"

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"exact", 1.0, 1.0, 1e-12, true},
		{"within absolute eps", 0, 1e-13, 1e-12, true},
		{"within relative eps", 1e6, 1e6 + 1e-4, 1e-9, true},
		{"outside eps", 1.0, 1.1, 1e-12, false},
		{"default eps when non-positive", 2.0, 2.0, 0, true},
		{"both zero", 0, 0, 1e-12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("NearlyEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	trueCases := []int{1, 2, 4, 8, 1024, 1 << 20}
	for _, n := range trueCases {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}

	falseCases := []int{-4, -1, 0, 3, 5, 6, 7, 12, 1000}
	for _, n := range falseCases {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{1000, 1024},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
