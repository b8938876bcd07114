package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Impulse generates a unit impulse of the given length with the single
// nonzero sample at index at.
func Impulse(length, at int) (Signal, error) {
	if length <= 0 {
		return nil, fmt.Errorf("impulse length must be > 0: %d", length)
	}
	if at < 0 || at >= length {
		return nil, ErrIndexOutOfRange
	}
	out := New(length)
	out[at] = 1
	return out, nil
}

// Sine generates a real-valued sine wave spanning the given number of whole
// cycles across the frame. Integer cycle counts land on exact frequency
// bins.
func Sine(length int, cycles, amplitude float64) (Signal, error) {
	if length <= 0 {
		return nil, fmt.Errorf("sine length must be > 0: %d", length)
	}
	out := New(length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = complex(amplitude*math.Sin(step*float64(i)), 0)
	}
	return out, nil
}

// WhiteNoise generates deterministic real-valued white noise in
// [-amplitude, amplitude] from the given seed.
func WhiteNoise(length int, amplitude float64, seed int64) (Signal, error) {
	if length <= 0 {
		return nil, fmt.Errorf("noise length must be > 0: %d", length)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := New(length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex((rng.Float64()*2-1)*amplitude, 0)
	}
	return out, nil
}
