package fourier

import (
	"errors"
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/signal"
)

const tolerance = 1e-9

func assertSignalsNear(t *testing.T, got, want signal.Signal, eps float64) {
	t.Helper()

	if got.Len() != want.Len() {
		t.Fatalf("length mismatch: got %d, want %d", got.Len(), want.Len())
	}

	for i := range got {
		if !core.NearlyEqual(real(got[i]), real(want[i]), eps) ||
			!core.NearlyEqual(imag(got[i]), imag(want[i]), eps) {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func randomSignal(n int, rng *rand.Rand) signal.Signal {
	s := signal.New(n)
	for i := range s {
		s[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return s
}

func TestFFTBaseCase(t *testing.T) {
	in := signal.FromComplex([]complex128{3 - 2i})

	out, err := FFT(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertSignalsNear(t, out, in, tolerance)
}

func TestFFTKnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   []complex128
		want []complex128
	}{
		{
			name: "constant four samples",
			in:   []complex128{1, 1, 1, 1},
			want: []complex128{4, 0, 0, 0},
		},
		{
			name: "impulse at zero",
			in:   []complex128{1, 0, 0, 0},
			want: []complex128{1, 1, 1, 1},
		},
		{
			name: "delayed impulse",
			in:   []complex128{0, 1, 0, 0},
			want: []complex128{1, -1i, -1, 1i},
		},
		{
			name: "alternating",
			in:   []complex128{1, -1, 1, -1},
			want: []complex128{0, 0, 4, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FFT(signal.FromComplex(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertSignalsNear(t, out, signal.Signal(tt.want), tolerance)
		})
	}
}

func TestFFTInvalidLength(t *testing.T) {
	for _, n := range []int{0, 3, 6, 12, 100} {
		in := signal.New(n)

		if _, err := FFT(in); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("FFT length %d: expected ErrInvalidLength, got %v", n, err)
		}
		if _, err := InverseFFT(in); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("InverseFFT length %d: expected ErrInvalidLength, got %v", n, err)
		}
	}
}

func TestFFTLinearity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randomSignal(64, rng)
	b := randomSignal(64, rng)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fa, err := FFT(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fb, err := FFT(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fsum, err := FFT(sum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := fa.Add(fb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertSignalsNear(t, fsum, want, tolerance)
}

func TestFFTDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	in := randomSignal(32, rng)
	snapshot := in.Clone()

	if _, err := FFT(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSignalsNear(t, in, snapshot, 0)

	if _, err := InverseFFT(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSignalsNear(t, in, snapshot, 0)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 4, 16, 64, 256} {
		in := randomSignal(n, rng)

		freq, err := FFT(in)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", n, err)
		}

		back, err := InverseFFT(freq)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", n, err)
		}

		assertSignalsNear(t, back, in, tolerance)
	}
}

func TestFFTMatchesPlanOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))

	for _, n := range []int{8, 64, 512} {
		in := randomSignal(n, rng)

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			t.Fatalf("length %d: failed to create FFT plan: %v", n, err)
		}

		want := make([]complex128, n)
		if err := plan.Forward(want, in); err != nil {
			t.Fatalf("length %d: forward FFT failed: %v", n, err)
		}

		got, err := FFT(in)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", n, err)
		}
		assertSignalsNear(t, got, signal.Signal(want), tolerance)

		wantInv := make([]complex128, n)
		if err := plan.Inverse(wantInv, in); err != nil {
			t.Fatalf("length %d: inverse FFT failed: %v", n, err)
		}

		gotInv, err := InverseFFT(in)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", n, err)
		}
		assertSignalsNear(t, gotInv, signal.Signal(wantInv), tolerance)
	}
}

func TestFFT2DKnownValues(t *testing.T) {
	in, err := signal.FromRows([]signal.Signal{
		{1, 1},
		{1, 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := FFT2D(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := signal.Signal2D{
		{4, 0},
		{0, 0},
	}
	for r := range want {
		assertSignalsNear(t, out[r], want[r], tolerance)
	}
}

func TestFFT2DRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	grid := signal.New2D(4, 8)
	for r := range grid {
		grid[r] = randomSignal(8, rng)
	}

	freq, err := FFT2D(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := InverseFFT2D(freq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for r := range grid {
		assertSignalsNear(t, back[r], grid[r], tolerance)
	}
}

func TestFFT2DDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	grid := signal.New2D(4, 4)
	for r := range grid {
		grid[r] = randomSignal(4, rng)
	}
	snapshot := grid.Clone()

	if _, err := FFT2D(grid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for r := range grid {
		assertSignalsNear(t, grid[r], snapshot[r], 0)
	}
}

func TestFFT2DInvalidDimensions(t *testing.T) {
	if _, err := FFT2D(signal.New2D(3, 4)); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("height 3: expected ErrInvalidLength, got %v", err)
	}
	if _, err := FFT2D(signal.New2D(4, 6)); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("width 6: expected ErrInvalidLength, got %v", err)
	}
	if _, err := InverseFFT2D(signal.New2D(0, 0)); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("empty grid: expected ErrInvalidLength, got %v", err)
	}

	ragged := signal.Signal2D{signal.New(4), signal.New(2)}
	if _, err := FFT2D(ragged); !errors.Is(err, signal.ErrShapeMismatch) {
		t.Errorf("ragged grid: expected ErrShapeMismatch, got %v", err)
	}
}
