// Package fourier implements radix-2 discrete Fourier transforms for one-
// and two-dimensional complex signals.
//
// The forward transform is the recursive Cooley-Tukey decimation-in-time
// FFT with the negative-exponent twiddle convention; the inverse is the
// conjugate formulation IFFT(x) = conj(FFT(conj(x))) / N. The 2D transforms
// are separable: rows first, then columns.
//
// All entry points require power-of-two lengths (length 1 included) and
// return [ErrInvalidLength] otherwise. Inputs are never mutated; every call
// returns a freshly allocated container.
package fourier

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/signal"
)

// ErrInvalidLength is returned when a transform input length or grid
// dimension is not a positive power of two.
var ErrInvalidLength = errors.New("fourier: length must be a power of two")

// FFT computes the forward discrete Fourier transform of x.
// X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N).
func FFT(x signal.Signal) (signal.Signal, error) {
	if !core.IsPowerOfTwo(x.Len()) {
		return nil, ErrInvalidLength
	}
	return transform(x), nil
}

// InverseFFT computes the inverse discrete Fourier transform of x, scaled
// by 1/N so that InverseFFT(FFT(x)) recovers x.
func InverseFFT(x signal.Signal) (signal.Signal, error) {
	if !core.IsPowerOfTwo(x.Len()) {
		return nil, ErrInvalidLength
	}
	out := transform(x.Conjugate())
	return out.ConjugateInPlace().DivideByScalarInPlace(float64(x.Len())), nil
}

// transform is the radix-2 decimation-in-time recursion. The length of x
// must already be a power of two.
func transform(x signal.Signal) signal.Signal {
	n := x.Len()
	if n == 1 {
		return x.Clone()
	}

	half := n / 2
	even := signal.New(half)
	odd := signal.New(half)
	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	even = transform(even)
	odd = transform(odd)

	out := signal.New(n)
	for k := 0; k < half; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		w := complex(math.Cos(angle), math.Sin(angle))
		t := w * odd[k]
		out[k] = even[k] + t
		out[k+half] = even[k] - t
	}
	return out
}

// FFT2D computes the forward 2D transform of g by transforming every row
// and then every column of the intermediate grid.
func FFT2D(g signal.Signal2D) (signal.Signal2D, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	height := g.Height()
	width := g.Width()
	out := make(signal.Signal2D, height)
	for r := 0; r < height; r++ {
		out[r] = transform(g[r])
	}

	col := signal.New(height)
	for c := 0; c < width; c++ {
		for r := 0; r < height; r++ {
			col[r] = out[r][c]
		}
		transformed := transform(col)
		for r := 0; r < height; r++ {
			out[r][c] = transformed[r]
		}
	}
	return out, nil
}

// InverseFFT2D computes the inverse 2D transform of g, scaled by
// 1/(width*height) so that InverseFFT2D(FFT2D(g)) recovers g.
func InverseFFT2D(g signal.Signal2D) (signal.Signal2D, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	out, err := FFT2D(g.Conjugate())
	if err != nil {
		return nil, err
	}
	n := float64(g.Width() * g.Height())
	return out.ConjugateInPlace().DivideByScalarInPlace(n), nil
}

// checkGrid validates the 2D transform preconditions: power-of-two height
// and width, and rectangular rows.
func checkGrid(g signal.Signal2D) error {
	if !core.IsPowerOfTwo(g.Height()) || !core.IsPowerOfTwo(g.Width()) {
		return ErrInvalidLength
	}
	for r := range g {
		if len(g[r]) != g.Width() {
			return signal.ErrShapeMismatch
		}
	}
	return nil
}
