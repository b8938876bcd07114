package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/cwbudde/algo-fourier/dsp/signal"
)

// Errors returned by convolution and correlation functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrLengthMismatch = errors.New("conv: length mismatch")
)

// CrossConvolution convolves x with filter through the frequency domain:
// both operands are transformed, multiplied element-wise, and
// inverse-transformed. The result is the circular convolution of the two
// sequences; callers wanting linear convolution must pad x accordingly
// before the call.
//
// The filter is zero-padded to the length of x, which must be a power of
// two. A filter longer than x is a contract violation and returns
// [signal.ErrShrinkPad].
func CrossConvolution(x, filter signal.Signal) (signal.Signal, error) {
	if x.Len() == 0 || filter.Len() == 0 {
		return nil, ErrEmptyInput
	}

	padded, err := filter.PadWithZeros(x.Len())
	if err != nil {
		return nil, fmt.Errorf("conv: pad filter: %w", err)
	}

	xf, err := fourier.FFT(x)
	if err != nil {
		return nil, err
	}
	ff, err := fourier.FFT(padded)
	if err != nil {
		return nil, err
	}

	product, err := xf.Mul(ff)
	if err != nil {
		return nil, err
	}
	return fourier.InverseFFT(product)
}

// DirectCircular computes the circular convolution of a and b by brute
// force. Both inputs must have the same length, which need not be a power
// of two. This is O(N^2); it serves as the reference for the FFT-based path
// and as a fallback for tiny irregular lengths.
func DirectCircular(a, b signal.Signal) (signal.Signal, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if a.Len() != b.Len() {
		return nil, ErrLengthMismatch
	}

	n := a.Len()
	out := signal.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[(i+j)%n] += a[i] * b[j]
		}
	}
	return out, nil
}
