package conv

import (
	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/dsp/spectrum"
)

// CrossCorrelation computes the circular cross-correlation of x and y
// through the frequency domain: InverseFFT(FFT(x) * conj(FFT(y))).
//
// The shorter operand is zero-padded to the longer's length, which must be
// a power of two. Output index k is the correlation at circular lag k; use
// [FindPeak] and [LagFromIndex] to read off the best alignment.
func CrossCorrelation(x, y signal.Signal) (signal.Signal, error) {
	if x.Len() == 0 || y.Len() == 0 {
		return nil, ErrEmptyInput
	}

	n := x.Len()
	if y.Len() > n {
		n = y.Len()
	}
	xp, err := x.PadWithZeros(n)
	if err != nil {
		return nil, err
	}
	yp, err := y.PadWithZeros(n)
	if err != nil {
		return nil, err
	}

	xf, err := fourier.FFT(xp)
	if err != nil {
		return nil, err
	}
	yf, err := fourier.FFT(yp)
	if err != nil {
		return nil, err
	}

	product, err := xf.Mul(yf.ConjugateInPlace())
	if err != nil {
		return nil, err
	}
	return fourier.InverseFFT(product)
}

// CrossCorrelation2D computes the circular 2D cross-correlation of sig and
// pulse: InverseFFT2D(conj(FFT2D(pulse)) * FFT2D(sig)). Both grids must
// have identical shape; a mismatch returns [signal.ErrShapeMismatch]. Both
// dimensions must be powers of two.
//
// The magnitude peak of the result marks where the pulse best matches the
// signal.
func CrossCorrelation2D(sig, pulse signal.Signal2D) (signal.Signal2D, error) {
	if sig.Height() == 0 || pulse.Height() == 0 {
		return nil, ErrEmptyInput
	}
	if !signal.SameShape(sig, pulse) {
		return nil, signal.ErrShapeMismatch
	}

	sf, err := fourier.FFT2D(sig)
	if err != nil {
		return nil, err
	}
	pf, err := fourier.FFT2D(pulse)
	if err != nil {
		return nil, err
	}

	product, err := pf.ConjugateInPlace().Mul(sf)
	if err != nil {
		return nil, err
	}
	return fourier.InverseFFT2D(product)
}

// FindPeak returns the index and magnitude of the strongest sample in a
// correlation result. Returns index -1 for an empty input.
func FindPeak(corr signal.Signal) (index int, value float64) {
	mags := spectrum.Magnitude(corr)
	if len(mags) == 0 {
		return -1, 0
	}

	index = 0
	value = mags[0]
	for i, v := range mags {
		if v > value {
			index = i
			value = v
		}
	}
	return index, value
}

// LagFromIndex converts a circular correlation result index to a signed
// lag. For a result of length n, indices above n/2 represent negative lags.
func LagFromIndex(index, n int) int {
	if index > n/2 {
		return index - n
	}
	return index
}
