// Package conv provides frequency-domain cross-correlation and
// cross-convolution for complex signals.
//
// All routines go through the convolution theorem: transform the operands
// with dsp/fourier, combine element-wise in the frequency domain, and
// inverse-transform. The results are therefore circular; callers needing
// linear convolution must zero-pad beyond the matching-length padding these
// functions perform themselves.
//
// # Usage
//
//	result, err := conv.CrossConvolution(sig, filter)   // circular convolution
//	corr, err := conv.CrossCorrelation(sig, template)   // circular correlation
//	idx, peak := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(idx, corr.Len())
//
// The 2D variant matches a pulse grid against a signal grid of the same
// shape:
//
//	corr2d, err := conv.CrossCorrelation2D(sig2d, pulse2d)
//
// # Preconditions
//
// The frequency-domain routines inherit the transform engine's power-of-two
// length requirement; perform any length normalization before the call.
// [DirectCircular] accepts arbitrary equal lengths and is the brute-force
// reference the FFT path is tested against.
package conv
