// Package spectrum provides spectrum-domain extraction helpers for complex
// signals: per-bin magnitude, power, and phase, plus phase unwrapping.
//
// The package does not implement the transform itself; it operates on
// [signal.Signal] values such as those produced by dsp/fourier.
package spectrum
