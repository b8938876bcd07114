// Package signal provides the complex-valued sample containers the transform
// and correlation packages operate on.
//
// A [Signal] is a fixed-length ordered sequence of complex128 samples; a
// [Signal2D] is a rectangular grid of them. Both offer each mutating
// operation in two shapes: a pure form returning a new container and an
// explicit InPlace form mutating the receiver and returning it for chaining.
// The transform entry points in dsp/fourier only ever use the pure forms on
// their inputs.
package signal

import (
	"errors"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by container operations.
var (
	// ErrIndexOutOfRange is returned by the validated accessors for an index
	// outside the container.
	ErrIndexOutOfRange = errors.New("signal: index out of range")

	// ErrShrinkPad is returned when a pad target is smaller than the current
	// length. Padding never truncates.
	ErrShrinkPad = errors.New("signal: pad target smaller than current length")

	// ErrShapeMismatch is returned when an element-wise operation receives
	// operands of differing length or grid shape.
	ErrShapeMismatch = errors.New("signal: shape mismatch")
)

// Signal is a fixed-length ordered sequence of complex samples.
//
// The slice itself is directly indexable for hot loops; At and Set are the
// range-checked accessors for callers that want a reported error instead of
// a runtime panic.
type Signal []complex128

// New returns a zero-filled Signal of the given length.
func New(length int) Signal {
	if length < 0 {
		length = 0
	}
	return make(Signal, length)
}

// FromReal returns a Signal with the given real parts and zero imaginary
// parts. The input slice is copied.
func FromReal(re []float64) Signal {
	s := make(Signal, len(re))
	for i, v := range re {
		s[i] = complex(v, 0)
	}
	return s
}

// FromComplex returns a Signal holding a copy of the given samples.
func FromComplex(samples []complex128) Signal {
	s := make(Signal, len(samples))
	copy(s, samples)
	return s
}

// Len returns the number of samples.
func (s Signal) Len() int {
	return len(s)
}

// At returns the sample at index i.
func (s Signal) At(i int) (complex128, error) {
	if i < 0 || i >= len(s) {
		return 0, ErrIndexOutOfRange
	}
	return s[i], nil
}

// Set stores v at index i.
func (s Signal) Set(i int, v complex128) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	s[i] = v
	return nil
}

// Clone returns a deep copy of the signal.
func (s Signal) Clone() Signal {
	out := make(Signal, len(s))
	copy(out, s)
	return out
}

// Conjugate returns a new Signal with every imaginary component negated.
func (s Signal) Conjugate() Signal {
	out := make(Signal, len(s))
	for i, v := range s {
		out[i] = complex(real(v), -imag(v))
	}
	return out
}

// ConjugateInPlace negates every imaginary component, mutating the receiver.
// It returns the receiver for chaining.
func (s Signal) ConjugateInPlace() Signal {
	for i, v := range s {
		s[i] = complex(real(v), -imag(v))
	}
	return s
}

// PadWithZeros returns a new Signal of the given length with the existing
// samples in the low indices and zeros above them. A target below the
// current length returns ErrShrinkPad.
func (s Signal) PadWithZeros(length int) (Signal, error) {
	if length < len(s) {
		return nil, ErrShrinkPad
	}
	out := make(Signal, length)
	copy(out, s)
	return out, nil
}

// DivideByScalarInPlace divides every sample by the real scalar d, mutating
// the receiver, and returns it for chaining. Division by zero yields
// Inf/NaN components per IEEE-754; no error is signaled.
func (s Signal) DivideByScalarInPlace(d float64) Signal {
	if len(s) == 0 {
		return s
	}

	re, im, buf := getScratch(len(s))
	for i, v := range s {
		re[i] = real(v)
		im[i] = imag(v)
	}

	inv := 1 / d
	vecmath.ScaleBlockInPlace(re, inv)
	vecmath.ScaleBlockInPlace(im, inv)

	for i := range s {
		s[i] = complex(re[i], im[i])
	}
	putScratch(buf)
	return s
}

// Add returns the element-wise sum of s and other.
func (s Signal) Add(other Signal) (Signal, error) {
	if len(s) != len(other) {
		return nil, ErrShapeMismatch
	}
	out := make(Signal, len(s))
	for i := range s {
		out[i] = s[i] + other[i]
	}
	return out, nil
}

// Mul returns the element-wise product of s and other.
func (s Signal) Mul(other Signal) (Signal, error) {
	if len(s) != len(other) {
		return nil, ErrShapeMismatch
	}
	out := make(Signal, len(s))
	for i := range s {
		out[i] = s[i] * other[i]
	}
	return out, nil
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
