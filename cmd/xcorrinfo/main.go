// Command xcorrinfo locates a pulse inside a noisy frame by frequency-domain
// cross-correlation and prints the detected alignment.
//
// Usage:
//
//	xcorrinfo [flags]
//
// Examples:
//
//	xcorrinfo
//	xcorrinfo -length 1024 -offset 300
//	xcorrinfo -length 256 -offset 40 -noise 0.5 -seed 3
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-fourier/dsp/conv"
	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/signal"
)

func main() {
	length := flag.Int("length", 512, "frame length (power of two)")
	offset := flag.Int("offset", 100, "sample offset of the embedded pulse")
	pulseLen := flag.Int("pulse", 16, "pulse length in samples")
	noise := flag.Float64("noise", 0.25, "white noise amplitude")
	seed := flag.Int64("seed", 1, "noise seed")
	flag.Parse()

	if err := run(*length, *offset, *pulseLen, *noise, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "xcorrinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(length, offset, pulseLen int, noise float64, seed int64) error {
	if !core.IsPowerOfTwo(length) {
		return fmt.Errorf("frame length must be a power of two: %d", length)
	}
	if offset < 0 || offset+pulseLen > length {
		return fmt.Errorf("pulse [%d, %d) does not fit in frame of length %d",
			offset, offset+pulseLen, length)
	}

	pulse, err := signal.Sine(pulseLen, 2, 1)
	if err != nil {
		return err
	}

	frame, err := signal.WhiteNoise(length, noise, seed)
	if err != nil {
		return err
	}
	for i, v := range pulse {
		frame[offset+i] += v
	}

	template, err := pulse.PadWithZeros(length)
	if err != nil {
		return err
	}

	corr, err := conv.CrossCorrelation(frame, template)
	if err != nil {
		return err
	}

	idx, peak := conv.FindPeak(corr)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "frame length\t%d\n", length)
	fmt.Fprintf(w, "pulse offset\t%d\n", offset)
	fmt.Fprintf(w, "pulse length\t%d\n", pulseLen)
	fmt.Fprintf(w, "noise amplitude\t%.3f\n", noise)
	fmt.Fprintf(w, "peak index\t%d\n", idx)
	fmt.Fprintf(w, "peak lag\t%d\n", conv.LagFromIndex(idx, corr.Len()))
	fmt.Fprintf(w, "peak magnitude\t%.4f\n", peak)
	if idx == offset {
		fmt.Fprintf(w, "detected\tyes\n")
	} else {
		fmt.Fprintf(w, "detected\tno (expected %d)\n", offset)
	}
	return w.Flush()
}
