// SPDX-License-Identifier: EPL-2.0

package click

import (
	"math"
	"time"

	"github.com/ik5/clicktrack/audio"
)

// Threshold is the magnitude a normalized sample must exceed to be audible.
const Threshold = 1e-8

// DefaultMinSilence is the silence that ends a click unless configured
// otherwise. It is short enough to separate thirty-second clicks at fast
// tempos and long enough to bridge zero crossings inside one click.
const DefaultMinSilence = time.Millisecond

// Segment is one detected click: its first audible sample and the samples
// up to where the closing silence began. Samples aliases the source buffer.
type Segment struct {
	Start   int
	Samples []float64
}

// End returns the index one past the last sample of the click.
func (s Segment) End() int { return s.Start + len(s.Samples) }

type detectorState int

const (
	silent detectorState = iota
	sounding
)

// Segmenter splits a recording into clicks with a two-state silence detector.
type Segmenter struct {
	// Threshold is the audibility limit, Threshold by default.
	Threshold float64
	// Gap is the number of consecutive inaudible samples that closes a click.
	Gap int
}

// NewSegmenter returns a Segmenter closing clicks after minSilence at rate.
// The gap is never shorter than one sample.
func NewSegmenter(rate int, minSilence time.Duration) *Segmenter {
	return &Segmenter{
		Threshold: Threshold,
		Gap:       max(1, audio.SamplesIn(minSilence, rate)),
	}
}

// Segment scans samples once, in order, and returns the detected clicks.
//
// A click opens on the first audible sample and closes once Gap inaudible
// samples follow in a row; the click ends where that run began. A run of
// inaudible samples reaching the end of the buffer also closes the click,
// but a click still audible at the last sample is dropped.
func (s *Segmenter) Segment(samples []float64) []Segment {
	var (
		out   []Segment
		state = silent
		start int
		quiet int // length of the current inaudible run
	)

	closeAt := func(end int) {
		out = append(out, Segment{Start: start, Samples: samples[start:end:end]})
		state = silent
		quiet = 0
	}

	for i, x := range samples {
		audible := math.Abs(x) > s.Threshold

		switch state {
		case silent:
			if audible {
				state = sounding
				start = i
			}
		case sounding:
			if audible {
				quiet = 0
				continue
			}
			quiet++
			if quiet >= s.Gap {
				closeAt(i - quiet + 1)
			}
		}
	}

	if state == sounding && quiet > 0 {
		closeAt(len(samples) - quiet)
	}

	return out
}
