// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"time"
)

// Click describes a synthetic metronome click: a cosine burst with a linear
// decay. The burst starts at full amplitude and never reaches zero, so every
// sample of it is audible.
type Click struct {
	Frequency float64
	Length    time.Duration
	Amplitude float64
}

// Clicks are acoustically distinct clicks keyed by division (1, 4, 8, 16, 32).
// Higher divisions have strictly more zero crossings per sample, so none of
// them collides with another, even when compared on a truncated prefix.
var Clicks = map[int]Click{
	1:  {Frequency: 1000, Length: 6 * time.Millisecond, Amplitude: 0.5},
	4:  {Frequency: 2000, Length: 5 * time.Millisecond, Amplitude: 0.5},
	8:  {Frequency: 3000, Length: 4 * time.Millisecond, Amplitude: 0.5},
	16: {Frequency: 6000, Length: 3 * time.Millisecond, Amplitude: 0.5},
	32: {Frequency: 8000, Length: 3 * time.Millisecond, Amplitude: 0.5},
}

// Divisions lists the keys of Clicks in ascending order.
var Divisions = []int{1, 4, 8, 16, 32}

// Samples renders the click at rate.
func (c Click) Samples(rate int) []float32 {
	n := int(c.Length.Seconds()*float64(rate) + 0.5)
	out := make([]float32, n)

	for i := range out {
		envelope := 1 - float64(i)/float64(n)
		phase := 2 * math.Pi * c.Frequency * float64(i) / float64(rate)
		out[i] = float32(c.Amplitude * envelope * math.Cos(phase))
	}

	return out
}

// Track assembles a mono recording by mixing waveforms at exact offsets.
type Track struct {
	rate    int
	samples []float32
}

func NewTrack(rate int) *Track {
	return &Track{rate: rate}
}

// Place mixes wave into the track starting at sample offset at, growing the
// track as needed.
func (t *Track) Place(at int, wave []float32) *Track {
	if end := at + len(wave); end > len(t.samples) {
		t.samples = append(t.samples, make([]float32, end-len(t.samples))...)
	}
	for i, s := range wave {
		t.samples[at+i] += s
	}

	return t
}

// Pad appends n samples of silence.
func (t *Track) Pad(n int) *Track {
	t.samples = append(t.samples, make([]float32, n)...)
	return t
}

func (t *Track) Rate() int          { return t.rate }
func (t *Track) Samples() []float32 { return t.samples }

// Float64 returns a float64 copy of the samples.
func (t *Track) Float64() []float64 {
	out := make([]float64, len(t.samples))
	for i, s := range t.samples {
		out[i] = float64(s)
	}

	return out
}

// Source plays the track back on the given number of channels.
func (t *Track) Source(channels int) *MockSource {
	return NewSliceSource(t.rate, channels, t.samples)
}

// Pattern builds a track playing one Clicks entry per division in divisions,
// the first at offset lead and each following one spacing samples later.
// A tail of silence one spacing long ends the track.
func Pattern(rate, lead, spacing int, divisions ...int) *Track {
	t := NewTrack(rate)
	for i, d := range divisions {
		t.Place(lead+i*spacing, Clicks[d].Samples(rate))
	}

	return t.Pad(max(0, lead+len(divisions)*spacing-len(t.samples)))
}

// Spacing returns the number of samples between clicks of the given
// division at bpm quarter notes per minute.
func Spacing(rate int, bpm float64, division int) int {
	return int(math.Round(4 / float64(division) * 60 * float64(rate) / bpm))
}
