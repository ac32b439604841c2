// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Buffer is a mono recording held fully in memory.
type Buffer struct {
	Samples    []float64
	SampleRate int
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.Samples) }

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	return b.Offset(len(b.Samples))
}

// Offset converts a sample index into a time offset from the start of the buffer.
func (b *Buffer) Offset(sample int) time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(sample) / float64(b.SampleRate) * float64(time.Second))
}

// SamplesIn converts a duration into a sample count at the buffer's rate.
func (b *Buffer) SamplesIn(d time.Duration) int {
	return SamplesIn(d, b.SampleRate)
}

// SamplesIn converts a duration into a rounded sample count at rate.
func SamplesIn(d time.Duration, rate int) int {
	return int(d.Seconds()*float64(rate) + 0.5)
}

// ReadAll drains src into a single interleaved slice.
func ReadAll(src Source) ([]float32, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	size -= size % max(src.Channels(), 1)
	if size == 0 {
		size = max(src.Channels(), 1)
	}

	out := make([]float32, 0, size*4)
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

// Load reads src to the end, downmixes it to mono and normalizes it to unit
// L2 norm. rate is the sample rate fixed for the run; a source at any other
// rate fails with ErrSampleRateMismatch.
func Load(src Source, rate int) (*Buffer, error) {
	if src.SampleRate() != rate {
		return nil, fmt.Errorf("%w: source is %d Hz, expected %d Hz", ErrSampleRateMismatch, src.SampleRate(), rate)
	}

	raw, err := ReadAll(NewMonoMixer(src))
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	samples := make([]float64, len(raw))
	for i, s := range raw {
		samples[i] = float64(s)
	}

	samples, err = Normalize(samples)
	if err != nil {
		return nil, err
	}

	return &Buffer{Samples: samples, SampleRate: rate}, nil
}

// Normalize returns a copy of samples scaled to unit L2 norm.
func Normalize(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrEmptyOrSilentAudio)
	}

	norm := floats.Norm(samples, 2)
	if norm == 0 {
		return nil, fmt.Errorf("%w: %d samples, all zero", ErrEmptyOrSilentAudio, len(samples))
	}

	out := make([]float64, len(samples))
	floats.ScaleTo(out, 1/norm, samples)

	return out, nil
}
