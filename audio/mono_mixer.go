// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes an interleaved multi-channel Source by averaging the
// channels of every frame. Mono sources pass through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
	// samples of an incomplete frame carried over from the previous read
	carry int
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 0, 8192),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples writes at most len(dst) mono frames into dst.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		grown := make([]float32, need)
		copy(grown, m.tmp[:m.carry])
		m.tmp = grown
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp[m.carry:need])
	n += m.carry

	frames := n / channels
	scale := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, s := range m.tmp[f*channels : (f+1)*channels] {
			sum += s
		}
		dst[f] = sum * scale
	}

	// Decoders may split a frame across reads; keep the tail for next time.
	m.carry = copy(m.tmp, m.tmp[frames*channels:n])

	return frames, err
}
