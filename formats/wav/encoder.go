// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/clicktrack/utils"
)

// Encode writes samples in [-1,1] as a mono 16-bit PCM WAV at sampleRate.
// The RIFF sizes are patched in on close, so w must be seekable.
func Encode(w io.WriteSeeker, sampleRate int, samples []float64) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(utils.FloatToInt16(s))
	}

	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile creates path and encodes samples into it.
func WriteFile(path string, sampleRate int, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, sampleRate, samples); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
