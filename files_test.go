// SPDX-License-Identifier: EPL-2.0

package clicktrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/clicktrack/audio"
	"github.com/ik5/clicktrack/click"
	"github.com/ik5/clicktrack/formats/wav"
	"github.com/ik5/clicktrack/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"song.wav", "song.mid"},
		{"dir/take 2.click.aiff", "dir/take 2.click.mid"},
		{"noext", "noext.mid"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DefaultOutput(tt.in))
		})
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, ext := range []string{"wav", "WAV", ".aiff", "aif", "mp3", "ogg"} {
		_, ok := reg.Get(ext)
		assert.True(t, ok, ext)
	}

	_, err := reg.Lookup("track.flac")
	assert.ErrorIs(t, err, audio.ErrUnsupportedFormat)
}

func float64s(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, s := range in {
		out[i] = float64(s)
	}
	return out
}

// writeClickFiles writes the reference clicks into dir and returns their paths.
func writeClickFiles(t *testing.T, dir string) map[click.Division]string {
	t.Helper()

	paths := make(map[click.Division]string)
	for _, d := range audiotest.Divisions {
		path := filepath.Join(dir, "click-"+clickFileName(click.Division(d))+".wav")
		require.NoError(t, wav.WriteFile(path, testRate, float64s(audiotest.Clicks[d].Samples(testRate))))
		paths[click.Division(d)] = path
	}

	return paths
}

func clickFileName(d click.Division) string {
	switch d {
	case click.Bar:
		return "bar"
	case click.Quarter:
		return "4th"
	case click.Eighth:
		return "8th"
	case click.Sixteenth:
		return "16th"
	}
	return "32nd"
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	templates := writeClickFiles(t, dir)

	track := audiotest.Pattern(testRate, 2000, audiotest.Spacing(testRate, 100, 4), 1, 4, 4, 4, 1, 4, 4, 4, 1)
	input := filepath.Join(dir, "song.wav")
	require.NoError(t, wav.WriteFile(input, testRate, track.Float64()))

	res, out, err := ConvertFile(Files{Input: input, Templates: templates}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "song.mid"), out)
	assert.Equal(t, 2, res.Timeline.Bars)
	require.Len(t, res.Timeline.TimeSignatures(), 1)
	assert.Equal(t, 4, res.Timeline.TimeSignatures()[0].Signature.Numerator)
	require.Len(t, res.Timeline.Tempos(), 1)
	assert.InDelta(t, 100.0, res.Timeline.Tempos()[0].BPM, 0.01)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "MThd", string(data[:4]))
}

func TestConvertFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	templates := writeClickFiles(t, dir)

	t.Run("unsupported input", func(t *testing.T) {
		t.Parallel()

		_, _, err := ConvertFile(Files{Input: filepath.Join(dir, "song.flac"), Templates: templates}, DefaultConfig())
		assert.ErrorIs(t, err, audio.ErrUnsupportedFormat)
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, _, err := ConvertFile(Files{Input: filepath.Join(dir, "missing.wav"), Templates: templates}, DefaultConfig())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown division", func(t *testing.T) {
		t.Parallel()

		bad := map[click.Division]string{click.Bar: templates[click.Bar], 3: templates[click.Quarter]}
		_, _, err := ConvertFile(Files{Input: templates[click.Bar], Templates: bad}, DefaultConfig())
		assert.ErrorIs(t, err, click.ErrUnknownDivision)
	})

	t.Run("missing bar click", func(t *testing.T) {
		t.Parallel()

		track := audiotest.Pattern(testRate, 1000, 20000, 1, 4, 4, 1)
		input := filepath.Join(dir, "nobar.wav")
		require.NoError(t, wav.WriteFile(input, testRate, track.Float64()))

		only := map[click.Division]string{click.Quarter: templates[click.Quarter]}
		_, _, err := ConvertFile(Files{Input: input, Templates: only}, DefaultConfig())
		assert.ErrorIs(t, err, click.ErrMissingBarTemplate)
	})
}
