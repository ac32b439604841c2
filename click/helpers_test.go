// SPDX-License-Identifier: EPL-2.0

package click

import (
	"fmt"
	"testing"

	"github.com/ik5/clicktrack/audio"
	"github.com/ik5/clicktrack/internal/audiotest"
	"github.com/stretchr/testify/require"
)

const testRate = 44100

func testTemplates(t *testing.T) []Template {
	t.Helper()

	out := make([]Template, 0, len(audiotest.Divisions))
	for _, d := range audiotest.Divisions {
		wave := audiotest.Clicks[d].Samples(testRate)
		tmpl, err := LoadTemplate(Division(d), fmt.Sprintf("synthetic-%d", d), audiotest.NewSliceSource(testRate, 1, wave), testRate)
		require.NoError(t, err)
		out = append(out, tmpl)
	}

	return out
}

func testLibrary(t *testing.T) *Library {
	t.Helper()

	lib, err := NewLibrary(testRate, testTemplates(t)...)
	require.NoError(t, err)

	return lib
}

func loadTrack(t *testing.T, track *audiotest.Track) *audio.Buffer {
	t.Helper()

	buf, err := audio.Load(track.Source(1), track.Rate())
	require.NoError(t, err)

	return buf
}
