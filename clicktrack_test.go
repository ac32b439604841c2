// SPDX-License-Identifier: EPL-2.0

package clicktrack

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/clicktrack/audio"
	"github.com/ik5/clicktrack/click"
	"github.com/ik5/clicktrack/internal/audiotest"
	"github.com/ik5/clicktrack/timeline"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 44100

func templateSources(rate int) []TemplateSource {
	out := make([]TemplateSource, 0, len(audiotest.Divisions))
	for _, d := range audiotest.Divisions {
		out = append(out, TemplateSource{
			Division: click.Division(d),
			Name:     click.Division(d).String(),
			Source:   audiotest.NewSliceSource(rate, 1, audiotest.Clicks[d].Samples(rate)),
		})
	}

	return out
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, time.Millisecond, cfg.MinSilence)
	assert.InDelta(t, 0.05, cfg.BPMTolerance, 1e-12)
	assert.True(t, cfg.ReduceTempoEvents)
	assert.True(t, cfg.ReduceSignatureEvents)
	assert.Equal(t, 480, cfg.Resolution)

	full := cfg.Maximize()
	assert.False(t, full.ReduceTempoEvents)
	assert.False(t, full.ReduceSignatureEvents)
	assert.True(t, cfg.ReduceTempoEvents, "Maximize returns a copy")
}

func TestConvert_Steady44(t *testing.T) {
	t.Parallel()

	track := audiotest.Pattern(testRate, 1000, audiotest.Spacing(testRate, 120, 4), 1, 4, 4, 4, 4)

	var done, total int
	cfg := DefaultConfig()
	cfg.Progress = func(d, n int) { done, total = d, n }

	res, err := Convert(track.Source(2), templateSources(testRate), cfg)
	require.NoError(t, err)

	assert.Equal(t, testRate, res.SampleRate)
	assert.Equal(t, 5, done)
	assert.Equal(t, 5, total)

	divisions := make([]click.Division, len(res.Clicks))
	for i, c := range res.Clicks {
		divisions[i] = c.Division
	}
	assert.Equal(t, []click.Division{click.Bar, click.Quarter, click.Quarter, click.Quarter, click.Quarter}, divisions)

	tl := res.Timeline
	assert.Equal(t, 1, tl.Bars)

	require.Len(t, tl.TimeSignatures(), 1)
	assert.Equal(t, timeline.Signature{Numerator: 4, Denominator: click.Quarter}, tl.TimeSignatures()[0].Signature)

	require.Len(t, tl.Tempos(), 1)
	assert.InDelta(t, 120.0, tl.Tempos()[0].BPM, 1e-9)
	assert.Len(t, tl.Notes(), 5)
}

func TestConvert_Maximize(t *testing.T) {
	t.Parallel()

	spacing := audiotest.Spacing(testRate, 120, 8)
	track := audiotest.Pattern(testRate, 500, spacing, 1, 8, 8, 8, 1, 8, 8, 8, 1)

	res, err := Convert(track.Source(1), templateSources(testRate), DefaultConfig().Maximize())
	require.NoError(t, err)

	tl := res.Timeline
	assert.Equal(t, 2, tl.Bars)
	assert.Len(t, tl.TimeSignatures(), 2)
	assert.Len(t, tl.Tempos(), 8)
	assert.Equal(t, 4*240, tl.TimeSignatures()[1].Tick)
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	quarter := audiotest.Spacing(testRate, 120, 4)

	t.Run("template at another rate", func(t *testing.T) {
		t.Parallel()

		track := audiotest.Pattern(testRate, 1000, quarter, 1, 4, 4, 1)
		_, err := Convert(track.Source(1), templateSources(48000), DefaultConfig())
		assert.ErrorIs(t, err, audio.ErrSampleRateMismatch)
	})

	t.Run("silent track", func(t *testing.T) {
		t.Parallel()

		_, err := Convert(audiotest.NewSilentSource(testRate, 1, 1000), templateSources(testRate), DefaultConfig())
		assert.ErrorIs(t, err, audio.ErrEmptyOrSilentAudio)
	})

	t.Run("ambiguous templates", func(t *testing.T) {
		t.Parallel()

		templates := templateSources(testRate)
		templates[2].Source = audiotest.NewSliceSource(testRate, 1, audiotest.Clicks[4].Samples(testRate))

		track := audiotest.Pattern(testRate, 1000, quarter, 1, 4, 4, 1)
		_, err := Convert(track.Source(1), templates, DefaultConfig())
		assert.ErrorIs(t, err, click.ErrAmbiguousTemplates)
	})

	t.Run("mixed divisions", func(t *testing.T) {
		t.Parallel()

		eighth := audiotest.Spacing(testRate, 120, 8)
		track := audiotest.Pattern(testRate, 1000, eighth, 1, 8, 8, 4, 1)

		res, err := Convert(track.Source(1), templateSources(testRate), DefaultConfig())
		require.ErrorIs(t, err, timeline.ErrMixedDivisionsInBar)
		assert.Nil(t, res)

		var be *timeline.BarError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, 1000, be.StartSample)
		assert.Contains(t, err.Error(), "0.023s")
	})

	t.Run("degenerate bar", func(t *testing.T) {
		t.Parallel()

		track := audiotest.Pattern(testRate, 1000, quarter, 1, 1, 4, 4, 1)
		_, err := Convert(track.Source(1), templateSources(testRate), DefaultConfig())
		assert.ErrorIs(t, err, timeline.ErrDegenerateBar)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		track := audiotest.Pattern(testRate, 1000, quarter, 1, 4, 4, 1)

		cfg := DefaultConfig()
		cfg.BPMTolerance = -1
		_, err := Convert(track.Source(1), templateSources(testRate), cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = Convert(track.Source(1), templateSources(testRate), Config{})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConvert_Logging(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	cfg := DefaultConfig()
	cfg.Logger = logger

	track := audiotest.Pattern(testRate, 1000, audiotest.Spacing(testRate, 90, 4), 1, 4, 4, 1)
	_, err := Convert(track.Source(1), templateSources(testRate), cfg)
	require.NoError(t, err)

	var detected *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "detected clicks" {
			detected = e
		}
	}
	require.NotNil(t, detected)
	assert.Equal(t, 4, detected.Data["clicks"])

	last := hook.LastEntry()
	assert.Equal(t, "reconstructed timeline", last.Message)
	assert.Equal(t, 1, last.Data["bars"])
}
