// SPDX-License-Identifier: EPL-2.0

package clicktrack

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/clicktrack/audio"
	"github.com/ik5/clicktrack/click"
	"github.com/ik5/clicktrack/timeline"
	"github.com/sirupsen/logrus"
)

// Config controls one conversion. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// MinSilence is the silence that ends a click.
	MinSilence time.Duration
	// BPMTolerance is the smallest tempo change emitted when
	// ReduceTempoEvents is set.
	BPMTolerance float64

	ReduceTempoEvents     bool
	ReduceSignatureEvents bool

	// Resolution is the number of MIDI ticks per quarter note.
	Resolution int

	// Verbose logs every tempo and time-signature decision at info level.
	Verbose bool
	// Logger receives the conversion log. Nil discards it.
	Logger *logrus.Logger
	// Progress, when set, is called after each click is classified.
	Progress func(done, total int)
}

func DefaultConfig() Config {
	return Config{
		MinSilence:            click.DefaultMinSilence,
		BPMTolerance:          timeline.DefaultBPMTolerance,
		ReduceTempoEvents:     true,
		ReduceSignatureEvents: true,
		Resolution:            timeline.Resolution,
	}
}

// Maximize returns c with event reduction turned off, so every click gets a
// tempo event and every bar a time signature.
func (c Config) Maximize() Config {
	c.ReduceTempoEvents = false
	c.ReduceSignatureEvents = false
	return c
}

func (c Config) validate() error {
	switch {
	case c.MinSilence < 0:
		return fmt.Errorf("%w: negative minimum silence %s", ErrInvalidConfig, c.MinSilence)
	case c.BPMTolerance < 0:
		return fmt.Errorf("%w: negative BPM tolerance %g", ErrInvalidConfig, c.BPMTolerance)
	case c.Resolution <= 0:
		return fmt.Errorf("%w: resolution %d", ErrInvalidConfig, c.Resolution)
	}

	return nil
}

func (c Config) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// TemplateSource is the recording of one division's reference click.
type TemplateSource struct {
	Division click.Division
	// Name identifies the recording in errors and logs.
	Name   string
	Source audio.Source
}

// Result is the outcome of a conversion.
type Result struct {
	// SampleRate is the rate of the click track, shared by every template.
	SampleRate int
	Clicks     []click.Event
	Timeline   *timeline.Timeline
}

// Convert detects the clicks of track, classifies them against templates
// and reconstructs the musical time line. The click track's sample rate is
// the rate of the run; every template must match it.
func Convert(track audio.Source, templates []TemplateSource, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log := cfg.logger()
	rate := track.SampleRate()

	buf, err := audio.Load(track, rate)
	if err != nil {
		return nil, fmt.Errorf("click track: %w", err)
	}

	log.WithFields(logrus.Fields{
		"samples":  buf.Len(),
		"rate":     rate,
		"duration": buf.Duration(),
	}).Debug("loaded click track")

	lib, err := loadLibrary(templates, rate, log)
	if err != nil {
		return nil, err
	}

	segments := click.NewSegmenter(rate, cfg.MinSilence).Segment(buf.Samples)
	log.WithField("clicks", len(segments)).Info("detected clicks")

	events, err := click.NewClassifier(lib).ClassifyAll(segments, cfg.Progress)
	if err != nil {
		return nil, err
	}

	methods := make(map[string]int)
	for _, ev := range events {
		methods[ev.Match.Method.String()]++
	}
	log.WithFields(logrus.Fields{
		"by_zero_crossings": methods[click.ByZeroCrossings.String()],
		"by_difference":     methods[click.ByDifference.String()],
	}).Debug("classified clicks")

	tl, err := timeline.Reconstruct(events, rate, timeline.Options{
		ReduceTempoEvents:     cfg.ReduceTempoEvents,
		ReduceSignatureEvents: cfg.ReduceSignatureEvents,
		BPMTolerance:          cfg.BPMTolerance,
		Resolution:            cfg.Resolution,
		Verbose:               cfg.Verbose,
		Logger:                log,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"bars":             tl.Bars,
		"tempo_events":     len(tl.Tempos()),
		"signature_events": len(tl.TimeSignatures()),
	}).Info("reconstructed timeline")

	return &Result{SampleRate: rate, Clicks: events, Timeline: tl}, nil
}

func loadLibrary(sources []TemplateSource, rate int, log *logrus.Logger) (*click.Library, error) {
	templates := make([]click.Template, 0, len(sources))

	for _, ts := range sources {
		t, err := click.LoadTemplate(ts.Division, ts.Name, ts.Source, rate)
		if err != nil {
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"division":  t.Division.String(),
			"name":      t.Name,
			"samples":   len(t.Samples),
			"crossings": click.ZeroCrossings(t.Samples),
		}).Debug("loaded reference click")

		templates = append(templates, t)
	}

	return click.NewLibrary(rate, templates...)
}
