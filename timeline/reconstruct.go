// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"io"
	"math"

	"github.com/ik5/clicktrack/click"
	"github.com/ik5/clicktrack/utils"
	"github.com/sirupsen/logrus"
)

// DefaultBPMTolerance is the smallest tempo change that is emitted when
// tempo events are reduced.
const DefaultBPMTolerance = 0.05

// Options control a reconstruction pass.
type Options struct {
	// ReduceTempoEvents drops tempo events within BPMTolerance of the last
	// emitted tempo.
	ReduceTempoEvents bool
	// ReduceSignatureEvents drops time signatures equal to the last emitted one.
	ReduceSignatureEvents bool
	BPMTolerance          float64
	// Resolution is the number of ticks per quarter note, Resolution if zero.
	Resolution int
	// Verbose logs every tempo and time-signature decision at info level
	// instead of debug.
	Verbose bool
	// Logger receives the decision log. Nil discards it.
	Logger logrus.FieldLogger
}

// DefaultOptions reduces both kinds of events with the default tolerance.
func DefaultOptions() Options {
	return Options{
		ReduceTempoEvents:     true,
		ReduceSignatureEvents: true,
		BPMTolerance:          DefaultBPMTolerance,
		Resolution:            Resolution,
	}
}

type reconstructor struct {
	rate  int
	opts  Options
	log   logrus.FieldLogger
	state State
	out   *Timeline
}

// Reconstruct turns classified clicks, ordered by start sample, into a
// musical time line. rate is the sample rate the clicks were detected at.
//
// Clicks are grouped into bars, each closed by the next bar-line click. A
// bar's numerator is its click count including the downbeat; its
// denominator is the division of its subdivision clicks, which must all
// agree. A final click that is not a bar line is taken as the closing bar
// line of the last bar.
//
// Any malformed bar fails the whole pass with a *BarError.
func Reconstruct(events []click.Event, rate int, opts Options) (*Timeline, error) {
	if len(events) == 0 {
		return nil, ErrNoClicks
	}

	r := newReconstructor(rate, opts)

	for _, ev := range events[:len(events)-1] {
		if err := r.step(ev); err != nil {
			return nil, err
		}
	}

	if err := r.finish(events[len(events)-1]); err != nil {
		return nil, err
	}

	r.out.Bars = r.state.Bars

	return r.out, nil
}

func newReconstructor(rate int, opts Options) *reconstructor {
	if opts.Resolution <= 0 {
		opts.Resolution = Resolution
	}

	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &reconstructor{
		rate: rate,
		opts: opts,
		log:  log,
		out:  &Timeline{Resolution: opts.Resolution},
	}
}

func (r *reconstructor) step(ev click.Event) error {
	if ev.Division == click.Bar && len(r.state.Bar) > 0 {
		if err := r.closeBar(ev); err != nil {
			return err
		}
	}

	if err := r.state.Accumulate(ev); err != nil {
		return r.barError(err)
	}

	return nil
}

// finish closes the last bar with the final click and marks that click.
func (r *reconstructor) finish(last click.Event) error {
	if err := r.closeBar(last); err != nil {
		return err
	}

	r.emit(Event{
		Kind: NoteKind,
		Note: Note{Pitch: DownbeatPitch, Duration: r.state.LastDenominator.Quarters()},
	}, r.state.Position())

	return nil
}

func (r *reconstructor) closeBar(closing click.Event) error {
	bar := r.state.Bar
	if len(bar) <= 1 {
		start := closing.Start
		if len(bar) == 1 {
			start = bar[0].Start
		}
		return r.barErrorAt(ErrDegenerateBar, start)
	}

	den := r.state.Denominator
	r.signature(Signature{Numerator: len(bar), Denominator: den})

	for i, c := range bar {
		next := closing
		if i+1 < len(bar) {
			next = bar[i+1]
		}

		pitch := BeatPitch
		if i == 0 {
			pitch = DownbeatPitch
		}
		r.emit(Event{Kind: NoteKind, Note: Note{Pitch: pitch, Duration: den.Quarters()}}, r.state.Position())

		if elapsed := next.Start - c.Start; elapsed > 0 {
			r.tempo(utils.Round(den.Quarters()*60*float64(r.rate)/float64(elapsed), 2))
		}

		r.state.Advance(den)
	}

	r.state.CloseBar()

	return nil
}

func (r *reconstructor) signature(sig Signature) {
	s := &r.state
	fields := logrus.Fields{
		"bar":       s.Bars + 1,
		"position":  s.Position(),
		"signature": sig.String(),
	}

	if r.opts.ReduceSignatureEvents && s.HasSignature && s.Signature == sig {
		r.decision(fields, "time signature unchanged")
		return
	}

	r.decision(fields, "time signature change")
	r.emit(Event{Kind: TimeSignatureKind, Signature: sig}, s.Position())
	s.Signature, s.HasSignature = sig, true
}

func (r *reconstructor) tempo(bpm float64) {
	s := &r.state
	fields := logrus.Fields{
		"bar":      s.Bars + 1,
		"position": s.Position(),
		"bpm":      bpm,
	}

	if r.opts.ReduceTempoEvents && s.HasTempo && math.Abs(bpm-s.Tempo) <= r.opts.BPMTolerance {
		r.decision(fields, "tempo unchanged")
		return
	}

	r.decision(fields, "tempo change")
	r.emit(Event{Kind: TempoKind, BPM: bpm}, s.Position())
	s.Tempo, s.HasTempo = bpm, true
}

func (r *reconstructor) emit(ev Event, position float64) {
	ev.Position = position
	ev.Tick = r.out.Ticks(position)
	r.out.Events = append(r.out.Events, ev)
}

func (r *reconstructor) decision(fields logrus.Fields, msg string) {
	entry := r.log.WithFields(fields)
	if r.opts.Verbose {
		entry.Info(msg)
		return
	}
	entry.Debug(msg)
}

func (r *reconstructor) barError(err error) error {
	start := 0
	if len(r.state.Bar) > 0 {
		start = r.state.Bar[0].Start
	}

	return r.barErrorAt(err, start)
}

func (r *reconstructor) barErrorAt(err error, start int) error {
	var seconds float64
	if r.rate > 0 {
		seconds = float64(start) / float64(r.rate)
	}

	return &BarError{Bar: r.state.Bars + 1, StartSample: start, Seconds: seconds, Err: err}
}
