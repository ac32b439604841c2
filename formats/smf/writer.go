// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ik5/clicktrack/timeline"
	"gitlab.com/gomidi/midi/v2"
	gosmf "gitlab.com/gomidi/midi/v2/smf"
)

const (
	// BeatTrackName names the track holding the click notes.
	BeatTrackName = "BEAT"

	channel  uint8 = 0
	velocity uint8 = 127

	clocksPerClick        uint8 = 24
	thirtySecondsPerQuart uint8 = 8
)

// timed is a message at an absolute tick. Lower rank sorts first within a
// tick, so a note ends before the next one starts.
type timed struct {
	tick int
	rank int
	msg  []byte
}

// Encode builds the MIDI file for tl.
func Encode(tl *timeline.Timeline) (*gosmf.SMF, error) {
	if tl == nil || len(tl.Events) == 0 {
		return nil, ErrEmptyTimeline
	}
	if tl.Resolution <= 0 || tl.Resolution > 0x7fff {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolution, tl.Resolution)
	}

	var conductor, beat []timed

	for _, e := range tl.Events {
		switch e.Kind {
		case timeline.TempoKind:
			conductor = append(conductor, timed{tick: e.Tick, rank: 1, msg: gosmf.MetaTempo(e.BPM)})
		case timeline.TimeSignatureKind:
			sig := gosmf.MetaTimeSig(uint8(e.Signature.Numerator), uint8(e.Signature.Denominator),
				clocksPerClick, thirtySecondsPerQuart)
			conductor = append(conductor, timed{tick: e.Tick, rank: 0, msg: sig})
		case timeline.NoteKind:
			end := e.Tick + tl.Ticks(e.Note.Duration)
			beat = append(beat,
				timed{tick: e.Tick, rank: 1, msg: midi.NoteOn(channel, e.Note.Pitch, velocity)},
				timed{tick: end, rank: 0, msg: midi.NoteOff(channel, e.Note.Pitch)},
			)
		}
	}

	s := gosmf.New()
	s.TimeFormat = gosmf.MetricTicks(uint16(tl.Resolution))

	for _, tr := range []gosmf.Track{
		track("", conductor),
		track(BeatTrackName, beat),
	} {
		if err := s.Add(tr); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return s, nil
}

// track orders msgs by tick and converts them to delta times.
func track(name string, msgs []timed) gosmf.Track {
	slices.SortStableFunc(msgs, func(a, b timed) int {
		if c := cmp.Compare(a.tick, b.tick); c != 0 {
			return c
		}
		return cmp.Compare(a.rank, b.rank)
	})

	var tr gosmf.Track
	if name != "" {
		tr.Add(0, gosmf.MetaTrackSequenceName(name))
	}

	last := 0
	for _, m := range msgs {
		tr.Add(uint32(m.tick-last), m.msg)
		last = m.tick
	}
	tr.Close(0)

	return tr
}

// Write encodes tl and writes it to w.
func Write(w io.Writer, tl *timeline.Timeline) error {
	s, err := Encode(tl)
	if err != nil {
		return err
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile creates path and writes tl into it.
func WriteFile(path string, tl *timeline.Timeline) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Write(f, tl); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
