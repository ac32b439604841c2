// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
	"math"

	"github.com/ik5/clicktrack/click"
)

// Resolution is the default number of ticks per quarter note.
const Resolution = 480

// Note marker pitches.
const (
	DownbeatPitch uint8 = 12
	BeatPitch     uint8 = 13
)

// Kind tells which payload of an Event is set.
type Kind int

const (
	NoteKind Kind = iota
	TempoKind
	TimeSignatureKind
)

func (k Kind) String() string {
	switch k {
	case NoteKind:
		return "note"
	case TempoKind:
		return "tempo"
	case TimeSignatureKind:
		return "time-signature"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Note is a marker for one click.
type Note struct {
	Pitch uint8
	// Duration in quarter notes.
	Duration float64
}

// Signature is a time signature. The denominator is a click division, so
// it is always a power of two.
type Signature struct {
	Numerator   int
	Denominator click.Division
}

func (s Signature) String() string {
	return fmt.Sprintf("%d/%d", s.Numerator, int(s.Denominator))
}

// Event is one entry of a Timeline.
type Event struct {
	Kind Kind
	// Position is the musical time in quarter notes from the start.
	Position float64
	// Tick is Position at the timeline's resolution.
	Tick int

	Note      Note
	BPM       float64
	Signature Signature
}

func (e Event) String() string {
	switch e.Kind {
	case NoteKind:
		return fmt.Sprintf("%d note %d (%g)", e.Tick, e.Note.Pitch, e.Note.Duration)
	case TempoKind:
		return fmt.Sprintf("%d tempo %.2f", e.Tick, e.BPM)
	case TimeSignatureKind:
		return fmt.Sprintf("%d signature %s", e.Tick, e.Signature)
	}
	return fmt.Sprintf("%d %s", e.Tick, e.Kind)
}

// Timeline is the reconstructed musical time line, ordered by position.
type Timeline struct {
	Resolution int
	// Bars is the number of bars closed.
	Bars   int
	Events []Event
}

// Ticks converts a position in quarter notes to ticks.
func (t *Timeline) Ticks(quarters float64) int {
	return int(math.Round(quarters * float64(t.Resolution)))
}

func (t *Timeline) filter(k Kind) []Event {
	var out []Event
	for _, e := range t.Events {
		if e.Kind == k {
			out = append(out, e)
		}
	}

	return out
}

func (t *Timeline) Notes() []Event          { return t.filter(NoteKind) }
func (t *Timeline) Tempos() []Event         { return t.filter(TempoKind) }
func (t *Timeline) TimeSignatures() []Event { return t.filter(TimeSignatureKind) }
