// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"github.com/ik5/clicktrack/click"
)

// State is the accumulator threaded through one reconstruction pass. It is
// only ever changed by Accumulate, Advance and CloseBar, one click at a time.
type State struct {
	// Bar holds the clicks of the bar in progress, its downbeat first.
	Bar []click.Event
	// Denominator is fixed by the first subdivision click of the bar in
	// progress, zero until then.
	Denominator click.Division
	// Bars counts the closed bars.
	Bars int
	// LastDenominator is the denominator of the most recently closed bar.
	LastDenominator click.Division

	// Ordinal is the number of clicks placed so far, the nominal position
	// of the next one.
	Ordinal int
	// Slip is the accumulated drift correction in quarter notes.
	Slip float64

	Tempo        float64
	HasTempo     bool
	Signature    Signature
	HasSignature bool
}

// Position is where the next click goes, in quarter notes.
func (s *State) Position() float64 {
	return float64(s.Ordinal) - s.Slip
}

// Accumulate appends a click that does not close the bar in progress.
func (s *State) Accumulate(ev click.Event) error {
	if ev.Division != click.Bar {
		switch {
		case s.Denominator == 0:
			s.Denominator = ev.Division
		case s.Denominator != ev.Division:
			return ErrMixedDivisionsInBar
		}
	}

	s.Bar = append(s.Bar, ev)

	return nil
}

// Advance moves past one placed click of a bar with denominator den.
// Clicks shorter than a quarter note occupy less than their nominal unit,
// and the difference accumulates in Slip.
func (s *State) Advance(den click.Division) {
	s.Ordinal++
	if den > click.Quarter {
		s.Slip += 1 - den.Quarters()
	}
}

// CloseBar resets the bar in progress.
func (s *State) CloseBar() {
	s.LastDenominator = s.Denominator
	s.Bars++
	s.Bar = nil
	s.Denominator = 0
}
