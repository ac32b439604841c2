// SPDX-License-Identifier: EPL-2.0

package click

import (
	"fmt"
)

// Method tells which stage of the classifier produced a Match.
type Method int

const (
	Unmatched Method = iota
	// ByZeroCrossings: a template had exactly the click's zero-crossing count.
	ByZeroCrossings
	// ByDifference: no count matched; the template with the smallest
	// waveform difference won.
	ByDifference
)

func (m Method) String() string {
	switch m {
	case ByZeroCrossings:
		return "zero-crossings"
	case ByDifference:
		return "difference"
	}
	return "unmatched"
}

// Match is the outcome of classifying one click.
type Match struct {
	Division Division
	Method   Method
	// Crossings is the click's zero-crossing count on the matching
	// comparison, set for ByZeroCrossings.
	Crossings int
	// Difference is the winning cumulative difference, set for ByDifference.
	Difference float64
}

// stage tries to classify a click and reports whether it decided.
type stage func(lib *Library, slice []float64) (Match, bool)

// Classifier maps click waveforms to divisions using a Library.
//
// Stages run in order and the first that decides wins: an exact
// zero-crossing match is cheap and usually decisive between clicks of
// different character, while the waveform difference always decides as long
// as the click is not silent.
type Classifier struct {
	lib    *Library
	stages []stage
}

func NewClassifier(lib *Library) *Classifier {
	return &Classifier{
		lib:    lib,
		stages: []stage{matchCrossings, matchDifference},
	}
}

// Classify returns the most likely division of slice.
func (c *Classifier) Classify(slice []float64) (Match, error) {
	if len(slice) == 0 {
		return Match{}, fmt.Errorf("%w: empty slice", ErrUnclassifiableClick)
	}
	if Peak(slice) == 0 {
		return Match{}, fmt.Errorf("%w: silent slice of %d samples", ErrUnclassifiableClick, len(slice))
	}

	for _, s := range c.stages {
		if m, ok := s(c.lib, slice); ok {
			return m, nil
		}
	}

	return Match{}, fmt.Errorf("%w: no template comparable with %d samples", ErrUnclassifiableClick, len(slice))
}

func matchCrossings(lib *Library, slice []float64) (Match, bool) {
	for _, t := range lib.templates {
		a, b := Equalize(slice, t.Samples)
		if za := ZeroCrossings(a); za == ZeroCrossings(b) {
			return Match{Division: t.Division, Method: ByZeroCrossings, Crossings: za}, true
		}
	}

	return Match{}, false
}

func matchDifference(lib *Library, slice []float64) (Match, bool) {
	best := Match{Method: Unmatched}

	for _, t := range lib.templates {
		diff, ok := Difference(slice, t.Samples)
		if !ok {
			continue
		}
		// strict less: ties keep the earlier template
		if best.Method == Unmatched || diff < best.Difference {
			best = Match{Division: t.Division, Method: ByDifference, Difference: diff}
		}
	}

	return best, best.Method != Unmatched
}

// Event is a classified click.
type Event struct {
	// Start is the click's first sample in the recording.
	Start    int
	Division Division
	Match    Match
}

// ClassifyAll classifies every segment in order. progress, when not nil, is
// called after each click with the number done and the total.
func (c *Classifier) ClassifyAll(segments []Segment, progress func(done, total int)) ([]Event, error) {
	events := make([]Event, 0, len(segments))

	for i, seg := range segments {
		m, err := c.Classify(seg.Samples)
		if err != nil {
			return nil, fmt.Errorf("click %d at sample %d: %w", i, seg.Start, err)
		}

		events = append(events, Event{Start: seg.Start, Division: m.Division, Match: m})

		if progress != nil {
			progress(i+1, len(segments))
		}
	}

	return events, nil
}
