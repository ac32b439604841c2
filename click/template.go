// SPDX-License-Identifier: EPL-2.0

package click

import (
	"fmt"

	"github.com/ik5/clicktrack/audio"
)

// Template is the reference recording of one division's click, normalized
// the same way as the click track.
type Template struct {
	Division Division
	// Name identifies the recording in errors, usually its path.
	Name    string
	Samples []float64
}

// LoadTemplate normalizes src into the reference click for d. src must be
// at the run's sample rate.
func LoadTemplate(d Division, name string, src audio.Source, rate int) (Template, error) {
	if !d.Valid() {
		return Template{}, fmt.Errorf("%w: %d", ErrUnknownDivision, int(d))
	}

	buf, err := audio.Load(src, rate)
	if err != nil {
		return Template{}, fmt.Errorf("%s click %s: %w", d, name, err)
	}

	return Template{Division: d, Name: name, Samples: buf.Samples}, nil
}

// Library is the validated set of reference clicks for one run.
type Library struct {
	rate      int
	templates []Template
}

// NewLibrary checks templates and returns them as a Library. Each division
// may appear once, the bar line must be present, and no two templates may
// share a zero-crossing count.
func NewLibrary(rate int, templates ...Template) (*Library, error) {
	seen := make(map[Division]bool, len(templates))
	for _, t := range templates {
		if !t.Division.Valid() {
			return nil, fmt.Errorf("%w: %d (%s)", ErrUnknownDivision, int(t.Division), t.Name)
		}
		if seen[t.Division] {
			return nil, fmt.Errorf("%w: %s (%s)", ErrDuplicateDivision, t.Division, t.Name)
		}
		if len(t.Samples) == 0 {
			return nil, fmt.Errorf("%s click %s: %w", t.Division, t.Name, audio.ErrEmptyOrSilentAudio)
		}
		seen[t.Division] = true
	}

	if !seen[Bar] {
		return nil, ErrMissingBarTemplate
	}

	crossings := make([]int, len(templates))
	for i, t := range templates {
		crossings[i] = ZeroCrossings(t.Samples)
	}
	for i := range templates {
		for j := i + 1; j < len(templates); j++ {
			if crossings[i] == crossings[j] {
				return nil, &AmbiguousTemplatesError{A: templates[i], B: templates[j], Crossings: crossings[i]}
			}
		}
	}

	return &Library{rate: rate, templates: append([]Template(nil), templates...)}, nil
}

func (l *Library) SampleRate() int { return l.rate }
func (l *Library) Len() int        { return len(l.templates) }

// Templates returns the templates in classification order.
func (l *Library) Templates() []Template {
	return append([]Template(nil), l.templates...)
}

// Template returns the reference click for d.
func (l *Library) Template(d Division) (Template, bool) {
	for _, t := range l.templates {
		if t.Division == d {
			return t, true
		}
	}

	return Template{}, false
}
