// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"errors"
	"fmt"
)

var (
	ErrMixedDivisionsInBar = errors.New("bar mixes click divisions")
	ErrDegenerateBar       = errors.New("bar has no subdivision clicks")
	ErrNoClicks            = errors.New("no clicks to reconstruct")
)

// BarError locates a malformed bar in the recording.
type BarError struct {
	// Bar is the 1-based index of the offending bar.
	Bar int
	// StartSample is the offset of the bar's first click.
	StartSample int
	// Seconds is StartSample expressed in time at the run's sample rate.
	Seconds float64
	Err     error
}

func (e *BarError) Error() string {
	msg := fmt.Sprintf("bar %d at %.3fs (sample %d): %v", e.Bar, e.Seconds, e.StartSample, e.Err)
	if errors.Is(e.Err, ErrMixedDivisionsInBar) {
		msg += "; check that the recording was rendered at the sample rate of the reference clicks"
	}

	return msg
}

func (e *BarError) Unwrap() error { return e.Err }
