// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"github.com/ik5/clicktrack/click"
)

const testRate = 44100

// spaced lays out divisions every spacing samples starting at sample 0.
func spaced(spacing int, divisions ...click.Division) []click.Event {
	out := make([]click.Event, len(divisions))
	for i, d := range divisions {
		out[i] = click.Event{Start: i * spacing, Division: d}
	}

	return out
}

// bars repeats one bar-line and n clicks of division d count times.
func bars(count, n int, d click.Division) []click.Division {
	var out []click.Division
	for range count {
		out = append(out, click.Bar)
		for range n {
			out = append(out, d)
		}
	}

	return out
}
