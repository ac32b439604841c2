// SPDX-License-Identifier: EPL-2.0

// Package smf writes a timeline.Timeline as a Standard MIDI File.
//
// The file is format 1 at the timeline's resolution. Track 0 is the
// conductor track with the tempo and time-signature events; track 1, named
// BEAT, holds one note per click on channel 0:
//
//	tl, _ := timeline.Reconstruct(events, rate, timeline.DefaultOptions())
//	err := smf.WriteFile("clicktrack.mid", tl)
package smf
