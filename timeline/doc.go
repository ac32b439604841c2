// SPDX-License-Identifier: EPL-2.0

// Package timeline turns classified clicks into a musical time line of
// note markers, tempo changes and time signatures, positioned in quarter
// notes and ticks rather than samples.
//
// Reconstruct makes one forward pass over the clicks and threads a State
// through it. Each bar-line click closes the bar in progress; the closed bar
// yields a time signature at its start, then a note marker and a tempo for
// each of its clicks. The tempo of a click comes from the samples until the
// next click:
//
//	bpm = (4 / denominator) * 60 * rate / samples
//
// Every click advances the nominal position by one unit. Clicks shorter
// than a quarter note add the missing part to State.Slip, which is taken
// off every later position, so a bar of eight eighths spans four quarters.
//
// With the default options a tempo within DefaultBPMTolerance of the last
// emitted one, or a time signature equal to the last one, is not emitted
// again. Clearing ReduceTempoEvents and ReduceSignatureEvents emits one per
// click and one per bar.
package timeline
