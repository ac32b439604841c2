// SPDX-License-Identifier: EPL-2.0

// Package click finds the clicks of a metronome recording and tells which
// division each one marks.
//
// # Reference clicks
//
// A Library holds one Template per Division, each normalized exactly like
// the click track. NewLibrary refuses two templates with the same
// zero-crossing count, since the classifier could not separate them:
//
//	bar, _ := click.LoadTemplate(click.Bar, "bar.wav", barSrc, 44100)
//	quarter, _ := click.LoadTemplate(click.Quarter, "quarter.wav", quarterSrc, 44100)
//	lib, err := click.NewLibrary(44100, bar, quarter)
//
// # Segmenting
//
// A Segmenter walks the samples once with a silent/sounding detector. A
// click begins at the first audible sample and ends when DefaultMinSilence
// (or the configured gap) of inaudible samples follows:
//
//	segments := click.NewSegmenter(44100, click.DefaultMinSilence).Segment(buf.Samples)
//
// # Classifying
//
// The Classifier compares each click with every template. Zero-crossing
// counts are compared first, after equalizing peaks and cutting both buffers
// to the shorter one; the first exact match wins. Otherwise the template
// with the smallest cumulative difference of the unit-norm, zero-trimmed
// waveforms wins. The returned Match records which stage decided.
package click
