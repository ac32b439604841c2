// SPDX-License-Identifier: EPL-2.0

// Package clicktrack converts a recorded metronome click track into a MIDI
// tempo map.
//
// The click track plays a distinct click for every bar line and for each
// beat of the bar's subdivision (quarters, eighths, sixteenths or
// thirty-seconds). Given one reference recording per click sound,
// Convert finds every click, tells which division it marks, rebuilds the
// bars and returns a timeline of time signatures, tempo changes and one
// note marker per click. ConvertFile does the same from files and writes
// the timeline as a Standard MIDI File.
//
// # Pipeline
//
//   - audio.Load downmixes a source to mono and scales it to unit L2 norm.
//   - click.LoadTemplate and click.NewLibrary build the reference clicks,
//     rejecting two that cannot be told apart.
//   - click.Segmenter splits the track at runs of silence.
//   - click.Classifier matches each click by zero-crossing count, falling
//     back to the smallest waveform difference.
//   - timeline.Reconstruct groups the clicks into bars and places them in
//     musical time.
//   - formats/smf writes the MIDI file.
//
// Every input of one run must share the click track's sample rate; nothing
// is resampled.
//
// # Quick Start
//
//	res, out, err := clicktrack.ConvertFile(clicktrack.Files{
//		Input: "song-click.wav",
//		Templates: map[click.Division]string{
//			click.Bar:     "clicks/bar.wav",
//			click.Quarter: "clicks/quarter.wav",
//			click.Eighth:  "clicks/eigth.wav",
//		},
//	}, clicktrack.DefaultConfig())
//
// # Supported Formats
//
// NewRegistry maps file extensions to decoders:
//   - WAV (integer PCM, 8 to 32 bits) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Lossy formats smear the click waveforms; prefer WAV or AIFF for both the
// click track and the reference clicks.
//
// # Configuration
//
// Config carries every setting of a run. DefaultConfig reduces repeated
// tempo and time-signature events; Maximize keeps all of them, which helps
// when checking a recording bar by bar. Set Verbose and a Logger to see each
// tempo and signature decision.
//
// # Errors
//
// Errors wrap the sentinels of the package that raised them and can be
// checked with errors.Is: audio.ErrSampleRateMismatch,
// audio.ErrEmptyOrSilentAudio, click.ErrAmbiguousTemplates,
// click.ErrUnclassifiableClick, timeline.ErrMixedDivisionsInBar and
// timeline.ErrDegenerateBar among them. Bar errors are *timeline.BarError
// values carrying the bar number and its time in the recording.
package clicktrack
