// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved 16-bit stereo, so Channels reports 2
// even for mono files; audio.Load averages the two identical channels.
//
// MP3 is lossy and pads the start of the stream with encoder delay. Click
// tracks and reference clicks survive it, but their waveforms no longer
// match sample for sample, so expect more clicks to be classified by the
// waveform-difference fallback than with WAV input.
package mp3
