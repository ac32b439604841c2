// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM plumbing the click-track converter is built on.
//
// This package contains:
//   - Source interface for streamed, interleaved PCM input
//   - Registry mapping file extensions to format decoders
//   - MonoMixer for channel averaging
//   - Buffer, Load and Normalize for whole-recording, unit-norm mono buffers
//
// # Source Interface
//
// Every decoder under formats/ returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is exhausted.
//
// # Loading
//
// Load is the normalizer used for the click track and for every reference
// click. All inputs of one run share a single sample rate; there is no
// resampling, so a mismatch is an error:
//
//	buf, err := audio.Load(src, 44100)
//	if errors.Is(err, audio.ErrSampleRateMismatch) {
//	    // re-render the input at 44.1kHz
//	}
//
// The returned samples are float64, mono and scaled to unit L2 norm, so the
// absolute loudness of a recording never affects later comparisons. An input
// without a single nonzero sample fails with ErrEmptyOrSilentAudio.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("take1.WAV")
package audio
