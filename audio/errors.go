// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrSampleRateMismatch is returned when a source's native rate differs
	// from the rate fixed for the run. Sources are never resampled.
	ErrSampleRateMismatch = errors.New("sample rate mismatch")
	// ErrEmptyOrSilentAudio is returned for a source without a single
	// nonzero sample, which cannot be normalized.
	ErrEmptyOrSilentAudio = errors.New("empty or silent audio")
	// ErrUnsupportedFormat is returned by Registry.Lookup for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrInvalidChannels is returned for sources reporting fewer than one channel.
	ErrInvalidChannels = errors.New("invalid channel count")
)
