// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is supported, at any channel count
// and sample rate. Readers that cannot seek are buffered in memory first.
//
//	f, _ := os.Open("bar.aif")
//	src, err := aiff.Decoder{}.Decode(f)
package aiff
