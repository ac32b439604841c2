// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("clicktrack.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
