// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files.
//
// Decoding is chunk-aware (LIST and other chunks before "data" are skipped)
// and accepts integer PCM at 8, 16, 24 or 32 bits:
//
//	f, _ := os.Open("clicktrack.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Encoding always produces mono 16-bit PCM:
//
//	err := wav.WriteFile("click.wav", 44100, samples)
package wav
