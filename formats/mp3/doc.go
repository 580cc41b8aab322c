// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every source and buffer from
// this package has two channels regardless of the file's channel mode.
// Samples are scaled to float32 in [-1, 1).
//
// Stream the file as an audio.Source:
//
//	src, err := mp3.Decoder{}.Decode(f)
//
// or decode it whole into a channel-major buffer:
//
//	buf, rate, err := mp3.ReadBuffer(f)
//	left := buf.Channel(0)
//
// Encoding is not supported.
package mp3
