// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Decoder.Decode streams the file as an audio.Source of interleaved
// float32 samples; every read returns whole frames. ReadBuffer decodes the
// file in one pass and returns a channel-major buffer:
//
//	buf, rate, err := vorbis.ReadBuffer(f)
//	for c := range buf.Channels() {
//	    process(buf.Channel(c))
//	}
//
// Vorbis decodes to float natively, so no integer scaling happens on the
// way in. Encoding is not supported.
package vorbis
