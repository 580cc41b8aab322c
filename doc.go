// SPDX-License-Identifier: EPL-2.0

// Package audbuf loads, mixes and writes fixed-format blocks of float32
// audio.
//
// The core type is audio.Buffer: frames x channels samples stored
// channel-major, either owned or wrapping caller memory. This package ties
// it to the bundled format decoders.
//
// # Supported Formats
//
//   - WAV via formats/wav (8/16/24/32-bit PCM in, 16 or any depth out)
//   - MP3 via formats/mp3 (always stereo)
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff (8/16/24/32-bit PCM in and out)
//
// # Quick Start
//
//	buf, rate, err := audbuf.LoadFile("drums.wav")
//	if err != nil {
//	    return err
//	}
//	buf.Scale(0.5)
//
//	out, _ := os.Create("quiet.wav")
//	defer out.Close()
//	err = wav.Encode(out, buf, rate, 16)
//
// LoadFile picks a decoder by extension from DefaultRegistry. Load drains
// any audio.Source, and Decode runs a specific decoder over an io.Reader.
//
// # Mixing
//
// MixDown sums buffers of the same shape with a gain per input. Buffers of
// different lengths are brought to a common length with PadFrames first:
//
//	a, _ = audbuf.PadFrames(a, n)
//	b, _ = audbuf.PadFrames(b, n)
//	mix, err := audbuf.MixDown([]float32{1, 0.7}, a, b)
//
// The cmd/bufmix tool does this for files on disk.
//
// Nothing here resamples or changes channel layout; mixed inputs must
// already agree on both.
package audbuf
