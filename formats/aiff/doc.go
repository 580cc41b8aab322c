// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// 8, 16, 24 and 32-bit integer PCM at any channel count and sample rate
// are supported. Samples are scaled by the file's bit depth to float32 in
// [-1, 1).
//
// go-audio seeks while parsing chunks. Decoder accepts any io.Reader and
// buffers non-seekable input in memory; ReadBuffer takes an io.ReadSeeker
// directly:
//
//	f, _ := os.Open("take.aif")
//	buf, rate, err := aiff.ReadBuffer(f)
//
// Decoder.Decode streams the file as an audio.Source of interleaved
// samples instead, for inputs too large to hold in one buffer.
//
// Encoding is not supported.
package aiff
