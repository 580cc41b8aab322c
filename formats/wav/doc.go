// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files as audio buffers.
//
// # Decoding
//
// Decoder streams canonical 16-bit PCM files (44-byte header) without
// seeking, either as an audio.Source or straight into a buffer:
//
//	buf, rate, err := wav.Decoder{}.DecodeBuffer(r)
//
// ReadBuffer uses github.com/go-audio/wav and accepts any chunk layout and
// 8, 16, 24 or 32-bit integer PCM, at the cost of needing an
// io.ReadSeeker:
//
//	f, _ := os.Open("take.wav")
//	buf, rate, err := wav.ReadBuffer(f)
//
// # Encoding
//
// Encode writes a buffer at any supported bit depth through go-audio's
// encoder and needs an io.WriteSeeker. WriteBuffer16 and WriteWAV16 write
// 16-bit PCM to any io.Writer:
//
//	err := wav.Encode(f, buf, 48000, 24)
//	err = wav.WriteBuffer16(conn, 48000, buf)
//
// Samples outside [-1, 1] are clamped on the way out.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCM16bitSupported: Decoder got something other than 16-bit PCM
//   - ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: Decoder got a
//     non-canonical header; try ReadBuffer
//   - ErrOnlyPCMSupported: ReadBuffer got a float or compressed file
//   - ErrEmptyBuffer: nothing to write
package wav
