// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

// chunkSamples is how many int16 samples are converted per Write call.
const chunkSamples = 8192

// header16 returns the canonical 44-byte header of a 16-bit PCM WAV
// holding samples interleaved samples.
func header16(sampleRate, channels, samples int) []byte {
	const bitsPerSample = 16
	byteRate := uint32(sampleRate) * uint32(channels) * bitsPerSample / 8
	blockAlign := uint16(channels) * bitsPerSample / 8
	dataSize := uint32(samples * 2)

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.  samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if _, err := w.Write(header16(sampleRate, 1, len(samples))); err != nil {
		return fmt.Errorf("%w", err)
	}
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSamples)*2)
	for i := 0; i < len(samples); i += chunkSamples {
		chunk := samples[i:min(i+chunkSamples, len(samples))]
		out := buf[:len(chunk)*2]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteBuffer16 writes b as an interleaved 16-bit PCM WAV at sampleRate.
// Unlike Encode it needs no seeking, so it can write to pipes and network
// streams.
func WriteBuffer16(w io.Writer, sampleRate int, b *audio.Buffer) error {
	if !b.IsAllocated() {
		return ErrEmptyBuffer
	}

	if _, err := w.Write(header16(sampleRate, b.Channels(), b.Samples())); err != nil {
		return fmt.Errorf("%w", err)
	}

	ch := b.Channels()
	floats := make([]float32, max(chunkSamples/ch, 1)*ch)
	out := make([]byte, len(floats)*2)
	src := audio.NewBufferSource(b, sampleRate)

	for {
		n, err := src.ReadSamples(floats)
		for i, x := range floats[:n] {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(utils.Float32ToInt16(x)))
		}
		if n > 0 {
			if _, werr := w.Write(out[:n*2]); werr != nil {
				return fmt.Errorf("%w", werr)
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
}
