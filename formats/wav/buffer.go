// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audbuf/audio"
)

// unsigned8Offset is the 8-bit WAV silence level. 8-bit WAV samples are
// unsigned while the other depths are signed.
const unsigned8Offset = 128

func shiftUnsigned8(data []int, by int) {
	for i := range data {
		data[i] += by
	}
}

// ReadBuffer decodes a complete WAV file of any integer PCM depth (8, 16,
// 24 or 32 bit) and chunk layout into a buffer, returning its sample rate.
func ReadBuffer(r io.ReadSeeker) (*audio.Buffer, int, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 {
		return nil, 0, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading wav data: %w", err)
	}
	if dec.BitDepth == 8 {
		shiftUnsigned8(ib.Data, -unsigned8Offset)
	}

	buf, err := audio.FromIntBuffer(ib, int(dec.BitDepth))
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return buf, int(dec.SampleRate), nil
}

// Encode writes b as an integer PCM WAV file at bitDepth (8, 16, 24 or
// 32). Samples outside [-1, 1] are clamped. w must support seeking so the
// header sizes can be patched once the data is written.
func Encode(w io.WriteSeeker, b *audio.Buffer, sampleRate, bitDepth int) error {
	if !b.IsAllocated() {
		return ErrEmptyBuffer
	}

	ib, err := b.IntBuffer(sampleRate, bitDepth)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if bitDepth == 8 {
		shiftUnsigned8(ib.Data, unsigned8Offset)
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, b.Channels(), 1)
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}
	return nil
}
