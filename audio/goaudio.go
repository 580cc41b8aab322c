// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audbuf/utils"
)

// FromFloat32Buffer copies an interleaved go-audio buffer into a new
// owning Buffer.
func FromFloat32Buffer(fb *goaudio.Float32Buffer) (*Buffer, error) {
	if fb == nil || fb.Format == nil {
		return nil, fmt.Errorf("%w: missing go-audio format", ErrInvalidShape)
	}
	return FromInterleaved(fb.Data, fb.Format.NumChannels)
}

// Float32Buffer returns an interleaved go-audio copy of b.
func (b *Buffer) Float32Buffer(sampleRate int) *goaudio.Float32Buffer {
	fb := &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: b.channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]float32, len(b.data)),
		SourceBitDepth: 32,
	}
	b.Interleave(fb.Data)
	return fb
}

// FromIntBuffer converts an interleaved integer PCM buffer into a new
// owning Buffer, scaling samples by bitDepth. A zero bitDepth falls back
// to ib.SourceBitDepth.
func FromIntBuffer(ib *goaudio.IntBuffer, bitDepth int) (*Buffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, fmt.Errorf("%w: missing go-audio format", ErrInvalidShape)
	}
	if bitDepth == 0 {
		bitDepth = ib.SourceBitDepth
	}
	scale, ok := utils.FullScale(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, bitDepth)
	}

	ch := ib.Format.NumChannels
	if ch <= 0 {
		if len(ib.Data) == 0 {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: channels=%d", ErrInvalidShape, ch)
	}
	if len(ib.Data)%ch != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(ib.Data), ch)
	}

	b, err := NewSized(len(ib.Data)/ch, ch)
	if err != nil {
		return nil, err
	}
	b.ForEachFrame(func(f Frame, i int) {
		for c := range ch {
			f.Set(c, utils.PCMToFloat(ib.Data[i*ch+c], scale))
		}
	})
	return b, nil
}

// IntBuffer returns an interleaved integer PCM copy of b at bitDepth.
// Samples are clamped to [-1, 1] first.
func (b *Buffer) IntBuffer(sampleRate, bitDepth int) (*goaudio.IntBuffer, error) {
	scale, ok := utils.FullScale(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, bitDepth)
	}

	ch := b.channels
	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: ch,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(b.data)),
		SourceBitDepth: bitDepth,
	}
	b.ForEachFrame(func(f Frame, i int) {
		for c := range ch {
			ib.Data[i*ch+c] = utils.FloatToPCM(f.At(c), scale)
		}
	})
	return ib, nil
}
