// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Clear sets every sample to silence.
func (b *Buffer) Clear() {
	clear(b.data)
}

// ClearRange silences n frames starting at start on every channel. The
// range must lie within [0, Frames()].
func (b *Buffer) ClearRange(start, n int) error {
	if start < 0 || n < 0 || start > b.frames-n {
		return fmt.Errorf("%w: start=%d n=%d frames=%d", ErrRangeOutOfBounds, start, n, b.frames)
	}

	for c := range b.channels {
		base := c*b.frames + start
		clear(b.data[base : base+n])
	}
	return nil
}

// Set overwrites b with src scaled by gain. Both buffers must have the same
// shape; nothing is written otherwise.
func (b *Buffer) Set(src *Buffer, gain float32) error {
	if !b.SameShape(src) {
		return shapeMismatch(b, src)
	}

	if gain == 1 {
		copy(b.data, src.data)
		return nil
	}

	dst := b.data
	s := src.data[:len(dst)]
	for i := range dst {
		dst[i] = s[i] * gain
	}
	return nil
}

// Mix adds src scaled by gain onto b, frame for frame. Both buffers must
// have the same shape; nothing is written otherwise.
func (b *Buffer) Mix(src *Buffer, gain float32) error {
	if !b.SameShape(src) {
		return shapeMismatch(b, src)
	}

	dst := b.data
	s := src.data[:len(dst)]
	if gain == 1 {
		for i := range dst {
			dst[i] += s[i]
		}
		return nil
	}

	for i := range dst {
		dst[i] += s[i] * gain
	}
	return nil
}

// Scale multiplies every sample by gain in place.
func (b *Buffer) Scale(gain float32) {
	if gain == 1 {
		return
	}
	for i := range b.data {
		b.data[i] *= gain
	}
}

// Peak returns the largest absolute sample value.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, v := range b.data {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

func shapeMismatch(dst, src *Buffer) error {
	return fmt.Errorf("%w: dst %dx%d, src %dx%d",
		ErrShapeMismatch, dst.frames, dst.channels, src.frames, src.channels)
}
