// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Buffer is a fixed-format block of float32 samples addressed as
// [frame][channel].
//
// Storage is channel-major (non-interleaved): all frames of channel 0,
// then all frames of channel 1, and so on. Sample (frame f, channel c)
// lives at Data()[c*Frames()+f]. Per-channel DSP walks contiguous memory
// through Channel; per-frame consumers use Frame or ForEachFrame.
//
// A Buffer either owns its storage or wraps caller memory (see Wrap).
// The zero value is an empty, unallocated buffer ready for use.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	data     []float32
	frames   int
	channels int
	owned    bool
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewSized returns a zero-filled buffer holding frames*channels samples.
func NewSized(frames, channels int) (*Buffer, error) {
	b := &Buffer{}
	if err := b.Allocate(frames, channels); err != nil {
		return nil, err
	}
	return b, nil
}

// Wrap returns a buffer that views samples as a channel-major block of the
// given shape without taking ownership. The caller keeps samples alive for
// as long as the view is used; Free and Allocate never touch that memory.
func Wrap(samples []float32, frames, channels int) (*Buffer, error) {
	b := &Buffer{}
	if err := b.WrapSlice(samples, frames, channels); err != nil {
		return nil, err
	}
	return b, nil
}

func checkShape(frames, channels int) (int, error) {
	if frames < 0 || channels < 0 {
		return 0, fmt.Errorf("%w: frames=%d channels=%d", ErrInvalidShape, frames, channels)
	}
	if frames != 0 && channels > math.MaxInt/frames {
		return 0, fmt.Errorf("%w: frames=%d channels=%d", ErrBufferTooLarge, frames, channels)
	}
	return frames * channels, nil
}

// Allocate discards the current contents and allocates exactly
// frames*channels zeroed samples. A zero frame or channel count leaves the
// buffer empty. Invalid shapes are rejected before storage is touched.
func (b *Buffer) Allocate(frames, channels int) error {
	n, err := checkShape(frames, channels)
	if err != nil {
		return err
	}

	b.Free()
	if n == 0 {
		return nil
	}

	b.data = make([]float32, n)
	b.frames = frames
	b.channels = channels
	b.owned = true
	return nil
}

// WrapSlice replaces the current contents with a non-owning view over
// samples. See Wrap.
func (b *Buffer) WrapSlice(samples []float32, frames, channels int) error {
	n, err := checkShape(frames, channels)
	if err != nil {
		return err
	}
	if len(samples) < n {
		return fmt.Errorf("%w: have %d samples, need %d", ErrShortStorage, len(samples), n)
	}

	b.Free()
	if n == 0 {
		return nil
	}

	b.data = samples[:n:n]
	b.frames = frames
	b.channels = channels
	b.owned = false
	return nil
}

// Free releases owned storage, or drops the view of wrapped memory, and
// resets the buffer to the empty state. It is safe on an empty buffer.
func (b *Buffer) Free() {
	b.data = nil
	b.frames = 0
	b.channels = 0
	b.owned = false
}

// Frames returns the number of frames per channel.
func (b *Buffer) Frames() int { return b.frames }

// Channels returns the number of channels.
func (b *Buffer) Channels() int { return b.channels }

// Samples returns Frames()*Channels().
func (b *Buffer) Samples() int { return len(b.data) }

// IsAllocated reports whether the buffer holds owned or wrapped storage.
func (b *Buffer) IsAllocated() bool { return b.data != nil }

// IsOwned reports whether the buffer owns its storage.
func (b *Buffer) IsOwned() bool { return b.owned }

// Data returns the channel-major backing slice.
func (b *Buffer) Data() []float32 { return b.data }

// SameShape reports whether o has the same frame and channel counts.
func (b *Buffer) SameShape(o *Buffer) bool {
	return b.frames == o.frames && b.channels == o.channels
}

// Clone returns an owning deep copy. Cloning a wrapped buffer copies the
// viewed samples into fresh storage.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{}
	c.CopyFrom(b)
	return c
}

// CopyFrom makes b an owning deep copy of src. Existing owned storage is
// reused when the shapes already match.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b == src {
		return
	}
	if !src.IsAllocated() {
		b.Free()
		return
	}
	if !b.owned || !b.SameShape(src) {
		b.data = make([]float32, len(src.data))
		b.frames = src.frames
		b.channels = src.channels
		b.owned = true
	}
	copy(b.data, src.data)
}

// Move returns a new buffer that takes over b's storage, shape and
// ownership. b is left empty and reusable.
func (b *Buffer) Move() *Buffer {
	m := &Buffer{}
	m.MoveFrom(b)
	return m
}

// MoveFrom releases b's storage and takes over src's. src is left empty.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src {
		return
	}
	*b = *src
	src.Free()
}

func (b *Buffer) String() string {
	if !b.IsAllocated() {
		return "Buffer(empty)"
	}
	mode := "owned"
	if !b.owned {
		mode = "wrapped"
	}
	return fmt.Sprintf("Buffer(%d frames x %d channels, %s)", b.frames, b.channels, mode)
}
