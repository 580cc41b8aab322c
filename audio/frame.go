// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Frame is a view of one frame across all channels of a Buffer. It holds
// no storage of its own; reads and writes go straight to the buffer.
//
// A Frame is only valid until the buffer is reallocated, freed or moved.
type Frame struct {
	data   []float32
	stride int // frames per channel
	index  int
	n      int // channels
}

// Index returns the frame index within the buffer.
func (f Frame) Index() int { return f.index }

// Len returns the number of channels.
func (f Frame) Len() int { return f.n }

// At returns the sample on channel c.
func (f Frame) At(c int) float32 {
	if debugChecks {
		assertIndex("channel", c, f.n)
	}
	return f.data[c*f.stride+f.index]
}

// Set stores v on channel c.
func (f Frame) Set(c int, v float32) {
	if debugChecks {
		assertIndex("channel", c, f.n)
	}
	f.data[c*f.stride+f.index] = v
}

// Add adds v to the sample on channel c.
func (f Frame) Add(c int, v float32) {
	if debugChecks {
		assertIndex("channel", c, f.n)
	}
	f.data[c*f.stride+f.index] += v
}

// Fill stores v on every channel.
func (f Frame) Fill(v float32) {
	for c := range f.n {
		f.data[c*f.stride+f.index] = v
	}
}

// Frame returns the view of frame i. Out-of-range indices are a caller
// error.
func (b *Buffer) Frame(i int) Frame {
	if debugChecks {
		assertIndex("frame", i, b.frames)
	}
	return Frame{data: b.data, stride: b.frames, index: i, n: b.channels}
}

// At returns the sample at (frame, channel).
func (b *Buffer) At(frame, channel int) float32 {
	if debugChecks {
		assertIndex("frame", frame, b.frames)
		assertIndex("channel", channel, b.channels)
	}
	return b.data[channel*b.frames+frame]
}

// SetAt stores v at (frame, channel).
func (b *Buffer) SetAt(frame, channel int, v float32) {
	if debugChecks {
		assertIndex("frame", frame, b.frames)
		assertIndex("channel", channel, b.channels)
	}
	b.data[channel*b.frames+frame] = v
}

// Channel returns the contiguous samples of channel c. The slice aliases
// the buffer.
func (b *Buffer) Channel(c int) []float32 {
	if debugChecks {
		assertIndex("channel", c, b.channels)
	}
	start := c * b.frames
	return b.data[start : start+b.frames : start+b.frames]
}

// ForEachFrame calls fn once per frame, in increasing frame order, on the
// calling goroutine. fn may change samples through the view but must not
// reallocate, free or move the buffer.
func (b *Buffer) ForEachFrame(fn func(f Frame, index int)) {
	f := Frame{data: b.data, stride: b.frames, n: b.channels}
	for i := range b.frames {
		f.index = i
		fn(f, i)
	}
}

func assertIndex(what string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("audio: %s index %d out of range [0,%d)", what, i, n))
	}
}
