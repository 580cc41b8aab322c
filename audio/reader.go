// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// DefaultChunkFrames is the number of frames pulled from a Source per read
// when the caller does not choose a chunk size.
const DefaultChunkFrames = 4096

// maxStalls bounds how many consecutive empty, error-free reads a Source
// may return before it is considered stuck.
const maxStalls = 64

// FromInterleaved returns an owning buffer holding a copy of interleaved
// samples (frame 0 channel 0, frame 0 channel 1, ...).
func FromInterleaved(samples []float32, channels int) (*Buffer, error) {
	if channels < 0 || (channels == 0 && len(samples) > 0) {
		return nil, fmt.Errorf("%w: channels=%d", ErrInvalidShape, channels)
	}
	if channels == 0 {
		return New(), nil
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(samples), channels)
	}

	b, err := NewSized(len(samples)/channels, channels)
	if err != nil {
		return nil, err
	}
	b.deinterleave(samples, 0)
	return b, nil
}

// Interleave writes the buffer into dst in interleaved order starting at
// frame 0 and returns the number of samples written. Only whole frames are
// written.
func (b *Buffer) Interleave(dst []float32) int {
	if b.channels == 0 {
		return 0
	}
	frames := min(b.frames, len(dst)/b.channels)
	b.interleave(dst, 0, frames)
	return frames * b.channels
}

// deinterleave copies whole interleaved frames from src into the buffer
// starting at frame at.
func (b *Buffer) deinterleave(src []float32, at int) {
	ch := b.channels
	frames := len(src) / ch
	for c := range ch {
		dst := b.data[c*b.frames+at : c*b.frames+at+frames]
		for i := range dst {
			dst[i] = src[i*ch+c]
		}
	}
}

// interleave copies frames [from, from+frames) into dst in interleaved
// order.
func (b *Buffer) interleave(dst []float32, from, frames int) {
	ch := b.channels
	for c := range ch {
		src := b.data[c*b.frames+from : c*b.frames+from+frames]
		for i, v := range src {
			dst[i*ch+c] = v
		}
	}
}

// Fill reads from src into the buffer starting at frame 0 until the buffer
// is full or src is exhausted, and returns the number of frames written.
// Frames past the returned count keep their previous contents. The source
// must have the buffer's channel count. Reaching the end of src is not an
// error. A frame split across reads is reassembled; a partial frame left at
// the end of src is dropped.
func (b *Buffer) Fill(src Source) (int, error) {
	if b.frames == 0 {
		return 0, nil
	}
	if src.Channels() != b.channels {
		return 0, fmt.Errorf("%w: source has %d channels, buffer has %d",
			ErrShapeMismatch, src.Channels(), b.channels)
	}

	ch := b.channels
	chunk := min(b.frames, DefaultChunkFrames)
	// The extra frame holds a partial frame carried over to the next read.
	tmp := make([]float32, (chunk+1)*ch)
	written, held, stalls := 0, 0, 0

	for written < b.frames {
		want := min(b.frames-written, chunk)
		n, err := src.ReadSamples(tmp[held : held+want*ch])
		n = min(max(n, 0), want*ch)
		have := held + n
		frames := have / ch
		if frames > 0 {
			b.deinterleave(tmp[:frames*ch], written)
			written += frames
		}
		held = copy(tmp, tmp[frames*ch:have])
		if n > 0 {
			stalls = 0
		}

		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, fmt.Errorf("%w", err)
		}

		if n == 0 {
			stalls++
			if stalls >= maxStalls {
				return written, io.ErrNoProgress
			}
		}
	}

	return written, nil
}

// ReadAll drains src into a new owning buffer, reading chunkFrames frames
// per call (DefaultChunkFrames when chunkFrames <= 0). A frame split across
// reads is reassembled; a partial frame left at the end of src is dropped.
func ReadAll(src Source, chunkFrames int) (*Buffer, error) {
	ch := src.Channels()
	if ch <= 0 {
		return nil, fmt.Errorf("%w: source reports %d channels", ErrInvalidShape, ch)
	}
	if chunkFrames <= 0 {
		chunkFrames = DefaultChunkFrames
	}

	tmp := make([]float32, (chunkFrames+1)*ch)
	all := make([]float32, 0, chunkFrames*ch)
	held, stalls := 0, 0

	for {
		n, err := src.ReadSamples(tmp[held : held+chunkFrames*ch])
		n = min(max(n, 0), chunkFrames*ch)
		have := held + n
		whole := have - have%ch
		all = append(all, tmp[:whole]...)
		held = copy(tmp, tmp[whole:have])
		if n > 0 {
			stalls = 0
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			stalls++
			if stalls >= maxStalls {
				return nil, io.ErrNoProgress
			}
		}
	}

	return FromInterleaved(all, ch)
}

// BufferSource streams a Buffer as interleaved samples through the Source
// interface, so buffers can feed encoders and output devices.
type BufferSource struct {
	buf        *Buffer
	sampleRate int
	pos        int
}

// NewBufferSource returns a Source reading b from frame 0. b must not be
// reallocated while the source is in use.
func NewBufferSource(b *Buffer, sampleRate int) *BufferSource {
	return &BufferSource{buf: b, sampleRate: sampleRate}
}

func (s *BufferSource) SampleRate() int { return s.sampleRate }
func (s *BufferSource) Channels() int   { return s.buf.channels }
func (s *BufferSource) BufSize() int    { return DefaultChunkFrames * max(s.buf.channels, 1) }
func (s *BufferSource) Close() error    { return nil }

// Reset rewinds the source to frame 0.
func (s *BufferSource) Reset() { s.pos = 0 }

// ReadSamples fills dst with interleaved samples. len(dst) must be a
// multiple of the channel count.
func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	ch := s.buf.channels
	if ch == 0 || s.pos >= s.buf.frames {
		return 0, io.EOF
	}
	if len(dst)%ch != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/ch, s.buf.frames-s.pos)
	s.buf.interleave(dst, s.pos, frames)
	s.pos += frames

	if s.pos >= s.buf.frames {
		return frames * ch, io.EOF
	}
	return frames * ch, nil
}
