// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

// aiffReader is the part of aiff.Decoder the source needs.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps a go-audio aiff.Decoder as an audio.Source.
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	scale      float64
	intBuf     *goaudio.IntBuffer
}

func newSource(dec aiffReader, bitDepth int) (*source, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}
	scale, ok := utils.FullScale(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, audio.DefaultChunkFrames*format.NumChannels),
			Format:         format,
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.intBuf.Data) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < whole {
		s.intBuf.Data = make([]int, whole)
	}
	s.intBuf.Data = s.intBuf.Data[:whole]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.scale)
	}

	// go-audio reports a short final read without an error
	if n < whole && err == nil {
		return n, io.EOF
	}
	return n, err
}

// Decoder decodes AIFF files.
type Decoder struct{}

// Decode opens an AIFF stream. go-audio needs to seek, so readers that are
// not an io.ReadSeeker are read fully into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	src, err := newSource(dec, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}
	return src, nil
}

// DecodeBuffer decodes the whole stream into a buffer and returns it with
// its sample rate.
func (Decoder) DecodeBuffer(r io.Reader) (*audio.Buffer, int, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, 0, err
	}
	return ReadBuffer(rs)
}

// ReadBuffer decodes an AIFF file in one pass with go-audio's
// FullPCMBuffer and returns a channel-major buffer and its sample rate.
func ReadBuffer(r io.ReadSeeker) (*audio.Buffer, int, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}

	depth := int(dec.BitDepth)
	if _, ok := utils.FullScale(depth); !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	buf, err := audio.FromIntBuffer(ib, depth)
	if err != nil {
		return nil, 0, fmt.Errorf("aiff: %w", err)
	}
	return buf, ib.Format.SampleRate, nil
}

func asReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}
	return bytes.NewReader(data), nil
}
