// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audbuf/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs. Read fills p
// with interleaved samples and returns how many it wrote, always a multiple
// of Channels.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() <= 0 {
		return nil, ErrNoChannels
	}
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return audio.DefaultChunkFrames * s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}
	return s.dec.Read(dst[:whole])
}

// Decoder decodes Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := newSource(dec)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// DecodeBuffer decodes the whole stream into a buffer and returns it with
// its sample rate.
func (Decoder) DecodeBuffer(r io.Reader) (*audio.Buffer, int, error) {
	return ReadBuffer(r)
}

// ReadBuffer decodes all of r in one pass with oggvorbis.ReadAll and
// deinterleaves the result into a channel-major buffer.
func ReadBuffer(r io.Reader) (*audio.Buffer, int, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	if format.Channels <= 0 {
		return nil, 0, ErrNoChannels
	}

	buf, err := audio.FromInterleaved(samples, format.Channels)
	if err != nil {
		return nil, 0, fmt.Errorf("vorbis: %w", err)
	}
	return buf, format.SampleRate, nil
}
