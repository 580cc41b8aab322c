// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

// go-mp3 always decodes to interleaved stereo.
const channels = 2

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
	// bytes of a frame split across two decoder reads
	carry []byte
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		buf:        make([]byte, 8192),
		carry:      make([]byte, 0, 2*channels),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// ReadSamples decodes whole frames only, so every read starts on channel 0.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frameBytes := 2 * s.channels
	want := (len(dst) / s.channels) * frameBytes
	if want == 0 {
		return 0, nil
	}
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	have := copy(s.buf, s.carry)
	n, err := s.dec.Read(s.buf[have:])
	have += n

	whole := have - have%frameBytes
	samples := utils.Int16LEToFloat32(dst, s.buf[:whole])
	s.carry = append(s.carry[:0], s.buf[whole:have]...)

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return newSource(dec), nil
}

// DecodeBuffer decodes the whole stream into a stereo buffer and returns it
// with its sample rate.
func (d Decoder) DecodeBuffer(r io.Reader) (*audio.Buffer, int, error) {
	src, err := d.Decode(r)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	return readBuffer(src)
}

// ReadBuffer decodes r into a stereo buffer. See Decoder.DecodeBuffer.
func ReadBuffer(r io.Reader) (*audio.Buffer, int, error) {
	return Decoder{}.DecodeBuffer(r)
}

func readBuffer(src audio.Source) (*audio.Buffer, int, error) {
	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}
	return buf, src.SampleRate(), nil
}
