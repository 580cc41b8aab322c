// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

const headerSize = 44

// wavSource streams the data chunk of a canonical 16-bit PCM WAV.
type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return cap(s.buf) / 2 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	n, err := io.ReadFull(s.r, s.buf[:need])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := utils.Int16LEToFloat32(dst, s.buf[:n])
	if err != nil {
		// short read: the stream ended inside this request
		if samples == 0 {
			return 0, io.EOF
		}
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder reads canonical 44-byte-header 16-bit PCM WAV streams without
// seeking. Use ReadBuffer for other bit depths and chunk layouts.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}
	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) {
		return nil, ErrUnsupportedWavLayout
	}

	audioFormat := binary.LittleEndian.Uint16(header[20:22])
	channels := int(binary.LittleEndian.Uint16(header[22:24]))
	sampleRate := int(binary.LittleEndian.Uint32(header[24:28]))
	bitsPerSample := int(binary.LittleEndian.Uint16(header[34:36]))

	if audioFormat != 1 || bitsPerSample != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	if channels == 0 {
		return nil, ErrUnsupportedWavLayout
	}
	if !bytes.HasPrefix(header[36:40], []byte("data")) {
		return nil, ErrUnsupportedWavChunks
	}

	return &wavSource{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		buf:        make([]byte, 8192),
	}, nil
}

// DecodeBuffer decodes the whole stream into a buffer and returns it with
// its sample rate. Seekable input goes through ReadBuffer and may use any
// layout it accepts; other readers must be canonical 16-bit PCM.
func (d Decoder) DecodeBuffer(r io.Reader) (*audio.Buffer, int, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return ReadBuffer(rs)
	}

	src, err := d.Decode(r)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return buf, src.SampleRate(), nil
}
