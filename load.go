// SPDX-License-Identifier: EPL-2.0

package audbuf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/aiff"
	"github.com/ik5/audbuf/formats/mp3"
	"github.com/ik5/audbuf/formats/vorbis"
	"github.com/ik5/audbuf/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension without the dot.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}

// Load drains src into a new buffer, reading chunkFrames frames at a time
// (audio.DefaultChunkFrames when chunkFrames <= 0), and returns it with the
// source's sample rate.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, rate, err := audbuf.Load(src, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	left := buf.Channel(0)
func Load(src audio.Source, chunkFrames int) (*audio.Buffer, int, error) {
	buf, err := audio.ReadAll(src, chunkFrames)
	if err != nil {
		return nil, src.SampleRate(), fmt.Errorf("%w", err)
	}
	return buf, src.SampleRate(), nil
}

// Decode reads all of r with dec. Decoders that can produce a buffer
// directly are asked to; others are streamed through Load.
func Decode(dec audio.Decoder, r io.Reader) (*audio.Buffer, int, error) {
	if bd, ok := dec.(audio.BufferDecoder); ok {
		return bd.DecodeBuffer(r)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer src.Close()

	return Load(src, 0)
}

// LoadFile decodes the file at path, choosing the decoder from
// DefaultRegistry by extension.
func LoadFile(path string) (*audio.Buffer, int, error) {
	return LoadFileWith(DefaultRegistry(), path)
}

// LoadFileWith is LoadFile with a caller-supplied registry.
func LoadFileWith(reg *audio.Registry, path string) (*audio.Buffer, int, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	buf, rate, err := Decode(dec, f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return buf, rate, nil
}
