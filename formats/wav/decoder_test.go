// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// createWAVFile builds a canonical WAV with the given header fields and
// raw int16 payload.
func createWAVFile(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	byteRate := uint32(sampleRate * channels * bitsPerSample / 8)
	blockAlign := uint16(channels * bitsPerSample / 8)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
	}{
		{"mono 8k", 8000, 1},
		{"stereo 44.1k", 44100, 2},
		{"5.1 48k", 48000, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := createWAVFile(tt.sampleRate, tt.channels, 16, make([]int16, tt.channels*4))
			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != tt.sampleRate || src.Channels() != tt.channels {
				t.Errorf("metadata = %d Hz %d ch, want %d Hz %d ch",
					src.SampleRate(), src.Channels(), tt.sampleRate, tt.channels)
			}
			if src.BufSize() <= 0 {
				t.Errorf("BufSize() = %d, want positive", src.BufSize())
			}
		})
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	valid := createWAVFile(8000, 1, 16, nil)

	notWave := bytes.Clone(valid)
	copy(notWave[8:12], "NOPE")

	noFmt := bytes.Clone(valid)
	copy(noFmt[12:16], "LIST")

	noData := bytes.Clone(valid)
	copy(noData[36:40], "fact")

	noChannels := bytes.Clone(valid)
	binary.LittleEndian.PutUint16(noChannels[22:24], 0)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte("NOT A WAV FILE DATA, BUT LONG ENOUGH FOR A HEADER"), ErrNotWavFile},
		{"bad WAVE marker", notWave, ErrNotWavFile},
		{"missing fmt", noFmt, ErrUnsupportedWavLayout},
		{"8-bit", createWAVFile(8000, 1, 8, nil), ErrOnlyPCM16bitSupported},
		{"24-bit", createWAVFile(8000, 1, 24, nil), ErrOnlyPCM16bitSupported},
		{"extra chunk", noData, ErrUnsupportedWavChunks},
		{"zero channels", noChannels, ErrUnsupportedWavLayout},
		{"truncated", []byte("RIFF\x00"), io.ErrUnexpectedEOF},
		{"empty", nil, io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, 16, []int16{0, 16384, -16384, -32768, 32767})
	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if n != 3 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 3, nil", n, err)
	}
	if buf[0] != 0 || buf[1] != 0.5 || buf[2] != -0.5 {
		t.Errorf("ReadSamples() = %v, want [0 0.5 -0.5]", buf)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != io.EOF {
		t.Fatalf("ReadSamples() = %d, %v, want 2, EOF", n, err)
	}
	if buf[0] != -1 {
		t.Errorf("buf[0] = %v, want -1", buf[0])
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestDecoder_DecodeBuffer(t *testing.T) {
	t.Parallel()

	// interleaved L R pairs
	data := createWAVFile(16000, 2, 16, []int16{16384, -16384, 0, 8192, -32768, 0})

	buf, rate, err := Decoder{}.DecodeBuffer(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeBuffer() error = %v", err)
	}
	if rate != 16000 {
		t.Errorf("rate = %d, want 16000", rate)
	}
	if buf.Frames() != 3 || buf.Channels() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", buf.Frames(), buf.Channels())
	}

	left := []float32{0.5, 0, -1}
	right := []float32{-0.5, 0.25, 0}
	for i := range 3 {
		if buf.At(i, 0) != left[i] || buf.At(i, 1) != right[i] {
			t.Errorf("frame %d = [%v %v], want [%v %v]", i, buf.At(i, 0), buf.At(i, 1), left[i], right[i])
		}
	}

	if _, _, err := (Decoder{}).DecodeBuffer(bytes.NewReader([]byte("junk"))); err == nil {
		t.Error("DecodeBuffer(junk) error = nil")
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	data := createWAVFile(44100, 2, 16, make([]int16, 44100*2))
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(data))
		for {
			if _, err := src.ReadSamples(buf); err == io.EOF {
				break
			}
		}
	}
}
