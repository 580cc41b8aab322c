// SPDX-License-Identifier: EPL-2.0

package audbuf

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audbuf/audio"
)

func constBuffer(t *testing.T, frames, channels int, v float32) *audio.Buffer {
	t.Helper()

	b, err := audio.NewSized(frames, channels)
	if err != nil {
		t.Fatal(err)
	}
	for i := range b.Data() {
		b.Data()[i] = v
	}
	return b
}

func TestMixDown(t *testing.T) {
	t.Parallel()

	a := constBuffer(t, 64, 2, 0.25)
	b := constBuffer(t, 64, 2, 0.5)
	c := constBuffer(t, 64, 2, -0.125)

	tests := []struct {
		name  string
		gains []float32
		want  float32
	}{
		{"unity", nil, 0.625},
		{"per input", []float32{2, 0.5, 0}, 0.75},
		{"partial gains", []float32{0}, 0.375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := MixDown(tt.gains, a, b, c)
			if err != nil {
				t.Fatalf("MixDown() error = %v", err)
			}
			if !out.SameShape(a) || !out.IsOwned() {
				t.Fatalf("MixDown() = %s, want owned 64x2", out)
			}
			for i, v := range out.Data() {
				if v != tt.want {
					t.Fatalf("sample %d = %v, want %v", i, v, tt.want)
				}
			}
		})
	}

	if a.Data()[0] != 0.25 || b.Data()[0] != 0.5 {
		t.Error("MixDown modified its inputs")
	}
}

func TestMixDown_Errors(t *testing.T) {
	t.Parallel()

	a := constBuffer(t, 10, 2, 1)

	if _, err := MixDown(nil); !errors.Is(err, ErrNoInputs) {
		t.Errorf("MixDown() error = %v, want %v", err, ErrNoInputs)
	}
	if _, err := MixDown([]float32{1, 1}, a); !errors.Is(err, ErrTooManyGains) {
		t.Errorf("MixDown(2 gains, 1 input) error = %v, want %v", err, ErrTooManyGains)
	}
	if _, err := MixDown(nil, a, constBuffer(t, 11, 2, 1)); !errors.Is(err, audio.ErrShapeMismatch) {
		t.Errorf("MixDown(frame mismatch) error = %v, want %v", err, audio.ErrShapeMismatch)
	}
	if _, err := MixDown(nil, a, constBuffer(t, 10, 1, 1)); !errors.Is(err, audio.ErrShapeMismatch) {
		t.Errorf("MixDown(channel mismatch) error = %v, want %v", err, audio.ErrShapeMismatch)
	}
}

func TestPadFrames(t *testing.T) {
	t.Parallel()

	src, err := audio.FromInterleaved([]float32{1, -1, 2, -2, 3, -3}, 2)
	if err != nil {
		t.Fatal(err)
	}

	padded, err := PadFrames(src, 5)
	if err != nil {
		t.Fatalf("PadFrames() error = %v", err)
	}
	if padded.Frames() != 5 || padded.Channels() != 2 {
		t.Fatalf("shape = %dx%d, want 5x2", padded.Frames(), padded.Channels())
	}
	if got, want := padded.Channel(0), []float32{1, 2, 3, 0, 0}; !slices.Equal(got, want) {
		t.Errorf("Channel(0) = %v, want %v", got, want)
	}
	if got, want := padded.Channel(1), []float32{-1, -2, -3, 0, 0}; !slices.Equal(got, want) {
		t.Errorf("Channel(1) = %v, want %v", got, want)
	}

	same, err := PadFrames(src, 2)
	if err != nil {
		t.Fatalf("PadFrames(shorter) error = %v", err)
	}
	if !same.SameShape(src) || !slices.Equal(same.Data(), src.Data()) {
		t.Errorf("PadFrames(shorter) = %v, want copy of %v", same.Data(), src.Data())
	}
	same.Data()[0] = 42
	if src.Data()[0] == 42 {
		t.Error("PadFrames returned storage shared with its input")
	}
}

func TestPadFrames_Empty(t *testing.T) {
	t.Parallel()

	out, err := PadFrames(audio.New(), 100)
	if err != nil {
		t.Fatalf("PadFrames() error = %v", err)
	}
	if out.IsAllocated() {
		t.Errorf("PadFrames(empty) = %s, want empty", out)
	}
}

func BenchmarkMixDown(b *testing.B) {
	in := make([]*audio.Buffer, 4)
	for i := range in {
		in[i], _ = audio.NewSized(48000, 2)
	}
	gains := []float32{1, 0.5, 0.25, 0.125}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = MixDown(gains, in...)
	}
}
