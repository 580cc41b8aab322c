// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audbuf/audio"
)

// Encode writes b as an AIFF file with integer PCM at bitDepth (8, 16, 24
// or 32). Samples outside [-1, 1] are clamped. The encoder patches chunk
// sizes on close, so w must be seekable.
func Encode(w io.WriteSeeker, b *audio.Buffer, sampleRate, bitDepth int) error {
	if !b.IsAllocated() {
		return ErrEmptyBuffer
	}

	ib, err := b.IntBuffer(sampleRate, bitDepth)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := aiff.NewEncoder(w, sampleRate, bitDepth, b.Channels())
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing aiff: %w", err)
	}
	return nil
}
