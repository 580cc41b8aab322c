// SPDX-License-Identifier: EPL-2.0

package audbuf

import (
	"fmt"

	"github.com/ik5/audbuf/audio"
)

// MixDown sums equally shaped inputs into a new buffer, scaling input i by
// gains[i]. Inputs without a gain are mixed at unity.
func MixDown(gains []float32, inputs ...*audio.Buffer) (*audio.Buffer, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if len(gains) > len(inputs) {
		return nil, fmt.Errorf("%w: %d gains, %d inputs", ErrTooManyGains, len(gains), len(inputs))
	}

	out, err := audio.NewSized(inputs[0].Frames(), inputs[0].Channels())
	if err != nil {
		return nil, err
	}

	for i, in := range inputs {
		gain := float32(1)
		if i < len(gains) {
			gain = gains[i]
		}
		if err := out.Mix(in, gain); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
	}
	return out, nil
}

// PadFrames returns an owning copy of b extended with silence to frames.
// Buffers already that long are cloned unchanged.
func PadFrames(b *audio.Buffer, frames int) (*audio.Buffer, error) {
	if frames <= b.Frames() {
		return b.Clone(), nil
	}

	out, err := audio.NewSized(frames, b.Channels())
	if err != nil {
		return nil, err
	}
	if _, err := out.Fill(audio.NewBufferSource(b, 0)); err != nil {
		return nil, err
	}
	return out, nil
}
