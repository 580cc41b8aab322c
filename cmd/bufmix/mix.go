// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audbuf"
	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/formats/aiff"
	"github.com/ik5/audbuf/formats/wav"
)

// mixFiles loads every input, pads them to the longest and mixes them with
// the configured gains. All inputs must share one sample rate and channel
// count.
func mixFiles(ctx context.Context, conf *config) (*audio.Buffer, int, error) {
	rate := conf.sampleRate
	inputs := make([]*audio.Buffer, 0, len(conf.inputs))
	longest := 0

	for _, path := range conf.inputs {
		if err := ctx.Err(); err != nil {
			return nil, 0, errors.Wrapf(err, "load %v", path)
		}

		buf, r, err := audbuf.LoadFile(path)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "load %v", path)
		}
		logger.Tf(ctx, "load %v ok, %v at %vHz, peak=%.3f", path, buf, r, buf.Peak())

		if rate == 0 {
			rate = r
		}
		if r != rate {
			return nil, 0, errors.Errorf("%v is %vHz, want %vHz", path, r, rate)
		}
		if len(inputs) > 0 && buf.Channels() != inputs[0].Channels() {
			return nil, 0, errors.Errorf("%v has %v channels, want %v", path, buf.Channels(), inputs[0].Channels())
		}

		inputs = append(inputs, buf)
		longest = max(longest, buf.Frames())
	}

	for i, buf := range inputs {
		if buf.Frames() == longest {
			continue
		}
		padded, err := audbuf.PadFrames(buf, longest)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "pad %v", conf.inputs[i])
		}
		logger.Tf(ctx, "pad %v from %v to %v frames", conf.inputs[i], buf.Frames(), longest)
		inputs[i] = padded
	}

	mix, err := audbuf.MixDown(conf.gains, inputs...)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "mix down")
	}
	mix.Scale(conf.masterGain)

	if peak := mix.Peak(); peak > 1 {
		logger.Wf(ctx, "mix clips, peak=%.3f, lower -gain or BUFMIX_MASTER_GAIN", peak)
	}
	return mix, rate, nil
}

// writeOutput encodes b to path, choosing AIFF or WAV by extension.
func writeOutput(path string, b *audio.Buffer, rate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff":
		err = aiff.Encode(f, b, rate, bitDepth)
	default:
		err = wav.Encode(f, b, rate, bitDepth)
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "encode")
	}
	return f.Close()
}
