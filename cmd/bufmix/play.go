// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"encoding/binary"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audbuf/audio"
	"github.com/ik5/audbuf/utils"
)

// pcm16Reader streams a buffer as interleaved signed 16-bit little-endian
// PCM, the format oto plays.
type pcm16Reader struct {
	src     *audio.BufferSource
	samples []float32
	out     []byte
	pending []byte
	err     error
}

func newPCM16Reader(b *audio.Buffer, chunkFrames int) *pcm16Reader {
	n := chunkFrames * b.Channels()
	return &pcm16Reader{
		src:     audio.NewBufferSource(b, 0),
		samples: make([]float32, n),
		out:     make([]byte, 2*n),
	}
}

func (r *pcm16Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		n, err := r.src.ReadSamples(r.samples)
		r.err = err
		for i, v := range r.samples[:n] {
			binary.LittleEndian.PutUint16(r.out[2*i:], uint16(utils.Float32ToInt16(v)))
		}
		r.pending = r.out[:2*n]
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

var _ io.Reader = (*pcm16Reader)(nil)

// play blocks until b has been played on the default output device or ctx
// is cancelled.
func play(ctx context.Context, b *audio.Buffer, rate, chunkFrames int) error {
	if !b.IsAllocated() {
		return errors.New("nothing to play")
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: b.Channels(),
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return errors.Wrapf(err, "create oto context")
	}
	<-ready

	player := otoCtx.NewPlayer(newPCM16Reader(b, chunkFrames))
	defer player.Close()

	logger.Tf(ctx, "play %v at %vHz", b, rate)
	player.Play()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return errors.Wrapf(ctx.Err(), "interrupted")
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return errors.Wrapf(err, "player")
	}
	return nil
}
