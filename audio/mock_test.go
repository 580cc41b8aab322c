// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
)

// mockSource generates interleaved test audio. It returns at most
// maxFrames frames per read when maxFrames > 0, which exercises callers
// that must loop over short reads.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int
	maxFrames    int
	failAfter    int // frames after which ReadSamples errors; 0 disables
	err          error
	waveform     func(sample int, channel int) float32
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

// newRampSource yields frame/1000 + channel on every sample.
func newRampSource(channels, totalSamples int) *mockSource {
	return newMockSource(48000, channels, totalSamples, func(sample, channel int) float32 {
		return float32(sample)/1000 + float32(channel)
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter > 0 && m.generated >= m.failAfter {
		return 0, m.err
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.maxFrames > 0 {
		frames = min(frames, m.maxFrames)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// stuckSource never makes progress and never ends.
type stuckSource struct{ channels int }

func (s stuckSource) SampleRate() int                    { return 8000 }
func (s stuckSource) Channels() int                      { return s.channels }
func (s stuckSource) BufSize() int                       { return 0 }
func (s stuckSource) Close() error                       { return nil }
func (s stuckSource) ReadSamples([]float32) (int, error) { return 0, nil }

// splitSource replays interleaved samples at most per values per read, so
// reads may end mid-frame.
type splitSource struct {
	samples  []float32
	channels int
	per      int
}

func (s *splitSource) SampleRate() int { return 8000 }
func (s *splitSource) Channels() int   { return s.channels }
func (s *splitSource) BufSize() int    { return s.per }
func (s *splitSource) Close() error    { return nil }

func (s *splitSource) ReadSamples(dst []float32) (int, error) {
	if len(s.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), s.per)], s.samples)
	s.samples = s.samples[n:]
	return n, nil
}
