// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// genSource is a Source computing its samples on the fly. chunk, when set,
// caps the frames returned per read the way packet-based decoders do.
type genSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	chunk      int
	wave       func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, frames int, wave func(frame, channel int) float32) *genSource {
	return &genSource{sampleRate: sampleRate, channels: channels, frames: frames, wave: wave}
}

func newSilentSource(sampleRate, channels, frames int) *genSource {
	return newConstantSource(sampleRate, channels, frames, 0)
}

func newConstantSource(sampleRate, channels, frames int, value float32) *genSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func newSineSource(sampleRate, channels, frames int, frequency float64) *genSource {
	return newMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(frame) / float64(sampleRate)))
	})
}

func (g *genSource) SampleRate() int { return g.sampleRate }
func (g *genSource) Channels() int   { return g.channels }
func (g *genSource) BufSize() int    { return defaultBufSize }
func (g *genSource) Close() error    { return nil }

func (g *genSource) ReadSamples(dst []float32) (int, error) {
	if g.pos >= g.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/g.channels, g.frames-g.pos)
	if g.chunk > 0 {
		n = min(n, g.chunk)
	}

	for f := range n {
		for c := range g.channels {
			dst[f*g.channels+c] = g.wave(g.pos+f, c)
		}
	}
	g.pos += n

	if g.pos >= g.frames {
		return n * g.channels, io.EOF
	}
	return n * g.channels, nil
}
