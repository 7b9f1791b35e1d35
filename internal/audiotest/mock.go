// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Generator is an audio.Source computing its samples from a waveform. It is
// the streaming counterpart of NewBuffer.
type Generator struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	waveform   func(sample int, channel int) float32

	// ChunkFrames caps the frames returned by one ReadSamples call, to
	// imitate decoders that return one packet at a time. 0 means no cap.
	ChunkFrames int
}

// NewMockSource returns a Generator of frames frames.
func NewMockSource(sampleRate, channels, frames int, waveform func(sample int, channel int) float32) *Generator {
	return &Generator{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *Generator {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource is a full-scale sine on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *Generator {
	return NewMockSource(sampleRate, channels, frames, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *Generator {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (g *Generator) SampleRate() int { return g.sampleRate }
func (g *Generator) Channels() int   { return g.channels }
func (g *Generator) BufSize() int    { return 4096 }
func (g *Generator) Close() error    { return nil }

// Rewind starts the generator over.
func (g *Generator) Rewind() { g.pos = 0 }

func (g *Generator) ReadSamples(dst []float32) (int, error) {
	if g.pos >= g.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/g.channels, g.frames-g.pos)
	if g.ChunkFrames > 0 {
		n = min(n, g.ChunkFrames)
	}

	for f := range n {
		for c := range g.channels {
			dst[f*g.channels+c] = g.waveform(g.pos+f, c)
		}
	}
	g.pos += n

	if g.pos >= g.frames {
		return n * g.channels, io.EOF
	}

	return n * g.channels, nil
}
