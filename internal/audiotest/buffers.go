// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/suncore/audio"
)

// NewBuffer builds an audio.Buffer whose samples come from waveform. It
// panics on invalid arguments; it is meant for test fixtures only.
func NewBuffer(sampleRate, channels, frames int, waveform func(sample int, channel int) float32) *audio.Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for i := range frames {
			data[c][i] = waveform(i, c)
		}
	}

	buf, err := audio.Wrap(sampleRate, data)
	if err != nil {
		panic(err)
	}

	return buf
}

// SineBuffer is a sine tone of the given amplitude on every channel.
func SineBuffer(sampleRate, channels, frames int, frequency, amplitude float64) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// ConstantBuffer holds value on every channel and frame.
func ConstantBuffer(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(sample int, channel int) float32 {
		return value
	})
}

// RMS is the root mean square of samples, 0 for an empty slice.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}

	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}

	return floats.Norm(x, 2) / math.Sqrt(float64(len(x)))
}

// BlockRMS splits samples into blocks of size n and returns the RMS of each
// full block.
func BlockRMS(samples []float32, n int) []float64 {
	out := make([]float64, 0, len(samples)/n)
	for start := 0; start+n <= len(samples); start += n {
		out = append(out, RMS(samples[start:start+n]))
	}

	return out
}
