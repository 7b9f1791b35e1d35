// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/suncore/utils"
)

// Buffer is decoded multichannel PCM held in memory. Samples are float32,
// nominally in [-1, 1]. All channels have the same number of frames.
//
// A Buffer is immutable once constructed: processing stages read it and
// allocate a new Buffer for their output. Slices returned by Channel must be
// treated as read-only.
type Buffer struct {
	sampleRate int
	data       [][]float32
}

// NewBuffer copies channels into a new Buffer.
func NewBuffer(sampleRate int, channels [][]float32) (*Buffer, error) {
	if err := validate(sampleRate, channels); err != nil {
		return nil, err
	}

	data := make([][]float32, len(channels))
	for c, ch := range channels {
		data[c] = append(make([]float32, 0, len(ch)), ch...)
	}

	return &Buffer{sampleRate: sampleRate, data: data}, nil
}

// Wrap builds a Buffer around channels without copying. The caller hands
// over ownership and must not modify channels afterwards.
func Wrap(sampleRate int, channels [][]float32) (*Buffer, error) {
	if err := validate(sampleRate, channels); err != nil {
		return nil, err
	}

	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

// NewInterleaved builds a Buffer from interleaved samples.
func NewInterleaved(sampleRate, channels int, samples []float32) (*Buffer, error) {
	if channels < 1 {
		return nil, ErrNoChannels
	}

	data, err := utils.Deinterleave(samples, channels)
	if err != nil {
		return nil, err
	}

	return Wrap(sampleRate, data)
}

func validate(sampleRate int, channels [][]float32) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if len(channels) == 0 {
		return ErrNoChannels
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return ErrChannelLengthMismatch
		}
	}

	return nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return len(b.data) }
func (b *Buffer) Frames() int     { return len(b.data[0]) }

// Empty reports whether b is nil or holds no frames.
func (b *Buffer) Empty() bool {
	return b == nil || len(b.data) == 0 || len(b.data[0]) == 0
}

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(float64(b.Frames()) / float64(b.sampleRate) * float64(time.Second))
}

// Channel returns the samples of channel c. The slice is shared with the
// buffer.
func (b *Buffer) Channel(c int) []float32 {
	return b.data[c]
}

// Interleaved returns a newly allocated interleaved copy of the samples.
func (b *Buffer) Interleaved() []float32 {
	out, _ := utils.Interleave(b.data) // channel lengths are validated on construction

	return out
}

// Format describes the buffer in go-audio terms.
func (b *Buffer) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: b.Channels(),
		SampleRate:  b.sampleRate,
	}
}

// Float32Buffer converts b into an interleaved go-audio buffer.
func (b *Buffer) Float32Buffer() *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{
		Format:         b.Format(),
		Data:           b.Interleaved(),
		SourceBitDepth: 32,
	}
}

// FromFloat32Buffer builds a Buffer from an interleaved go-audio buffer.
func FromFloat32Buffer(fb *goaudio.Float32Buffer) (*Buffer, error) {
	if fb == nil || fb.Format == nil {
		return nil, ErrNoChannels
	}

	return NewInterleaved(fb.Format.SampleRate, fb.Format.NumChannels, fb.Data)
}
