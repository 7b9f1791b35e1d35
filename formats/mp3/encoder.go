// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"context"
	"errors"
	"fmt"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/utils"
)

const (
	// MIME type of the streams Encoder produces.
	MIME = "audio/mp3"

	// Bitrate is the constant bitrate in kbps.
	Bitrate = 128

	// BlockFrames is the number of frames handed to the frame encoder at a
	// time, one MPEG-1 Layer III granule pair.
	BlockFrames = 1152
)

// FrameEncoder turns interleaved 16-bit PCM into MP3 bytes. Encode may
// buffer internally; Flush returns whatever is left and ends the stream.
type FrameEncoder interface {
	Encode(pcm []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// FrameEncoderFunc creates a FrameEncoder for one stream.
type FrameEncoderFunc func(sampleRate, channels, bitrate int) (FrameEncoder, error)

// Encoder drives a FrameEncoder over a whole buffer. A fresh FrameEncoder is
// created for every call to Encode, so an Encoder can be shared.
type Encoder struct {
	newFrameEncoder FrameEncoderFunc
}

type Option func(*Encoder)

// WithFrameEncoder replaces the MPEG frame encoder.
func WithFrameEncoder(fn FrameEncoderFunc) Option {
	return func(e *Encoder) {
		if fn != nil {
			e.newFrameEncoder = fn
		}
	}
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{newFrameEncoder: NewShineFrameEncoder}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Channels is the number of channels an encoded stream of buf has: mono
// stays mono, anything wider becomes stereo from its first two channels.
func Channels(buf *audio.Buffer) int {
	return min(buf.Channels(), 2)
}

// Encode returns the complete MP3 stream for buf. Samples are quantized with
// utils.ToInt16 and fed in blocks of BlockFrames; the last block may be
// shorter.
func (e *Encoder) Encode(ctx context.Context, buf *audio.Buffer) ([]byte, error) {
	if buf.Empty() {
		return nil, ErrEmptyBuffer
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	channels := Channels(buf)

	fe, err := e.newFrameEncoder(buf.SampleRate(), channels, Bitrate)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	left := buf.Channel(0)
	right := left
	if channels == 2 {
		right = buf.Channel(1)
	}

	frames := buf.Frames()
	block := make([]int16, BlockFrames*channels)
	out := make([]byte, 0, frames*Bitrate*125/buf.SampleRate()+1024)

	for start := 0; start < frames; start += BlockFrames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := min(BlockFrames, frames-start)

		if channels == 1 {
			utils.ToInt16Slice(block[:n], left[start:start+n])
		} else {
			for i := range n {
				block[2*i] = utils.ToInt16(left[start+i])
				block[2*i+1] = utils.ToInt16(right[start+i])
			}
		}

		chunk, err := fe.Encode(block[:n*channels])
		if err != nil {
			return nil, fmt.Errorf("encoding frames at %d: %w", start, err)
		}
		out = append(out, chunk...)
	}

	tail, err := fe.Flush()
	if err != nil {
		return nil, fmt.Errorf("flushing encoder: %w", err)
	}

	return append(out, tail...), nil
}
