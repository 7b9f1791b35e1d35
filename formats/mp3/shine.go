// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"

	shine "github.com/braheezy/shine-mp3/pkg/mp3"
)

// shineFrameEncoder adapts the pure Go port of the shine fixed-point
// encoder. Shine consumes exactly one pass per Write: 1152 frames for MPEG-1
// rates, 576 for MPEG-2. Blocks are split into passes and only the last
// pass of the stream is padded with silence.
type shineFrameEncoder struct {
	enc        *shine.Encoder
	channels   int
	passFrames int
	out        bytes.Buffer
	pad        []int16
}

// NewShineFrameEncoder is the default FrameEncoderFunc. Shine runs at its
// built-in bitrate of 128 kbps; other bitrates, and sample rates shine has
// no 128 kbps frame for, are rejected.
func NewShineFrameEncoder(sampleRate, channels, bitrate int) (FrameEncoder, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	if bitrate != Bitrate {
		return nil, fmt.Errorf("%w: %d kbps", ErrUnsupportedFormat, bitrate)
	}
	if shine.CheckConfig(sampleRate, bitrate) < 0 {
		return nil, fmt.Errorf("%w: %d Hz at %d kbps", ErrUnsupportedFormat, sampleRate, bitrate)
	}

	return &shineFrameEncoder{
		enc:        shine.NewEncoder(sampleRate, channels),
		channels:   channels,
		passFrames: passFrames(sampleRate),
	}, nil
}

// passFrames is the number of frames in one MPEG Layer III frame.
func passFrames(sampleRate int) int {
	if sampleRate >= 32000 {
		return 1152
	}
	return 576
}

func (s *shineFrameEncoder) Encode(pcm []int16) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("shine: %v", r)
		}
	}()

	pass := s.passFrames * s.channels
	if rem := len(pcm) % pass; rem != 0 {
		s.pad = append(s.pad[:0], pcm...)
		s.pad = append(s.pad, make([]int16, pass-rem)...)
		pcm = s.pad
	}

	s.out.Reset()
	for off := 0; off < len(pcm); off += pass {
		if err := s.enc.Write(&s.out, pcm[off:off+pass]); err != nil {
			return nil, fmt.Errorf("shine: %w", err)
		}
	}

	return bytes.Clone(s.out.Bytes()), nil
}

// Flush has nothing to emit: shine writes every frame as soon as it is
// complete.
func (s *shineFrameEncoder) Flush() ([]byte, error) {
	return nil, nil
}
