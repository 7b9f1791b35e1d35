// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// IntReader is the subset of the go-audio wav and aiff decoders used by
// IntSource.
type IntReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource adapts a go-audio integer PCM decoder to Source, scaling
// samples by the bit depth.
type IntSource struct {
	dec        IntReader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// NewIntSource wraps dec. bitDepth selects the normalization; unknown depths
// are treated as 16-bit.
func NewIntSource(dec IntReader, bitDepth int) (*IntSource, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrNoChannels
	}
	if format.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &IntSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      1 / fullScale(bitDepth),
	}, nil
}

func fullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

func (s *IntSource) SampleRate() int { return s.sampleRate }
func (s *IntSource) Channels() int   { return s.channels }
func (s *IntSource) Close() error    { return nil }
func (s *IntSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return defaultBufSize
}

func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) * s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
