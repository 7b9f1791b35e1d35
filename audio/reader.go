// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const defaultBufSize = 4096

type bufferSource struct {
	buf *Buffer
	pos int // next frame
}

// Reader streams b as an interleaved Source.
func (b *Buffer) Reader() Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate() }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return defaultBufSize }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.buf.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)

	if channels == 1 {
		copy(dst, s.buf.data[0][s.pos:s.pos+frames])
	} else {
		for f := range frames {
			base := f * channels
			for c, ch := range s.buf.data {
				dst[base+c] = ch[s.pos+f]
			}
		}
	}

	s.pos += frames
	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}

// ReadAll drains src into a Buffer. A trailing partial frame is dropped.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = defaultBufSize
	}
	size -= size % channels
	if size == 0 {
		size = channels
	}

	var samples []float32
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// A source that returns nothing without EOF would spin forever.
			break
		}
	}

	samples = samples[:len(samples)-len(samples)%channels]

	return NewInterleaved(src.SampleRate(), channels, samples)
}
