// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/suncore/audio"
)

// floatSource streams 32-bit float samples from an in-memory data chunk.
type floatSource struct {
	data       []byte
	sampleRate int
	channels   int
}

func (s *floatSource) SampleRate() int { return s.sampleRate }
func (s *floatSource) Channels() int   { return s.channels }
func (s *floatSource) Close() error    { return nil }
func (s *floatSource) BufSize() int    { return 4096 }

func (s *floatSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := min(len(dst), len(s.data)/4)
	for i := range n {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(s.data[4*i:]))
	}
	s.data = s.data[4*n:]

	if len(s.data) < 4 {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads WAV files: 32-bit IEEE float natively, integer PCM of 8, 16,
// 24 or 32 bits through go-audio/wav. The whole file is read into memory.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	file, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	l, err := parseLayout(file)
	if err != nil {
		return nil, err
	}

	if l.fmt.channels < 1 || l.fmt.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedFormat, l.fmt.channels, l.fmt.sampleRate)
	}

	switch l.fmt.format {
	case formatIEEEFloat:
		if l.fmt.bitsPerSample != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedFormat, l.fmt.bitsPerSample)
		}

		data := l.data[:len(l.data)-len(l.data)%(4*l.fmt.channels)]

		return &floatSource{
			data:       data,
			sampleRate: l.fmt.sampleRate,
			channels:   l.fmt.channels,
		}, nil

	case formatPCM:
		return decodePCM(file, l.fmt.bitsPerSample)

	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedFormat, l.fmt.format)
	}
}

func decodePCM(file []byte, bitsPerSample int) (audio.Source, error) {
	switch bitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bitsPerSample)
	}

	dec := gowav.NewDecoder(bytes.NewReader(file))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	return audio.NewIntSource(dec, int(dec.BitDepth))
}
