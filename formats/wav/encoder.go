// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/suncore/audio"
)

// MIME type of the files WriteFloat32 produces.
const MIME = "audio/wav"

const writeChunkSamples = 8192

// Encoder renders buffers to 32-bit IEEE float WAV files. Samples are
// written as they are, without clipping or quantization.
type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

// Encode returns a complete WAV file for buf.
func (e *Encoder) Encode(ctx context.Context, buf *audio.Buffer) ([]byte, error) {
	if buf.Empty() {
		return nil, ErrEmptyBuffer
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(HeaderSize + buf.Frames()*buf.Channels()*4)

	if err := WriteFloat32Buffer(&out, buf.Float32Buffer()); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// WriteFloat32Buffer writes fb as a 32-bit float WAV file.
func WriteFloat32Buffer(w io.Writer, fb *goaudio.Float32Buffer) error {
	if fb == nil || fb.Format == nil {
		return ErrEmptyBuffer
	}

	return WriteFloat32(w, fb.Format.SampleRate, fb.Format.NumChannels, fb.Data)
}

// WriteFloat32 writes interleaved samples as a 32-bit float WAV file.
func WriteFloat32(w io.Writer, sampleRate, channels int, samples []float32) error {
	if channels < 1 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	if len(samples)%channels != 0 {
		return ErrInvalidChannelSize
	}

	const bitsPerSample = 32

	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(len(samples) * 4)
	frames := uint32(len(samples) / channels)

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], HeaderSize-8+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (26 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 18)
	binary.LittleEndian.PutUint16(header[20:22], formatIEEEFloat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	binary.LittleEndian.PutUint16(header[36:38], 0) // cbSize

	// fact chunk (12 bytes), required for non-PCM data
	copy(header[38:42], "fact")
	binary.LittleEndian.PutUint32(header[42:46], 4)
	binary.LittleEndian.PutUint32(header[46:50], frames)

	// data chunk header (8 bytes)
	copy(header[50:54], "data")
	binary.LittleEndian.PutUint32(header[54:58], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), writeChunkSamples)*4)

	for i := 0; i < len(samples); i += writeChunkSamples {
		chunk := samples[i:min(i+writeChunkSamples, len(samples))]
		buf = buf[:len(chunk)*4]

		for j, s := range chunk {
			binary.LittleEndian.PutUint32(buf[j*4:], math.Float32bits(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}
