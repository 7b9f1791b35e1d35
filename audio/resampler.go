// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/suncore/utils"
)

// Resampler reads src at a playback rate using cubic interpolation: output
// frame i is the source signal at position i*rate. Works on interleaved
// samples; preserves channel count.
//
// Built with NewResampler the nominal sample rate is unchanged, so rate 2
// halves the duration and raises the pitch by an octave. Built with
// NewSampleRateConverter the rate is srcRate/dstRate and SampleRate reports
// dstRate.
type Resampler struct {
	src      Source
	rate     float64 // source frames consumed per output frame
	outRate  int
	channels int

	// Ring of 4 frames for cubic interpolation:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2.
	// real[i] is false for frames synthesized past either end of the source.
	frames [4][]float32
	real   [4]bool

	// Fractional position between frames[1] and frames[2].
	pos    float64
	primed bool

	srcBuf []float32
	rd, wr int
	eof    bool
}

// NewResampler reads src at rate source frames per output frame.
func NewResampler(src Source, rate float64) (*Resampler, error) {
	return newResampler(src, rate, src.SampleRate())
}

// NewSampleRateConverter streams src converted to dstRate.
func NewSampleRateConverter(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return newResampler(src, float64(src.SampleRate())/float64(dstRate), dstRate)
}

func newResampler(src Source, rate float64, outRate int) (*Resampler, error) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, ErrInvalidRate
	}

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

	r := &Resampler{
		src:      src,
		rate:     rate,
		outRate:  outRate,
		channels: channels,
		srcBuf:   make([]float32, size),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.outRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Rate returns the number of source frames consumed per output frame.
func (r *Resampler) Rate() float64 { return r.rate }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	if r.rd >= r.wr {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		n -= n % r.channels
		r.rd, r.wr = 0, n

		if err == io.EOF || (err == nil && n == 0) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n == 0 {
			return false, nil
		}
	}

	copy(dst, r.srcBuf[r.rd:r.rd+r.channels])
	r.rd += r.channels

	return true, nil
}

// shift advances the ring by one source frame.
func (r *Resampler) shift() error {
	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	ok, err := r.nextFrame(r.frames[3])
	r.real[3] = ok

	return err
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.frames[1])
	if err != nil || !ok {
		return err
	}

	// Edge frame before the start repeats the first sample.
	copy(r.frames[0], r.frames[1])
	r.real[1] = true

	for i := 2; i < 4; i++ {
		ok, err = r.nextFrame(r.frames[i])
		if err != nil {
			return err
		}
		r.real[i] = ok
	}

	return nil
}

// ReadSamples fills dst with interleaved output frames.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.real[1] {
			break
		}

		y0, y1, y2, y3 := r.frames[0], r.frames[1], r.frames[2], r.frames[3]
		if !r.real[2] {
			y2 = y1
		}
		if !r.real[3] {
			y3 = y2
		}

		base := written * r.channels
		utils.CubicInterpolateFrame(dst[base:base+r.channels], y0, y1, y2, y3, float32(r.pos))

		written++
		r.pos += r.rate
	}

	if written < framesNeeded {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}
