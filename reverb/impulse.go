// SPDX-License-Identifier: EPL-2.0

package reverb

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/suncore/audio"
)

const (
	// DefaultDuration of a synthesized impulse response, in seconds.
	DefaultDuration = 2.0

	// Channels of every synthesized impulse response.
	Channels = 2
)

type config struct {
	duration float64
	reverse  bool
	rng      *rand.Rand
}

// Option configures Synthesize.
type Option func(*config)

// WithDuration sets the tail length in seconds.
func WithDuration(seconds float64) Option {
	return func(c *config) { c.duration = seconds }
}

// WithReverse flips the envelope so the tail swells instead of decaying.
func WithReverse(reverse bool) Option {
	return func(c *config) { c.reverse = reverse }
}

// WithRand sets the noise source. Tests use it for reproducible output.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// Length is the frame count of an impulse response: floor(sampleRate*seconds).
func Length(sampleRate int, seconds float64) int {
	return int(math.Floor(float64(sampleRate) * seconds))
}

// Synthesize generates a stereo decaying-noise impulse response. For every
// channel and frame i, with n = i (or length-i when reversed):
//
//	sample = uniform(-1, 1) * (1 - n/length)^decay
//
// Larger decay values cut the tail off harder; values near 0 give almost
// flat white noise. Each call draws fresh noise unless WithRand is given.
func Synthesize(sampleRate int, decay float64, opts ...Option) (*audio.Buffer, error) {
	cfg := config{duration: DefaultDuration}
	for _, opt := range opts {
		opt(&cfg)
	}

	if sampleRate <= 0 || !positive(decay) || !positive(cfg.duration) {
		return nil, ErrInvalidParameters
	}

	length := Length(sampleRate, cfg.duration)
	if length == 0 {
		return nil, ErrInvalidParameters
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	fl := float64(length)
	data := make([][]float32, Channels)

	for c := range data {
		ch := make([]float32, length)
		for i := range ch {
			n := i
			if cfg.reverse {
				n = length - i
			}

			noise := rng.Float64()*2 - 1
			ch[i] = float32(noise * math.Pow(1-float64(n)/fl, decay))
		}
		data[c] = ch
	}

	return audio.Wrap(sampleRate, data)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
