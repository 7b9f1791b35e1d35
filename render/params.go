// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"
	"time"
)

const (
	// DryMix and WetMix weight the unprocessed and reverberated paths.
	DryMix = 0.7
	WetMix = 0.3

	// EnvelopeFloor is the relative gain at the first and last frame.
	EnvelopeFloor = 1e-3

	// FadeDuration is the length of each envelope ramp.
	FadeDuration = 100 * time.Millisecond

	// BassShelfFrequency and BassShelfQ fix the low-shelf EQ; only its gain
	// is a parameter.
	BassShelfFrequency = 400.0
	BassShelfQ         = 0.707

	// MaxBassBoostDB bounds the shelf gain in either direction.
	MaxBassBoostDB = 24.0
)

// Params configures one render. It is a value type; a render never changes
// the Params it was given.
type Params struct {
	// PlaybackRate is source frames consumed per output frame. Tempo and
	// pitch change together.
	PlaybackRate float64
	// VolumeGain is the linear gain held between the fades.
	VolumeGain float64
	// ReverbDecay is the impulse response envelope exponent.
	ReverbDecay float64
	// BassBoostDB is the low-shelf gain; 0 bypasses the shelf.
	BassBoostDB float64
}

// DefaultParams mirrors an untouched UI: normal speed, full volume, the
// lightest reverb and no bass boost.
func DefaultParams() Params {
	return Params{
		PlaybackRate: 1.0,
		VolumeGain:   1.0,
		ReverbDecay:  0.01,
	}
}

// Validate reports ErrInvalidParameters for values the graph cannot render.
func (p Params) Validate() error {
	switch {
	case !(p.PlaybackRate > 0) || math.IsInf(p.PlaybackRate, 0):
		return fmt.Errorf("%w: playback rate %v", ErrInvalidParameters, p.PlaybackRate)
	case !(p.VolumeGain >= 0) || math.IsInf(p.VolumeGain, 0):
		return fmt.Errorf("%w: volume gain %v", ErrInvalidParameters, p.VolumeGain)
	case !(p.ReverbDecay > 0) || math.IsInf(p.ReverbDecay, 0):
		return fmt.Errorf("%w: reverb decay %v", ErrInvalidParameters, p.ReverbDecay)
	case !(math.Abs(p.BassBoostDB) <= MaxBassBoostDB):
		return fmt.Errorf("%w: bass boost %v dB", ErrInvalidParameters, p.BassBoostDB)
	}

	return nil
}

// OutputFrames is the rendered length for a source of sourceFrames frames:
// floor(sourceFrames / PlaybackRate).
func (p Params) OutputFrames(sourceFrames int) int {
	return int(math.Floor(float64(sourceFrames) / p.PlaybackRate))
}
