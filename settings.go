// SPDX-License-Identifier: EPL-2.0

package suncore

import (
	"fmt"

	"github.com/ik5/suncore/render"
)

// Ranges of the user-facing controls.
const (
	MinVolume, MaxVolume           = 0.0, 100.0
	MinSpeed, MaxSpeed             = 0.5, 2.0
	MinReverbDecay, MaxReverbDecay = 0.01, 10.0
	MinBassBoost, MaxBassBoost     = 0.0, 12.0
)

// Settings are the user-facing controls of a render.
type Settings struct {
	Volume      float64 // percent, 0 to 100
	Speed       float64 // playback rate, 0.5 to 2
	ReverbDecay float64 // impulse response decay exponent, 0.01 to 10
	BassBoost   float64 // low-shelf gain in dB, 0 to 12
}

// DefaultSettings: full volume, normal speed, the lightest reverb and no
// bass boost.
func DefaultSettings() Settings {
	return Settings{
		Volume:      100,
		Speed:       1,
		ReverbDecay: 0.01,
		BassBoost:   0,
	}
}

// Validate rejects values outside the control ranges, and NaN.
func (s Settings) Validate() error {
	checks := []struct {
		name     string
		v        float64
		min, max float64
	}{
		{"volume", s.Volume, MinVolume, MaxVolume},
		{"speed", s.Speed, MinSpeed, MaxSpeed},
		{"reverb decay", s.ReverbDecay, MinReverbDecay, MaxReverbDecay},
		{"bass boost", s.BassBoost, MinBassBoost, MaxBassBoost},
	}

	for _, c := range checks {
		if !(c.v >= c.min && c.v <= c.max) {
			return fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidParameters, c.name, c.v, c.min, c.max)
		}
	}

	return nil
}

// Params maps the settings onto render parameters.
func (s Settings) Params() render.Params {
	return render.Params{
		PlaybackRate: s.Speed,
		VolumeGain:   s.Volume / 100,
		ReverbDecay:  s.ReverbDecay,
		BassBoostDB:  s.BassBoost,
	}
}
