// SPDX-License-Identifier: EPL-2.0

package render

import "math"

// Envelope is the output gain curve: an exponential ramp from
// Gain*EnvelopeFloor up to Gain, a hold, and a mirrored ramp back down that
// ends on the last frame.
type Envelope struct {
	Gain   float64
	Ramp   int // frames per ramp
	Frames int
}

// NewEnvelope sizes the ramps to FadeDuration, clamped to half of frames so
// the fades never overlap.
func NewEnvelope(gain float64, sampleRate, frames int) Envelope {
	ramp := int(math.Round(FadeDuration.Seconds() * float64(sampleRate)))

	return Envelope{
		Gain:   gain,
		Ramp:   min(ramp, frames/2),
		Frames: frames,
	}
}

// At returns the gain applied to frame i.
func (e Envelope) At(i int) float64 {
	if e.Gain == 0 {
		return 0
	}

	last := e.Frames - 1
	if e.Ramp < 2 {
		if i == 0 || i == last {
			return e.Gain * EnvelopeFloor
		}
		return e.Gain
	}

	span := float64(e.Ramp - 1)

	switch {
	case i < e.Ramp:
		return e.Gain * math.Pow(EnvelopeFloor, 1-float64(i)/span)
	case i > last-e.Ramp:
		return e.Gain * math.Pow(EnvelopeFloor, float64(i-(e.Frames-e.Ramp))/span)
	default:
		return e.Gain
	}
}

// Curve materializes At for every frame.
func (e Envelope) Curve() []float64 {
	curve := make([]float64, e.Frames)
	for i := range curve {
		curve[i] = e.At(i)
	}
	return curve
}
