// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"math"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/reverb"
)

// ImpulseFunc produces the reverb impulse response for a render.
type ImpulseFunc func(sampleRate int, decay float64) (*audio.Buffer, error)

// DefaultImpulse synthesizes fresh decaying noise for every render.
func DefaultImpulse(sampleRate int, decay float64) (*audio.Buffer, error) {
	return reverb.Synthesize(sampleRate, decay)
}

// StaticImpulse always returns ir, ignoring the sample rate and decay.
func StaticImpulse(ir *audio.Buffer) ImpulseFunc {
	return func(int, float64) (*audio.Buffer, error) {
		return ir, nil
	}
}

// Renderer runs the offline effects graph:
//
//	source -> lowshelf -+------------------> mix -> envelope
//	                    +-> reverb (wet) --/
//
// The zero value is not usable; use New.
type Renderer struct {
	impulse ImpulseFunc
}

type Option func(*Renderer)

// WithImpulseResponse replaces the impulse response source.
func WithImpulseResponse(fn ImpulseFunc) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.impulse = fn
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{impulse: DefaultImpulse}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build wires the graph for one render without running it.
func (r *Renderer) Build(source, ir *audio.Buffer, params Params) (*Graph, error) {
	if source.Empty() {
		return nil, ErrSourceNotLoaded
	}
	if ir.Empty() || ir.Frames() == 0 {
		return nil, fmt.Errorf("%w: empty impulse response", ErrInvalidParameters)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	sr := source.SampleRate()
	g := NewGraph()

	stages := []struct {
		stage  Stage
		inputs []string
	}{
		{&sourceStage{buf: source, rate: params.PlaybackRate, frames: params.OutputFrames(source.Frames())}, nil},
		{&lowShelfStage{gainDB: params.BassBoostDB, sampleRate: float64(sr)}, []string{StageSource}},
		{&reverbStage{kernels: kernels(ir)}, []string{StageLowShelf}},
		{&mixStage{weights: []float64{DryMix, WetMix}}, []string{StageLowShelf, StageReverb}},
		{&envelopeStage{gain: params.VolumeGain, sampleRate: sr}, []string{StageMix}},
	}

	for _, s := range stages {
		if err := g.Add(s.stage, s.inputs...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Render processes source with params and returns a new buffer of
// params.OutputFrames(source.Frames()) frames at the source sample rate and
// channel count. The source is never modified. On error nothing is returned.
func (r *Renderer) Render(ctx context.Context, source *audio.Buffer, params Params) (*audio.Buffer, error) {
	if source.Empty() {
		return nil, ErrSourceNotLoaded
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ir, err := r.impulse(source.SampleRate(), params.ReverbDecay)
	if err != nil {
		return nil, fmt.Errorf("impulse response: %w", err)
	}

	g, err := r.Build(source, ir, params)
	if err != nil {
		return nil, err
	}

	out, err := g.Run(ctx)
	if err != nil {
		return nil, err
	}

	data := make([][]float32, len(out))
	for c, ch := range out {
		data[c] = make([]float32, len(ch))
		for i, v := range ch {
			data[c][i] = float32(v)
		}
	}

	return audio.Wrap(source.SampleRate(), data)
}

// Render runs a default Renderer.
func Render(ctx context.Context, source *audio.Buffer, params Params) (*audio.Buffer, error) {
	return New().Render(ctx, source, params)
}

// kernels converts the impulse response to float64 and scales it by
// 1/sqrt(length), which keeps the wet level of a unit-variance noise
// response independent of its length while leaving the decay exponent in
// charge of the wet energy.
func kernels(ir *audio.Buffer) [][]float64 {
	scale := 1 / math.Sqrt(float64(ir.Frames()))

	out := make([][]float64, ir.Channels())
	for c := range out {
		src := ir.Channel(c)
		out[c] = make([]float64, len(src))
		for i, v := range src {
			out[c][i] = float64(v) * scale
		}
	}
	return out
}
